package core

import "context"

// NoteRepository defines the contract for note persistence. It owns the
// list ordering policy and ID generation; validation stays in the service.
type NoteRepository interface {
	// List returns all notes sorted pinned-first, then by creation time
	// descending.
	List(ctx context.Context) ([]Note, error)

	// GetByID returns the note and true, or the zero note and false when
	// the id is absent. Absence is not an error at this layer.
	GetByID(ctx context.Context, id string) (Note, bool, error)

	// Create generates a fresh id, stamps the creation time, defaults the
	// tag list to empty and persists the note.
	Create(ctx context.Context, input NoteInput) (Note, error)

	// Update merges the patch into the stored note. The second result is
	// false when the id is absent.
	Update(ctx context.Context, id string, patch NotePatch) (Note, bool, error)

	// Delete removes the note. The boolean reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// Search returns notes whose title or content contains the query,
	// case-insensitively, in store order.
	Search(ctx context.Context, query string) ([]Note, error)
}

// TagRepository defines the contract for tag persistence. It owns
// uniqueness-by-name enforcement.
type TagRepository interface {
	// List returns all tags in store order.
	List(ctx context.Context) ([]Tag, error)

	// Create enforces case-insensitive name uniqueness, generates an id
	// and persists the tag. A duplicate name is a validation error.
	Create(ctx context.Context, input TagInput) (Tag, error)

	// Update overwrites the record at id with the given fields, forcing
	// the stored id to match the target. The second result is false when
	// the id is absent.
	Update(ctx context.Context, id string, tag Tag) (Tag, bool, error)

	// Delete removes the tag. The boolean reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
