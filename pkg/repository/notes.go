// Package repository translates domain operations into record store calls
// and owns the policies the store knows nothing about: list ordering, ID
// generation and name uniqueness.
package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quill-notes/quill/pkg/core"
	"github.com/quill-notes/quill/pkg/store"
)

// Notes implements core.NoteRepository over a store collection.
type Notes struct {
	coll  store.Collection[core.Note]
	now   func() time.Time
	newID func() string
}

// NotesOption customizes a Notes repository, mainly for tests.
type NotesOption func(*Notes)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) NotesOption {
	return func(r *Notes) { r.now = now }
}

// WithIDGenerator overrides the note ID source.
func WithIDGenerator(newID func() string) NotesOption {
	return func(r *Notes) { r.newID = newID }
}

// NewNotes creates a note repository over the given collection.
func NewNotes(coll store.Collection[core.Note], opts ...NotesOption) *Notes {
	r := &Notes{
		coll:  coll,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns all notes, pinned first, then newest first. The sort is
// stable so equal timestamps keep store order.
func (r *Notes) List(ctx context.Context) ([]core.Note, error) {
	notes, err := r.coll.Read(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

// GetByID returns the note at id, with false for simple absence.
func (r *Notes) GetByID(ctx context.Context, id string) (core.Note, bool, error) {
	return r.coll.FindByID(ctx, id)
}

// Create stamps a fresh ID and creation time and persists the note.
func (r *Notes) Create(ctx context.Context, input core.NoteInput) (core.Note, error) {
	note := core.Note{
		ID:        r.newID(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: r.now(),
		IsPinned:  input.IsPinned,
		Tags:      input.Tags,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := r.coll.Create(ctx, note); err != nil {
		return core.Note{}, err
	}
	return note, nil
}

// Update shallow-merges the patch into the stored note. ID and CreatedAt
// are immutable and never touched.
func (r *Notes) Update(ctx context.Context, id string, patch core.NotePatch) (core.Note, bool, error) {
	note, ok, err := r.coll.FindByID(ctx, id)
	if err != nil || !ok {
		return core.Note{}, false, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.IsPinned != nil {
		note.IsPinned = *patch.IsPinned
	}
	if patch.Tags != nil {
		note.Tags = patch.Tags
	}

	ok, err = r.coll.Update(ctx, id, note)
	if err != nil || !ok {
		return core.Note{}, ok, err
	}
	return note, true, nil
}

// Delete removes the note, reporting whether it existed.
func (r *Notes) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.Delete(ctx, id)
}

// Search matches the query case-insensitively against title and content
// and returns hits in store order.
func (r *Notes) Search(ctx context.Context, query string) ([]core.Note, error) {
	notes, err := r.coll.Read(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}
