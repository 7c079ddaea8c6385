package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/quill-notes/quill/pkg/core"
	"github.com/quill-notes/quill/pkg/store"
)

// Tags implements core.TagRepository over a store collection.
type Tags struct {
	coll  store.Collection[core.Tag]
	newID func() string
}

// TagsOption customizes a Tags repository, mainly for tests.
type TagsOption func(*Tags)

// WithTagIDGenerator overrides the tag ID source.
func WithTagIDGenerator(newID func() string) TagsOption {
	return func(r *Tags) { r.newID = newID }
}

// NewTags creates a tag repository over the given collection.
func NewTags(coll store.Collection[core.Tag], opts ...TagsOption) *Tags {
	r := &Tags{coll: coll, newID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns all tags in store order.
func (r *Tags) List(ctx context.Context) ([]core.Tag, error) {
	return r.coll.Read(ctx)
}

// Create persists a tag after checking that no existing tag carries the
// same name, compared case-insensitively. Uniqueness is only enforced
// here, at creation time.
func (r *Tags) Create(ctx context.Context, input core.TagInput) (core.Tag, error) {
	existing, err := r.coll.Read(ctx)
	if err != nil {
		return core.Tag{}, err
	}
	for _, t := range existing {
		if strings.EqualFold(t.Name, input.Name) {
			return core.Tag{}, core.NewValidation("tag with name %q already exists", input.Name)
		}
	}

	tag := core.Tag{ID: r.newID(), Name: input.Name}
	if err := r.coll.Create(ctx, tag); err != nil {
		return core.Tag{}, err
	}
	return tag, nil
}

// Update overwrites the record at id with the given fields. The stored id
// always stays the target id, whatever the caller put in tag.ID.
func (r *Tags) Update(ctx context.Context, id string, tag core.Tag) (core.Tag, bool, error) {
	tag.ID = id
	ok, err := r.coll.Update(ctx, id, tag)
	if err != nil || !ok {
		return core.Tag{}, ok, err
	}
	return tag, true, nil
}

// Delete removes the tag, reporting whether it existed.
func (r *Tags) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.Delete(ctx, id)
}
