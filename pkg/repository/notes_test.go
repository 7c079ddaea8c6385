package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-notes/quill/pkg/core"
	"github.com/quill-notes/quill/pkg/repository"
	"github.com/quill-notes/quill/pkg/store"
)

// newNotesRepo builds a repository over an in-memory collection with a
// deterministic clock and ID sequence.
func newNotesRepo() (*repository.Notes, *store.Memory[core.Note], *time.Time) {
	coll := store.NewMemory[core.Note]()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seq := 0
	repo := repository.NewNotes(coll,
		repository.WithClock(func() time.Time {
			now = now.Add(time.Minute)
			return now
		}),
		repository.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("note-%d", seq)
		}),
	)
	return repo, coll, &now
}

func TestNotesCreate(t *testing.T) {
	ctx := context.Background()
	repo, coll, _ := newNotesRepo()

	note, err := repo.Create(ctx, core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "note-1", note.ID)
	assert.False(t, note.CreatedAt.IsZero())
	assert.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)

	stored, ok, err := coll.FindByID(ctx, note.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, note, stored)
}

func TestNotesListOrdering(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newNotesRepo()

	// A unpinned (oldest), B pinned, C unpinned (newest).
	a, err := repo.Create(ctx, core.NoteInput{Title: "A", Content: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, core.NoteInput{Title: "B", Content: "b", IsPinned: true})
	require.NoError(t, err)
	c, err := repo.Create(ctx, core.NoteInput{Title: "C", Content: "c"})
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, b.ID, notes[0].ID)
	assert.Equal(t, c.ID, notes[1].ID)
	assert.Equal(t, a.ID, notes[2].ID)
}

func TestNotesListPinnedSortedByCreation(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newNotesRepo()

	older, err := repo.Create(ctx, core.NoteInput{Title: "older", Content: "x", IsPinned: true})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, core.NoteInput{Title: "newer", Content: "x", IsPinned: true})
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, newer.ID, notes[0].ID)
	assert.Equal(t, older.ID, notes[1].ID)
}

func TestNotesUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("shallow merge keeps omitted fields", func(t *testing.T) {
		repo, _, _ := newNotesRepo()
		note, err := repo.Create(ctx, core.NoteInput{
			Title: "t", Content: "c", IsPinned: true, Tags: []string{"x"},
		})
		require.NoError(t, err)

		title := "new title"
		updated, ok, err := repo.Update(ctx, note.ID, core.NotePatch{Title: &title})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, "c", updated.Content)
		assert.True(t, updated.IsPinned)
		assert.Equal(t, []string{"x"}, updated.Tags)
		assert.Equal(t, note.CreatedAt, updated.CreatedAt)
	})

	t.Run("absent id reports false", func(t *testing.T) {
		repo, _, _ := newNotesRepo()

		_, ok, err := repo.Update(ctx, "missing", core.NotePatch{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty tag slice clears the list", func(t *testing.T) {
		repo, _, _ := newNotesRepo()
		note, err := repo.Create(ctx, core.NoteInput{Title: "t", Content: "c", Tags: []string{"x", "y"}})
		require.NoError(t, err)

		updated, ok, err := repo.Update(ctx, note.ID, core.NotePatch{Tags: []string{}})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, updated.Tags)
	})
}

func TestNotesDelete(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newNotesRepo()

	note, err := repo.Create(ctx, core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNotesSearch(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newNotesRepo()

	_, err := repo.Create(ctx, core.NoteInput{Title: "Meeting Notes", Content: "agenda"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, core.NoteInput{Title: "Journal", Content: "after the MEETING"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, core.NoteInput{Title: "Recipes", Content: "pasta"})
	require.NoError(t, err)

	hits, err := repo.Search(ctx, "meeting")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	// Store order, no pin/creation sort.
	assert.Equal(t, "Meeting Notes", hits[0].Title)
	assert.Equal(t, "Journal", hits[1].Title)

	none, err := repo.Search(ctx, "absent")
	require.NoError(t, err)
	assert.Empty(t, none)
}
