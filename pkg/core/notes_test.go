package core_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-notes/quill/pkg/core"
)

// fakeNoteRepo implements core.NoteRepository in memory and counts calls
// so tests can assert that validation failures never reach the store.
type fakeNoteRepo struct {
	notes map[string]core.Note
	seq   int

	calls   map[string]int
	failGet bool
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]core.Note), calls: make(map[string]int)}
}

func (f *fakeNoteRepo) List(ctx context.Context) ([]core.Note, error) {
	f.calls["List"]++
	var out []core.Note
	for _, n := range f.notes {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id string) (core.Note, bool, error) {
	f.calls["GetByID"]++
	if f.failGet {
		return core.Note{}, false, errors.New("backing file unreadable")
	}
	n, ok := f.notes[id]
	return n, ok, nil
}

func (f *fakeNoteRepo) Create(ctx context.Context, input core.NoteInput) (core.Note, error) {
	f.calls["Create"]++
	f.seq++
	n := core.Note{
		ID:        fmt.Sprintf("note-%d", f.seq),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now(),
		IsPinned:  input.IsPinned,
		Tags:      input.Tags,
	}
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, id string, patch core.NotePatch) (core.Note, bool, error) {
	f.calls["Update"]++
	n, ok := f.notes[id]
	if !ok {
		return core.Note{}, false, nil
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.IsPinned != nil {
		n.IsPinned = *patch.IsPinned
	}
	if patch.Tags != nil {
		n.Tags = patch.Tags
	}
	f.notes[id] = n
	return n, true, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) (bool, error) {
	f.calls["Delete"]++
	if _, ok := f.notes[id]; !ok {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}

func (f *fakeNoteRepo) Search(ctx context.Context, query string) ([]core.Note, error) {
	f.calls["Search"]++
	q := strings.ToLower(query)
	var out []core.Note
	for _, n := range f.notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) totalCalls() int {
	total := 0
	for _, c := range f.calls {
		total += c
	}
	return total
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("trims title and content", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		note, err := svc.CreateNote(ctx, core.NoteInput{Title: "  Groceries  ", Content: " milk\n"})
		require.NoError(t, err)
		assert.Equal(t, "Groceries", note.Title)
		assert.Equal(t, "milk", note.Content)
		assert.False(t, note.IsPinned)
		assert.NotNil(t, note.Tags)
		assert.Empty(t, note.Tags)
		assert.NotEmpty(t, note.ID)
		assert.False(t, note.CreatedAt.IsZero())
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		a, err := svc.CreateNote(ctx, core.NoteInput{Title: "a", Content: "a"})
		require.NoError(t, err)
		b, err := svc.CreateNote(ctx, core.NoteInput{Title: "b", Content: "b"})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("empty title fails without store access", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		_, err := svc.CreateNote(ctx, core.NoteInput{Title: "   ", Content: "body"})
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Zero(t, repo.totalCalls())
	})

	t.Run("empty content fails without store access", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		_, err := svc.CreateNote(ctx, core.NoteInput{Title: "title", Content: "\t\n"})
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Zero(t, repo.totalCalls())
	})
}

func TestGetNoteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id fails before any store access", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		_, err := svc.GetNoteByID(ctx, "")
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Zero(t, repo.totalCalls())
	})

	t.Run("absent id is not found", func(t *testing.T) {
		svc := core.NewNotesService(newFakeNoteRepo(), nil)

		_, err := svc.GetNoteByID(ctx, "nope")
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("lookup failure is normalized to not found", func(t *testing.T) {
		repo := newFakeNoteRepo()
		repo.failGet = true
		svc := core.NewNotesService(repo, nil)

		_, err := svc.GetNoteByID(ctx, "any")
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("returns existing note", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)
		created, err := svc.CreateNote(ctx, core.NoteInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		got, err := svc.GetNoteByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeNoteRepo, *core.NotesService, core.Note) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)
		note, err := svc.CreateNote(ctx, core.NoteInput{Title: "original", Content: "body"})
		require.NoError(t, err)
		return repo, svc, note
	}

	t.Run("merges only supplied fields", func(t *testing.T) {
		_, svc, note := setup(t)

		title := "  renamed  "
		updated, err := svc.UpdateNote(ctx, note.ID, core.NotePatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, "body", updated.Content)
	})

	t.Run("whitespace title fails and leaves note unchanged", func(t *testing.T) {
		repo, svc, note := setup(t)

		blank := "  "
		_, err := svc.UpdateNote(ctx, note.ID, core.NotePatch{Title: &blank})
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Equal(t, "original", repo.notes[note.ID].Title)
	})

	t.Run("whitespace content fails", func(t *testing.T) {
		_, svc, note := setup(t)

		blank := "\n"
		_, err := svc.UpdateNote(ctx, note.ID, core.NotePatch{Content: &blank})
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
	})

	t.Run("absent id is not found", func(t *testing.T) {
		_, svc, _ := setup(t)

		title := "x"
		_, err := svc.UpdateNote(ctx, "missing", core.NotePatch{Title: &title})
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("empty id is a validation failure", func(t *testing.T) {
		repo, svc, _ := setup(t)
		before := repo.totalCalls()

		_, err := svc.UpdateNote(ctx, "  ", core.NotePatch{})
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Equal(t, before, repo.totalCalls())
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing note", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)
		note, err := svc.CreateNote(ctx, core.NoteInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteNote(ctx, note.ID))
		_, ok := repo.notes[note.ID]
		assert.False(t, ok)
	})

	t.Run("absent id is not found and store unchanged", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)
		_, err := svc.CreateNote(ctx, core.NoteInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		err = svc.DeleteNote(ctx, "missing")
		require.Error(t, err)
		assert.True(t, core.IsNotFound(err))

		notes, err := svc.GetNotes(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("empty id is a validation failure", func(t *testing.T) {
		repo := newFakeNoteRepo()
		svc := core.NewNotesService(repo, nil)

		err := svc.DeleteNote(ctx, " ")
		require.Error(t, err)
		assert.True(t, core.IsValidation(err))
		assert.Zero(t, repo.totalCalls())
	})
}

func TestTogglePinNote(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNoteRepo()
	svc := core.NewNotesService(repo, nil)

	note, err := svc.CreateNote(ctx, core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.False(t, note.IsPinned)

	pinned, err := svc.TogglePinNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := svc.TogglePinNote(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)

	_, err = svc.TogglePinNote(ctx, "missing")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestSearchNotes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNoteRepo()
	svc := core.NewNotesService(repo, nil)

	_, err := svc.CreateNote(ctx, core.NoteInput{Title: "Shopping List", Content: "milk"})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, core.NoteInput{Title: "Diary", Content: "Bought MILK today"})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, core.NoteInput{Title: "Ideas", Content: "none"})
	require.NoError(t, err)

	hits, err := svc.SearchNotes(ctx, "milk")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	all, err := svc.SearchNotes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
