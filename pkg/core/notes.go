package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// NotesService validates and sanitizes input before it reaches the note
// repository. All mutations go through here so validation always runs.
type NotesService struct {
	repo   NoteRepository
	logger *zap.Logger
}

// NewNotesService creates a NotesService. A nil logger is replaced with a
// no-op logger.
func NewNotesService(repo NoteRepository, logger *zap.Logger) *NotesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotesService{repo: repo, logger: logger}
}

// GetNotes returns all notes in display order.
func (s *NotesService) GetNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// GetNoteByID returns the note at id. Lookup failures below the repository
// are not distinguished from absence at this layer.
func (s *NotesService) GetNoteByID(ctx context.Context, id string) (Note, error) {
	if strings.TrimSpace(id) == "" {
		return Note{}, NewValidation("note ID is required")
	}

	note, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("note lookup failed", zap.String("id", id), zap.Error(err))
		return Note{}, NewNotFound("note with ID %s not found", id)
	}
	if !ok {
		return Note{}, NewNotFound("note with ID %s not found", id)
	}
	return note, nil
}

// CreateNote validates the input, trims title and content, defaults the
// tag list and delegates to the repository.
func (s *NotesService) CreateNote(ctx context.Context, input NoteInput) (Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Note{}, NewValidation("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return Note{}, NewValidation("content is required")
	}

	sanitized := NoteInput{
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
		IsPinned: input.IsPinned,
		Tags:     input.Tags,
	}
	if sanitized.Tags == nil {
		sanitized.Tags = []string{}
	}

	return s.repo.Create(ctx, sanitized)
}

// UpdateNote applies a partial update. Fields absent from the patch keep
// their stored value; supplied title/content must not trim to empty.
func (s *NotesService) UpdateNote(ctx context.Context, id string, patch NotePatch) (Note, error) {
	if strings.TrimSpace(id) == "" {
		return Note{}, NewValidation("note ID is required")
	}

	if _, ok, err := s.repo.GetByID(ctx, id); err != nil || !ok {
		return Note{}, NewNotFound("note with ID %s not found", id)
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Note{}, NewValidation("note title cannot be empty")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return Note{}, NewValidation("note content cannot be empty")
	}

	sanitized := NotePatch{IsPinned: patch.IsPinned, Tags: patch.Tags}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		sanitized.Title = &title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		sanitized.Content = &content
	}

	note, ok, err := s.repo.Update(ctx, id, sanitized)
	if err != nil {
		return Note{}, err
	}
	if !ok {
		return Note{}, NewNotFound("note with ID %s not found", id)
	}
	return note, nil
}

// DeleteNote removes the note at id. Deleting an absent note is an error.
func (s *NotesService) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewValidation("note ID is required")
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn("note delete failed", zap.String("id", id), zap.Error(err))
		return NewNotFound("note with ID %s not found", id)
	}
	if !ok {
		return NewNotFound("note with ID %s not found", id)
	}
	return nil
}

// TogglePinNote flips the pin flag of the note at id and persists the
// full flipped record.
func (s *NotesService) TogglePinNote(ctx context.Context, id string) (Note, error) {
	note, ok, err := s.repo.GetByID(ctx, id)
	if err != nil || !ok {
		return Note{}, NewNotFound("note with ID %s not found", id)
	}

	pinned := !note.IsPinned
	updated, ok, err := s.repo.Update(ctx, id, NotePatch{
		Title:    &note.Title,
		Content:  &note.Content,
		IsPinned: &pinned,
		Tags:     note.Tags,
	})
	if err != nil {
		return Note{}, err
	}
	if !ok {
		return Note{}, NewNotFound("note with ID %s not found", id)
	}
	return updated, nil
}

// SearchNotes returns notes whose title or content contains the query.
// An empty query matches every note.
func (s *NotesService) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	return s.repo.Search(ctx, query)
}
