package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// TagsService validates tag input and owns the cascading delete: removing
// a tag first detaches it from every note referencing it, via the notes
// service so note validation still runs.
type TagsService struct {
	repo   TagRepository
	notes  *NotesService
	logger *zap.Logger
}

// NewTagsService creates a TagsService. A nil logger is replaced with a
// no-op logger.
func NewTagsService(repo TagRepository, notes *NotesService, logger *zap.Logger) *TagsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagsService{repo: repo, notes: notes, logger: logger}
}

// GetTags returns all tags. A nil result from the repository is coerced
// to an empty slice so callers always receive a sequence.
func (s *TagsService) GetTags(ctx context.Context) ([]Tag, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []Tag{}
	}
	return tags, nil
}

// CreateTag trims the name and delegates to the repository, which enforces
// case-insensitive name uniqueness.
func (s *TagsService) CreateTag(ctx context.Context, input TagInput) (Tag, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Tag{}, NewValidation("tag name is required")
	}

	return s.repo.Create(ctx, TagInput{Name: strings.TrimSpace(input.Name)})
}

// RenameTag overwrites the name of the tag at id. Uniqueness is not
// re-checked on rename.
func (s *TagsService) RenameTag(ctx context.Context, id, name string) (Tag, error) {
	if strings.TrimSpace(id) == "" {
		return Tag{}, NewValidation("tag ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return Tag{}, NewValidation("tag name is required")
	}

	tag, ok, err := s.repo.Update(ctx, id, Tag{Name: strings.TrimSpace(name)})
	if err != nil {
		return Tag{}, err
	}
	if !ok {
		return Tag{}, NewNotFound("tag with ID %s not found", id)
	}
	return tag, nil
}

// DeleteTag detaches the tag from every note referencing it, then removes
// the tag record. The ordering guarantees no note keeps a dangling
// reference past this call; a crash between detach and delete can only
// leave an inert unreferenced tag behind.
func (s *TagsService) DeleteTag(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewValidation("tag ID is required")
	}

	if err := s.detachFromNotes(ctx, id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn("tag delete failed", zap.String("id", id), zap.Error(err))
		return NewNotFound("tag with ID %s not found", id)
	}
	if !ok {
		return NewNotFound("tag with ID %s not found", id)
	}
	return nil
}

// detachFromNotes rewrites the tag list of every note that references id.
// Detachment is sequential; notes processed before a failure stay detached.
func (s *TagsService) detachFromNotes(ctx context.Context, id string) error {
	notes, err := s.notes.GetNotes(ctx)
	if err != nil {
		return err
	}

	for _, note := range notes {
		if !containsTag(note.Tags, id) {
			continue
		}

		remaining := make([]string, 0, len(note.Tags))
		for _, tagID := range note.Tags {
			if tagID != id {
				remaining = append(remaining, tagID)
			}
		}

		s.logger.Debug("detaching tag from note",
			zap.String("tag", id), zap.String("note", note.ID))
		if _, err := s.notes.UpdateNote(ctx, note.ID, NotePatch{Tags: remaining}); err != nil {
			return err
		}
	}
	return nil
}

func containsTag(tags []string, id string) bool {
	for _, t := range tags {
		if t == id {
			return true
		}
	}
	return false
}
