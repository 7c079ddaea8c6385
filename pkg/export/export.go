// Package export renders notes as Markdown files with YAML frontmatter,
// the interchange format most local note tools understand.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/quill-notes/quill/pkg/core"
)

// frontmatter is the YAML header written ahead of the note content. Tag
// IDs are resolved to names; IDs without a matching tag are kept as-is.
type frontmatter struct {
	Title   string    `yaml:"title"`
	Created time.Time `yaml:"created"`
	Pinned  bool      `yaml:"pinned,omitempty"`
	Tags    []string  `yaml:"tags,omitempty"`
}

// Exporter writes the current state of the services to a directory.
type Exporter struct {
	notes *core.NotesService
	tags  *core.TagsService
}

// NewExporter creates an Exporter over the given services.
func NewExporter(notes *core.NotesService, tags *core.TagsService) *Exporter {
	return &Exporter{notes: notes, tags: tags}
}

// Export writes every note to dir as <slug>-<id-prefix>.md. A non-empty
// pattern is a doublestar glob filtering the written file names. The
// returned slice lists the files actually written.
func (e *Exporter) Export(ctx context.Context, dir, pattern string) ([]string, error) {
	if pattern != "" {
		if !doublestar.ValidatePattern(pattern) {
			return nil, core.NewValidation("invalid match pattern %q", pattern)
		}
	}

	notes, err := e.notes.GetNotes(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := e.tags.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var written []string
	for _, note := range notes {
		filename := exportFilename(note)
		if pattern != "" {
			ok, err := doublestar.Match(pattern, filename)
			if err != nil {
				return nil, core.NewValidation("invalid match pattern %q", pattern)
			}
			if !ok {
				continue
			}
		}

		data, err := render(note, names)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

func render(note core.Note, tagNames map[string]string) ([]byte, error) {
	fm := frontmatter{
		Title:   note.Title,
		Created: note.CreatedAt,
		Pinned:  note.IsPinned,
	}
	for _, id := range note.Tags {
		if name, ok := tagNames[id]; ok {
			fm.Tags = append(fm.Tags, name)
		} else {
			fm.Tags = append(fm.Tags, id)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	buf.WriteString("---\n")
	buf.WriteString(note.Content)
	if !strings.HasSuffix(note.Content, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// exportFilename builds a stable, filesystem-safe name: a slug of the
// title plus an ID prefix to keep same-titled notes apart.
func exportFilename(note core.Note) string {
	slug := slugify(note.Title)
	id := note.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if slug == "" {
		return id + ".md"
	}
	return slug + "-" + id + ".md"
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
