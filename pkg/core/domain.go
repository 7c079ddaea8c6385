// Package core holds the domain model and the service layer of quill.
// It is agnostic to how records are persisted; storage is reached only
// through the repository interfaces defined in repository.go.
package core

import "time"

// Note is the central entity of the domain. ID and CreatedAt are set once
// by the repository on create and never change afterwards.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsPinned  bool      `json:"isPinned"`
	// Tags holds tag IDs in insertion order. Duplicates are permitted and
	// the IDs are not checked against existing tags at write time.
	Tags []string `json:"tags"`
}

// Tag labels notes. Name is unique case-insensitively at creation time.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordID identifies the note inside a store collection.
func (n Note) RecordID() string { return n.ID }

// RecordID identifies the tag inside a store collection.
func (t Tag) RecordID() string { return t.ID }

// NoteInput carries the caller-supplied fields for creating a note.
type NoteInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	IsPinned bool     `json:"isPinned"`
	Tags     []string `json:"tags"`
}

// NotePatch is a partial update. Nil fields keep the stored value.
// To clear the tag list, supply an empty non-nil slice.
type NotePatch struct {
	Title    *string  `json:"title,omitempty"`
	Content  *string  `json:"content,omitempty"`
	IsPinned *bool    `json:"isPinned,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// TagInput carries the caller-supplied fields for creating a tag.
type TagInput struct {
	Name string `json:"name"`
}
