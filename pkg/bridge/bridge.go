// Package bridge exposes the services as named operations for callers on
// the other side of a process boundary, such as a UI shell. Every result
// is normalized into a success/error envelope; a thrown error never
// crosses the boundary as anything but a structured failure.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/quill-notes/quill/pkg/core"
)

// Response is the envelope every operation resolves to.
type Response struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError carries the numeric classification alongside the message
// so callers discriminate on the code, not the text.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Dispatcher routes operation names to service calls.
type Dispatcher struct {
	notes  *core.NotesService
	tags   *core.TagsService
	logger *zap.Logger
	ops    map[string]handler
}

type handler func(ctx context.Context, payload json.RawMessage) (any, error)

// NewDispatcher wires the services into the operation table. A nil logger
// is replaced with a no-op logger.
func NewDispatcher(notes *core.NotesService, tags *core.TagsService, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{notes: notes, tags: tags, logger: logger}
	d.ops = map[string]handler{
		"notes.list":      d.notesList,
		"notes.get":       d.notesGet,
		"notes.create":    d.notesCreate,
		"notes.update":    d.notesUpdate,
		"notes.delete":    d.notesDelete,
		"notes.togglePin": d.notesTogglePin,
		"notes.search":    d.notesSearch,
		"tags.list":       d.tagsList,
		"tags.create":     d.tagsCreate,
		"tags.rename":     d.tagsRename,
		"tags.delete":     d.tagsDelete,
	}
	return d
}

// Operations returns the names of every registered operation.
func (d *Dispatcher) Operations() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	return names
}

// Invoke runs the named operation and normalizes the outcome. An unknown
// operation or an undecodable payload is a validation failure.
func (d *Dispatcher) Invoke(ctx context.Context, op string, payload json.RawMessage) Response {
	h, ok := d.ops[op]
	if !ok {
		return fail(core.NewValidation("unknown operation %q", op))
	}

	data, err := h(ctx, payload)
	if err != nil {
		d.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))
		return fail(err)
	}
	return Response{Success: true, Data: data}
}

func fail(err error) Response {
	return Response{
		Success: false,
		Error: &ResponseError{
			Code:    int(core.CodeOf(err)),
			Message: err.Error(),
		},
	}
}

func decode(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return core.NewValidation("missing request payload")
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return core.NewValidation("malformed request payload: %v", err)
	}
	return nil
}

type idRequest struct {
	ID string `json:"id"`
}

func (d *Dispatcher) notesList(ctx context.Context, _ json.RawMessage) (any, error) {
	return d.notes.GetNotes(ctx)
}

func (d *Dispatcher) notesGet(ctx context.Context, payload json.RawMessage) (any, error) {
	var req idRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	return d.notes.GetNoteByID(ctx, req.ID)
}

func (d *Dispatcher) notesCreate(ctx context.Context, payload json.RawMessage) (any, error) {
	var input core.NoteInput
	if err := decode(payload, &input); err != nil {
		return nil, err
	}
	return d.notes.CreateNote(ctx, input)
}

func (d *Dispatcher) notesUpdate(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		ID    string         `json:"id"`
		Patch core.NotePatch `json:"patch"`
	}
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	return d.notes.UpdateNote(ctx, req.ID, req.Patch)
}

func (d *Dispatcher) notesDelete(ctx context.Context, payload json.RawMessage) (any, error) {
	var req idRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	if err := d.notes.DeleteNote(ctx, req.ID); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

func (d *Dispatcher) notesTogglePin(ctx context.Context, payload json.RawMessage) (any, error) {
	var req idRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	return d.notes.TogglePinNote(ctx, req.ID)
}

func (d *Dispatcher) notesSearch(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	return d.notes.SearchNotes(ctx, req.Query)
}

func (d *Dispatcher) tagsList(ctx context.Context, _ json.RawMessage) (any, error) {
	return d.tags.GetTags(ctx)
}

func (d *Dispatcher) tagsCreate(ctx context.Context, payload json.RawMessage) (any, error) {
	var input core.TagInput
	if err := decode(payload, &input); err != nil {
		return nil, err
	}
	return d.tags.CreateTag(ctx, input)
}

func (d *Dispatcher) tagsRename(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	return d.tags.RenameTag(ctx, req.ID, req.Name)
}

func (d *Dispatcher) tagsDelete(ctx context.Context, payload json.RawMessage) (any, error) {
	var req idRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}
	if err := d.tags.DeleteTag(ctx, req.ID); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

// Encode renders the response as indented JSON for transport.
func (r Response) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return data, nil
}
