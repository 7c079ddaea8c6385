package platform

import (
	"time"

	"go.uber.org/zap"
)

// options holds the internal configuration for the application context.
type options struct {
	logger    *zap.Logger
	inMemory  bool
	notesFile string
	tagsFile  string
	now       func() time.Time
	newID     func() string
}

// Option defines a functional option for configuring the application.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:    zap.NewNop(),
		notesFile: "notes.json",
		tagsFile:  "tags.json",
	}
}

// WithLogger sets the logger shared by every layer.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithInMemory swaps the file-backed collections for in-memory ones.
// State is lost when the process exits; useful for tests and dry runs.
func WithInMemory(inMemory bool) Option {
	return func(o *options) { o.inMemory = inMemory }
}

// WithFileNames overrides the collection file names inside the data dir.
func WithFileNames(notes, tags string) Option {
	return func(o *options) {
		if notes != "" {
			o.notesFile = notes
		}
		if tags != "" {
			o.tagsFile = tags
		}
	}
}

// WithClock overrides the timestamp source used for note creation.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the record ID source.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}
