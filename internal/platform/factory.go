// Package platform is the composition root: it builds the store
// collections, repositories and services and hands them to the callers
// at the boundary (CLI, bridge). Nothing here is a process-wide
// singleton; every App is an explicit, self-contained object graph.
package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/quill-notes/quill/pkg/core"
	"github.com/quill-notes/quill/pkg/repository"
	"github.com/quill-notes/quill/pkg/store"
)

// App bundles the ready-to-use service layer.
type App struct {
	Notes *core.NotesService
	Tags  *core.TagsService

	watchPaths []string
	logger     *zap.Logger
}

// New builds the full object graph rooted at dataDir and initializes the
// backing store. The data directory is created when missing.
func New(ctx context.Context, dataDir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var (
		noteColl store.Collection[core.Note]
		tagColl  store.Collection[core.Tag]
		paths    []string
	)
	if o.inMemory {
		noteColl = store.NewMemory[core.Note]()
		tagColl = store.NewMemory[core.Tag]()
	} else {
		notesPath := filepath.Join(dataDir, o.notesFile)
		tagsPath := filepath.Join(dataDir, o.tagsFile)
		noteColl = store.NewJSONFile[core.Note](notesPath, o.logger)
		tagColl = store.NewJSONFile[core.Tag](tagsPath, o.logger)
		paths = []string{notesPath, tagsPath}
	}

	if err := noteColl.Initialize(ctx); err != nil {
		return nil, core.NewStoreInit(err, "failed to initialize note store")
	}
	if err := tagColl.Initialize(ctx); err != nil {
		return nil, core.NewStoreInit(err, "failed to initialize tag store")
	}

	var noteOpts []repository.NotesOption
	if o.now != nil {
		noteOpts = append(noteOpts, repository.WithClock(o.now))
	}
	if o.newID != nil {
		noteOpts = append(noteOpts, repository.WithIDGenerator(o.newID))
	}
	var tagOpts []repository.TagsOption
	if o.newID != nil {
		tagOpts = append(tagOpts, repository.WithTagIDGenerator(o.newID))
	}

	notes := core.NewNotesService(repository.NewNotes(noteColl, noteOpts...), o.logger)
	tags := core.NewTagsService(repository.NewTags(tagColl, tagOpts...), notes, o.logger)

	return &App{
		Notes:      notes,
		Tags:       tags,
		watchPaths: paths,
		logger:     o.logger,
	}, nil
}

// Watcher returns a watcher over the backing store files. In-memory apps
// have nothing to watch.
func (a *App) Watcher() (*store.Watcher, error) {
	if len(a.watchPaths) == 0 {
		return nil, fmt.Errorf("in-memory store has no files to watch")
	}
	return store.NewWatcher(a.logger, a.watchPaths...)
}
