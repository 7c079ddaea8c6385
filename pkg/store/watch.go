package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event reports an external change to a watched store file, for instance
// a sync tool or an editor rewriting the JSON directly. The store keeps
// no cache, so the next read already reflects the change; the event only
// tells interactive callers that a re-read is worth doing.
type Event struct {
	// File is the base name of the changed store file.
	File string
	// At is the time the change was observed.
	At time.Time
}

// Watcher observes the backing files of one or more collections.
type Watcher struct {
	dir    string
	files  map[string]bool
	logger *zap.Logger
}

// NewWatcher watches the given file paths, which must share one parent
// directory. A nil logger is replaced with a no-op logger.
func NewWatcher(logger *zap.Logger, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no store files to watch")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(paths[0])
	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		if filepath.Dir(p) != dir {
			return nil, fmt.Errorf("store files must share a directory: %s", p)
		}
		files[filepath.Base(p)] = true
	}

	return &Watcher{dir: dir, files: files, logger: logger}, nil
}

// Watch emits a debounced Event whenever a watched file is written,
// created, renamed or removed. The channel closes when ctx is cancelled
// or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the files: atomic renames replace the
	// inode, and a file-level watch would silently die after the first
	// write.
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	events := make(chan Event)
	go w.run(ctx, fsw, events)
	return events, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, events chan<- Event) {
	defer close(events)
	defer fsw.Close()

	debounce := newDebouncer(50 * time.Millisecond)
	defer debounce.stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !w.files[name] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("store file changed",
				zap.String("file", name), zap.String("op", ev.Op.String()))
			debounce.add(name, func() {
				select {
				case events <- Event{File: name, At: time.Now()}:
				case <-ctx.Done():
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))
		}
	}
}

// debouncer coalesces bursts of events per key into a single callback.
type debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.timers {
		t.Stop()
	}
	d.timers = make(map[string]*time.Timer)
}
