package generate

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
)

// DefaultDebounce coalesces bursts of file events into one run.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs a generation whenever one of its files changes. Runs are
// debounced and never overlap.
type Watcher struct {
	files    map[string]bool
	watcher  *fsnotify.Watcher
	run      func() error
	debounce time.Duration
	log      *zap.SugaredLogger

	mu    sync.Mutex
	timer *time.Timer
	runMu sync.Mutex
}

// NewWatcher watches files and calls run after each change. The parent
// directories are watched so that editors replacing a file are seen too.
func NewWatcher(run func() error, files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		watcher:  fw,
		run:      run,
		debounce: DefaultDebounce,
		log:      logger.ComponentLogger("generate.watch"),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// SetDebounce changes the quiet period before a run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("Watched file changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.trigger)
}

func (w *Watcher) trigger() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	start := time.Now()
	if err := w.run(); err != nil {
		w.log.Errorw("Regeneration failed", logger.FieldError, err)
		return
	}
	w.log.Infow("Regenerated", logger.FieldDurationMS, time.Since(start).Milliseconds())
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
