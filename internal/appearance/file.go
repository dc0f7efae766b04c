package appearance

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/authkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

// FileSignal reads the OS preference from a file holding "dark" or "light"
// and watches it for changes. Desktop hooks can write the file whenever the
// system appearance flips.
type FileSignal struct {
	path string
	log  *logger.Logger
	hub  hub

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewFileSignal watches path. The file does not need to exist yet.
func NewFileSignal(path string, log *logger.Logger) *FileSignal {
	return &FileSignal{path: filepath.Clean(path), log: log.WithField("signal", "file")}
}

// PrefersDark reads the file. Anything other than "dark" means light.
func (s *FileSignal) PrefersDark() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(string(data)), "dark")
}

// Subscribe registers fn for changes. The returned function is idempotent.
func (s *FileSignal) Subscribe(fn func(bool)) func() {
	id, first := s.hub.add(fn)
	if first {
		s.hub.prime(s.PrefersDark())
		if err := s.watch(); err != nil {
			s.log.Warn(err, "appearance file not watched")
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if s.hub.remove(id) {
				s.unwatch()
			}
		})
	}
}

// Refresh re-reads the file and notifies subscribers on change.
func (s *FileSignal) Refresh() bool {
	if s.hub.size() == 0 {
		return false
	}
	return s.hub.publish(s.PrefersDark())
}

// Watching reports whether a filesystem watch is active.
func (s *FileSignal) Watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watcher != nil
}

func (s *FileSignal) watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.NewSignalError(SourceFile, err)
	}
	// The directory is watched so atomic replacements of the file are seen.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return apperrors.NewSignalError(SourceFile, err)
	}

	s.watcher = watcher
	go s.loop(watcher)
	return nil
}

func (s *FileSignal) unwatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return
	}
	_ = s.watcher.Close()
	s.watcher = nil
}

func (s *FileSignal) loop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				s.Refresh()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn(apperrors.NewSignalError(SourceFile, err), "appearance watch error")
		}
	}
}
