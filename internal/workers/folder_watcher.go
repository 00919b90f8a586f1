// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// ErrNotADirectory is returned by [FolderWatcher.Watch] for a path that is
// not a directory.
var ErrNotADirectory = errors.New("not a directory")

// reportedExtensions are the file types the editor reacts to.
var reportedExtensions = []string{".md", ".ahtml", ".json"}

// renamePairWindow is how long a rename waits for the Create carrying its new
// name. Without one the path left the watched tree and the rename is sent
// with an empty Path2.
const renamePairWindow = 50 * time.Millisecond

// FolderWatcher publishes file-system-changed events for the opened folder.
// It only watches while the "watch" preference is not false.
type FolderWatcher struct {
	preferences service.PreferencesService
	events      service.EventsService
	workspace   config.Workspace
	buffer      uint
	logger      *logger.Logger

	mu          sync.Mutex
	ctx         context.Context
	folder      string
	enabled     bool
	session     *watchSession
	unsubscribe func()
	stopped     chan struct{}
}

// NewFolderWatcher creates an idle watcher. Run activates it.
func NewFolderWatcher(preferences service.PreferencesService, events service.EventsService, workspace config.Workspace, workers config.Workers, logger *logger.Logger) *FolderWatcher {
	buffer := uint(0)
	if workers.WatchBuffer > 0 {
		buffer = uint(workers.WatchBuffer)
	}

	return &FolderWatcher{
		preferences: preferences,
		events:      events,
		workspace:   workspace,
		buffer:      buffer,
		logger:      logger,
		stopped:     make(chan struct{}),
	}
}

// Run subscribes to preference changes and starts watching
// Workspace.DefaultFolder when it is set. Everything stops when ctx is done.
func (w *FolderWatcher) Run(ctx context.Context) {
	w.mu.Lock()
	w.ctx = ctx
	w.enabled = w.preferences.Get().WatchEnabled()
	w.mu.Unlock()

	w.unsubscribe = w.preferences.Subscribe(func(view models.ConfigView) {
		w.setEnabled(view.Config.WatchEnabled())
	})

	if w.workspace.DefaultFolder != "" {
		if err := w.Watch(w.workspace.DefaultFolder); err != nil {
			w.logger.Err(err).Str("func", "*FolderWatcher.Run").Str("folder", w.workspace.DefaultFolder).Msg("error watching default folder")
		}
	}

	go func() {
		<-ctx.Done()
		w.unsubscribe()

		w.mu.Lock()
		w.stopSession()
		w.mu.Unlock()

		close(w.stopped)
	}()
}

// Wait blocks until the context given to Run is done and the watcher has
// released its resources.
func (w *FolderWatcher) Wait() {
	<-w.stopped
}

// Watch replaces the watched folder. While the preference is off the folder
// is remembered and watched once it is turned on again.
func (w *FolderWatcher) Watch(folder string) error {
	path, err := service.WorkspacePath(w.workspace, folder)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return service.ErrFileNotFound
		}
		return err
	}
	if !info.IsDir() {
		return ErrNotADirectory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.folder = path
	return w.restartSession()
}

// Unwatch stops watching and forgets the folder.
func (w *FolderWatcher) Unwatch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.folder = ""
	w.stopSession()
}

// Folder returns the folder set by Watch.
func (w *FolderWatcher) Folder() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.folder
}

// Active reports whether events are being delivered right now.
func (w *FolderWatcher) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session != nil
}

func (w *FolderWatcher) setEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.enabled == enabled {
		return
	}
	w.enabled = enabled

	if err := w.restartSession(); err != nil {
		w.logger.Err(err).Str("func", "*FolderWatcher.setEnabled").Str("folder", w.folder).Msg("error restarting watcher")
	}
}

// restartSession must be called with mu held.
func (w *FolderWatcher) restartSession() error {
	w.stopSession()

	if !w.enabled || w.folder == "" || w.ctx == nil || w.ctx.Err() != nil {
		return nil
	}

	session, err := newWatchSession(w.folder, w.buffer, w.logger)
	if err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}
	w.session = session
	go session.loop(w.events.Publish)

	w.logger.Info().Str("func", "*FolderWatcher.restartSession").Str("folder", w.folder).Msg("watching folder")
	return nil
}

// stopSession must be called with mu held.
func (w *FolderWatcher) stopSession() {
	if w.session == nil {
		return
	}
	w.session.close()
	w.session = nil
}

// watchSession is one fsnotify watcher over a folder tree.
type watchSession struct {
	watcher *fsnotify.Watcher
	logger  *logger.Logger
	// dirs and pending are owned by the loop goroutine once it started.
	dirs    map[string]struct{}
	pending *models.FSEvent
	done    chan struct{}
}

func newWatchSession(root string, buffer uint, logger *logger.Logger) (*watchSession, error) {
	var (
		watcher *fsnotify.Watcher
		err     error
	)
	if buffer > 0 {
		watcher, err = fsnotify.NewBufferedWatcher(buffer)
	} else {
		watcher, err = fsnotify.NewWatcher()
	}
	if err != nil {
		return nil, err
	}

	s := &watchSession{
		watcher: watcher,
		logger:  logger,
		dirs:    make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	if err := s.addTree(root); err != nil {
		watcher.Close()
		return nil, err
	}
	return s, nil
}

// addTree watches root and every directory below it; fsnotify itself is not
// recursive.
func (s *watchSession) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := s.watcher.Add(path); err != nil {
			return err
		}
		s.dirs[path] = struct{}{}
		return nil
	})
}

func (s *watchSession) loop(publish func(models.EventType, any)) {
	defer close(s.done)

	emit := func(events []models.FSEvent) {
		for _, event := range events {
			publish(models.EventFileSystemChanged, event)
		}
	}

	timer := time.NewTimer(renamePairWindow)
	timer.Stop()
	defer timer.Stop()
	var expired <-chan time.Time

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			emit(s.translate(event))
			// only a Rename leaves a pending event behind
			if s.pending != nil {
				timer.Reset(renamePairWindow)
				expired = timer.C
			} else {
				timer.Stop()
				expired = nil
			}
		case <-expired:
			expired = nil
			emit(s.flushRename())
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Err(err).Str("func", "*watchSession.loop").Msg("watcher error")
		}
	}
}

// translate maps an fsnotify event to the editor's event codes. fsnotify
// reports a move as Rename of the old name followed by Create of the new one;
// the pair becomes a single renamed event with Path2 set.
func (s *watchSession) translate(event fsnotify.Event) []models.FSEvent {
	if event.Has(fsnotify.Create) && s.pending != nil {
		return s.pairRename(event.Name)
	}

	events := s.flushRename()
	if event.Has(fsnotify.Rename) {
		s.holdRename(event.Name)
		return events
	}
	if fsEvent, ok := s.translateOp(event); ok {
		events = append(events, fsEvent)
	}
	return events
}

// translateOp maps every operation but Rename. New directories are added to
// the watcher on the way.
func (s *watchSession) translateOp(event fsnotify.Event) (models.FSEvent, bool) {
	path := event.Name
	_, wasDir := s.dirs[path]

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(path)
		if err != nil {
			return models.FSEvent{}, false
		}
		if info.IsDir() {
			s.watchNewDir(path)
			return models.FSEvent{Type: models.FSEventDirCreated, Path: path}, true
		}
		return fileEvent(models.FSEventFileCreated, path)

	case event.Has(fsnotify.Write):
		if wasDir {
			return models.FSEvent{Type: models.FSEventDirWritten, Path: path}, true
		}
		return fileEvent(models.FSEventFileWritten, path)

	case event.Has(fsnotify.Remove):
		if wasDir {
			s.forget(path)
			return models.FSEvent{Type: models.FSEventDirRemoved, Path: path}, true
		}
		return fileEvent(models.FSEventFileRemoved, path)
	}

	return models.FSEvent{}, false
}

func (s *watchSession) holdRename(path string) {
	eventType := models.FSEventFileRenamed
	if _, wasDir := s.dirs[path]; wasDir {
		s.forget(path)
		eventType = models.FSEventDirRenamed
	}
	s.pending = &models.FSEvent{Type: eventType, Path: path}
}

// pairRename completes the pending rename with its new name. A file rename is
// reported when either name has a reported extension.
func (s *watchSession) pairRename(newPath string) []models.FSEvent {
	event := *s.pending
	s.pending = nil
	event.Path2 = newPath

	if event.Type == models.FSEventDirRenamed {
		s.watchNewDir(newPath)
		return []models.FSEvent{event}
	}
	if !isReported(event.Path) && !isReported(newPath) {
		return nil
	}
	return []models.FSEvent{event}
}

// flushRename sends a rename that found no new name inside the tree.
func (s *watchSession) flushRename() []models.FSEvent {
	if s.pending == nil {
		return nil
	}
	event := *s.pending
	s.pending = nil

	if event.Type == models.FSEventFileRenamed && !isReported(event.Path) {
		return nil
	}
	return []models.FSEvent{event}
}

func (s *watchSession) watchNewDir(path string) {
	if err := s.addTree(path); err != nil {
		s.logger.Err(err).Str("func", "*watchSession.watchNewDir").Str("path", path).Msg("error watching new directory")
	}
}

func (s *watchSession) forget(dir string) {
	prefix := dir + string(filepath.Separator)
	for path := range s.dirs {
		if path == dir || strings.HasPrefix(path, prefix) {
			delete(s.dirs, path)
		}
	}
}

func (s *watchSession) close() {
	s.watcher.Close()
	<-s.done
}

func fileEvent(eventType models.FSEventType, path string) (models.FSEvent, bool) {
	if !isReported(path) {
		return models.FSEvent{}, false
	}
	return models.FSEvent{Type: eventType, Path: path}, true
}

func isReported(path string) bool {
	return slices.Contains(reportedExtensions, strings.ToLower(filepath.Ext(path)))
}
