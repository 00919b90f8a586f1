package workers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

type watcherFixture struct {
	watcher     *FolderWatcher
	preferences service.PreferencesService
	events      <-chan models.Event
	cancel      context.CancelFunc
}

func newWatcherFixture(t *testing.T, workspace config.Workspace) *watcherFixture {
	t.Helper()

	preferences, err := service.NewPreferencesService(context.Background(), store.NewMemoryStorage(), "config", logger.Nop())
	require.NoError(t, err)

	hub := service.NewEventsService(64, logger.Nop())
	events, unsubscribe := hub.Subscribe()
	t.Cleanup(unsubscribe)

	watcher := NewFolderWatcher(preferences, hub, workspace, config.Workers{WatchBuffer: 16}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	watcher.Run(ctx)
	t.Cleanup(func() {
		cancel()
		watcher.Wait()
	})

	return &watcherFixture{
		watcher:     watcher,
		preferences: preferences,
		events:      events,
		cancel:      cancel,
	}
}

// waitFor reads events until one matches want or the timeout expires.
func (f *watcherFixture) waitFor(t *testing.T, want models.FSEvent) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event := <-f.events:
			if event.Type != models.EventFileSystemChanged {
				continue
			}
			if got, ok := event.Data.(models.FSEvent); ok && got == want {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %+v", want)
		}
	}
}

func TestFolderWatcher_ReportsDocuments(t *testing.T) {
	dir := t.TempDir()
	f := newWatcherFixture(t, config.Workspace{})

	require.NoError(t, f.watcher.Watch(dir))
	assert.True(t, f.watcher.Active())
	assert.Equal(t, dir, f.watcher.Folder())

	doc := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(doc, []byte("# a"), 0o644))
	f.waitFor(t, models.FSEvent{Type: models.FSEventFileCreated, Path: doc})

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	f.waitFor(t, models.FSEvent{Type: models.FSEventDirCreated, Path: sub})

	// the new directory is watched as well
	nested := filepath.Join(sub, "b.json")
	require.NoError(t, os.WriteFile(nested, []byte("{}"), 0o644))
	f.waitFor(t, models.FSEvent{Type: models.FSEventFileCreated, Path: nested})

	require.NoError(t, os.Remove(doc))
	f.waitFor(t, models.FSEvent{Type: models.FSEventFileRemoved, Path: doc})
}

func TestFolderWatcher_FollowsWatchPreference(t *testing.T) {
	dir := t.TempDir()
	f := newWatcherFixture(t, config.Workspace{})
	ctx := context.Background()

	require.NoError(t, f.watcher.Watch(dir))
	require.True(t, f.watcher.Active())

	_, err := f.preferences.Update(ctx, models.ConfigPatch{Watch: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, f.watcher.Active())
	assert.Equal(t, dir, f.watcher.Folder(), "folder is remembered while paused")

	_, err = f.preferences.Update(ctx, models.ConfigPatch{Watch: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, f.watcher.Active())

	f.watcher.Unwatch()
	assert.False(t, f.watcher.Active())
	assert.Empty(t, f.watcher.Folder())
}

func TestFolderWatcher_WatchErrors(t *testing.T) {
	root := t.TempDir()
	f := newWatcherFixture(t, config.Workspace{Root: root})

	assert.ErrorIs(t, f.watcher.Watch(filepath.Join(root, "missing")), service.ErrFileNotFound)
	assert.ErrorIs(t, f.watcher.Watch(filepath.Dir(root)), service.ErrOutsideWorkspace)

	file := filepath.Join(root, "a.md")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.ErrorIs(t, f.watcher.Watch(file), ErrNotADirectory)
	assert.False(t, f.watcher.Active())
}

func TestFolderWatcher_DefaultFolder(t *testing.T) {
	dir := t.TempDir()
	f := newWatcherFixture(t, config.Workspace{DefaultFolder: dir})

	assert.True(t, f.watcher.Active())
	assert.Equal(t, dir, f.watcher.Folder())
}

func TestFolderWatcher_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	f := newWatcherFixture(t, config.Workspace{DefaultFolder: dir})

	f.cancel()
	f.watcher.Wait()
	assert.False(t, f.watcher.Active())
}

func TestWatchSession_Translate(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	session, err := newWatchSession(dir, 0, logger.Nop())
	require.NoError(t, err)
	defer session.watcher.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  []models.FSEvent
	}{
		{
			name:  "markdown write",
			event: fsnotify.Event{Name: filepath.Join(dir, "a.md"), Op: fsnotify.Write},
			want:  []models.FSEvent{{Type: models.FSEventFileWritten, Path: filepath.Join(dir, "a.md")}},
		},
		{
			name:  "text file ignored",
			event: fsnotify.Event{Name: filepath.Join(dir, "a.txt"), Op: fsnotify.Write},
		},
		{
			name:  "chmod ignored",
			event: fsnotify.Event{Name: filepath.Join(dir, "a.md"), Op: fsnotify.Chmod},
		},
		{
			name:  "rename waits for the new name",
			event: fsnotify.Event{Name: filepath.Join(dir, "a.ahtml"), Op: fsnotify.Rename},
		},
		{
			name:  "create completes the rename",
			event: fsnotify.Event{Name: filepath.Join(dir, "b.ahtml"), Op: fsnotify.Create},
			want: []models.FSEvent{{
				Type:  models.FSEventFileRenamed,
				Path:  filepath.Join(dir, "a.ahtml"),
				Path2: filepath.Join(dir, "b.ahtml"),
			}},
		},
		{
			name:  "dir rename waits",
			event: fsnotify.Event{Name: sub, Op: fsnotify.Rename},
		},
		{
			name:  "unpaired rename flushed before the next event",
			event: fsnotify.Event{Name: filepath.Join(dir, "c.md"), Op: fsnotify.Write},
			want: []models.FSEvent{
				{Type: models.FSEventDirRenamed, Path: sub},
				{Type: models.FSEventFileWritten, Path: filepath.Join(dir, "c.md")},
			},
		},
		{
			name:  "dir no longer known after rename",
			event: fsnotify.Event{Name: sub, Op: fsnotify.Remove},
		},
		{
			name:  "rename to a reported extension",
			event: fsnotify.Event{Name: filepath.Join(dir, "draft.txt"), Op: fsnotify.Rename},
		},
		{
			name:  "paired by the new name",
			event: fsnotify.Event{Name: filepath.Join(dir, "draft.md"), Op: fsnotify.Create},
			want: []models.FSEvent{{
				Type:  models.FSEventFileRenamed,
				Path:  filepath.Join(dir, "draft.txt"),
				Path2: filepath.Join(dir, "draft.md"),
			}},
		},
	}

	// steps share the session, so they run in order
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.translate(tt.event)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchSession_FlushRename(t *testing.T) {
	dir := t.TempDir()
	session, err := newWatchSession(dir, 0, logger.Nop())
	require.NoError(t, err)
	defer session.watcher.Close()

	assert.Empty(t, session.flushRename())

	moved := filepath.Join(dir, "gone.md")
	assert.Empty(t, session.translate(fsnotify.Event{Name: moved, Op: fsnotify.Rename}))
	assert.Equal(t, []models.FSEvent{{Type: models.FSEventFileRenamed, Path: moved}}, session.flushRename())
	assert.Nil(t, session.pending)

	assert.Empty(t, session.translate(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Rename}))
	assert.Empty(t, session.flushRename())
}

func TestFolderWatcher_ReportsRenameWithNewPath(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.md")
	require.NoError(t, os.WriteFile(oldPath, []byte("# old"), 0o644))

	f := newWatcherFixture(t, config.Workspace{})
	require.NoError(t, f.watcher.Watch(dir))

	newPath := filepath.Join(dir, "new.md")
	require.NoError(t, os.Rename(oldPath, newPath))

	f.waitFor(t, models.FSEvent{Type: models.FSEventFileRenamed, Path: oldPath, Path2: newPath})
}

func TestFolderWatcher_RenameOutOfTree(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	oldPath := filepath.Join(dir, "leaving.md")
	require.NoError(t, os.WriteFile(oldPath, []byte("# bye"), 0o644))

	f := newWatcherFixture(t, config.Workspace{})
	require.NoError(t, f.watcher.Watch(dir))

	require.NoError(t, os.Rename(oldPath, filepath.Join(outside, "leaving.md")))

	f.waitFor(t, models.FSEvent{Type: models.FSEventFileRenamed, Path: oldPath})
}
