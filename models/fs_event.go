package models

// FSEventType encodes what happened to a watched path. The values match the
// codes the editor already understands.
type FSEventType int

const (
	FSEventDirCreated  FSEventType = 1
	FSEventFileCreated FSEventType = 2
	FSEventDirWritten  FSEventType = 3
	FSEventFileWritten FSEventType = 4
	FSEventDirRenamed  FSEventType = 5
	FSEventFileRenamed FSEventType = 6
	FSEventDirRemoved  FSEventType = -1
	FSEventFileRemoved FSEventType = -2
)

// FSEvent is a change inside the watched folder. Path2 is the rename target
// when it is known.
type FSEvent struct {
	Type  FSEventType `json:"type_"`
	Path  string      `json:"path"`
	Path2 string      `json:"path2"`
}

// WatchStatus reports the folder the watcher was pointed at and whether
// events are delivered for it right now.
type WatchStatus struct {
	Folder string `json:"folder"`
	Active bool   `json:"active"`
}
