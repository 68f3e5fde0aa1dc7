package session

import (
	"slices"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
)

type ListStatus string

const (
	ListIdle    ListStatus = "idle"
	ListLoading ListStatus = "loading"
	ListReady   ListStatus = "ready"
	ListError   ListStatus = "error"
)

type UploadPhase string

const (
	UploadIdle      UploadPhase = "idle"
	UploadUploading UploadPhase = "uploading"
	UploadDone      UploadPhase = "done"
	UploadError     UploadPhase = "error"
)

// UploadStatus is the upload lifecycle. Progress is meaningful while
// uploading and is 100 once done.
type UploadStatus struct {
	Phase    UploadPhase
	Progress int
}

// State is a point-in-time copy of the session.
type State struct {
	Files      []models.FileRecord
	ListStatus ListStatus
	Upload     UploadStatus
	// DeletingID is the file currently being removed, or "".
	DeletingID string
	LastError  string
}

func (s State) clone() State {
	s.Files = slices.Clone(s.Files)
	return s
}

// ProgressEvent reports upload progress for one file.
type ProgressEvent struct {
	Filename string
	Percent  int
}

// Observer receives upload progress. Within one upload, Percent never
// decreases. Implementations must not call Subscribe.
type Observer interface {
	ProgressChanged(ev ProgressEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev ProgressEvent)

func (f ObserverFunc) ProgressChanged(ev ProgressEvent) { f(ev) }
