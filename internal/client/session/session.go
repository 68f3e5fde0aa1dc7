// Package session owns the client-side view of the remote file store: the
// file list, the in-flight upload and delete, and the last user-facing
// error. Every remote call goes through a Session, which folds the result
// back into its state.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophdrop/internal/client/client"
	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/client/preview"
	"github.com/dmitrijs2005/gophdrop/internal/formatx"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
)

// MaxPreviewBytes caps how much of a text file LoadOne reads.
const MaxPreviewBytes = 10 << 20

// Detail is a single file prepared for display.
type Detail struct {
	File    models.FileRecord
	Preview *preview.Target
}

// Session is safe for concurrent use. Its mutex is never held across a
// remote call; each result is applied when it arrives.
type Session struct {
	client client.Client
	log    logging.Logger

	mu    sync.Mutex
	state State

	obsMu       sync.Mutex
	observers   map[int]Observer
	nextObs     int
	lastEmitted int
	closed      bool
}

func New(c client.Client, log logging.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		client: c,
		log:    log.With("component", "session"),
		state: State{
			ListStatus: ListIdle,
			Upload:     UploadStatus{Phase: UploadIdle},
		},
		observers:   make(map[int]Observer),
		lastEmitted: -1,
	}
}

// State returns a snapshot. The Files slice is a copy.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Refresh replaces the file list with the server's. Overlapping calls are
// not coalesced: the one that resolves last wins.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state.ListStatus = ListLoading
	s.state.LastError = ""
	s.mu.Unlock()

	files, err := s.client.ListFiles(ctx)
	if err != nil {
		s.log.Error(ctx, "refresh failed", "error", err)

		s.mu.Lock()
		s.state.ListStatus = ListError
		s.state.LastError = MsgLoadFailed
		s.mu.Unlock()
		return fmt.Errorf("refresh: %w", err)
	}

	files, dropped := models.DedupByID(files)
	if dropped > 0 {
		s.log.Warn(ctx, "server returned duplicate file ids", "dropped", dropped)
	}

	s.mu.Lock()
	s.state.Files = files
	s.state.ListStatus = ListReady
	s.mu.Unlock()
	return nil
}

// Upload sends one file. The extension is checked before any network call.
// On success the list is re-fetched and the upload is left in the done
// phase until AcknowledgeUpload is called.
func (s *Session) Upload(ctx context.Context, data []byte, filename string) error {
	if !formatx.IsSupported(filename) {
		err := &UnsupportedTypeError{Filename: filename, Extension: formatx.Extension(filename)}
		s.mu.Lock()
		s.state.LastError = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	switch s.state.Upload.Phase {
	case UploadUploading:
		s.mu.Unlock()
		return ErrUploadInProgress
	case UploadDone, UploadError:
		s.mu.Unlock()
		return ErrUploadNotAcknowledged
	}
	s.state.Upload = UploadStatus{Phase: UploadUploading}
	s.state.LastError = ""
	s.mu.Unlock()

	s.obsMu.Lock()
	s.lastEmitted = -1
	s.obsMu.Unlock()
	s.emit(ProgressEvent{Filename: filename, Percent: 0})

	log := s.log.With("filename", filename, "size", len(data))
	log.Info(ctx, "upload started")

	_, err := s.client.UploadFile(ctx, data, filename, func(p int) {
		s.setProgress(filename, p)
	})
	if err != nil {
		log.Error(ctx, "upload failed", "error", err)

		s.mu.Lock()
		s.state.Upload.Phase = UploadError
		s.state.LastError = MsgUploadFailed
		s.mu.Unlock()
		return fmt.Errorf("upload %q: %w", filename, err)
	}

	log.Info(ctx, "upload finished")

	if err := s.Refresh(ctx); err != nil {
		log.Warn(ctx, "refresh after upload failed", "error", err)
	}

	s.mu.Lock()
	s.state.Upload = UploadStatus{Phase: UploadDone, Progress: 100}
	s.mu.Unlock()
	s.emit(ProgressEvent{Filename: filename, Percent: 100})
	return nil
}

// AcknowledgeUpload returns a finished or failed upload to idle.
func (s *Session) AcknowledgeUpload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Upload.Phase == UploadDone || s.state.Upload.Phase == UploadError {
		s.state.Upload = UploadStatus{Phase: UploadIdle}
	}
}

func (s *Session) setProgress(filename string, p int) {
	p = min(max(p, 0), 100)

	s.mu.Lock()
	if s.state.Upload.Phase != UploadUploading || p <= s.state.Upload.Progress {
		s.mu.Unlock()
		return
	}
	s.state.Upload.Progress = p
	s.mu.Unlock()

	s.emit(ProgressEvent{Filename: filename, Percent: p})
}

// Remove deletes one file and drops it from the list without re-fetching.
func (s *Session) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	if s.state.DeletingID != "" {
		s.mu.Unlock()
		return ErrDeleteInProgress
	}
	s.state.DeletingID = id
	s.state.LastError = ""
	s.mu.Unlock()

	err := s.client.DeleteFile(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DeletingID = ""
	if err != nil {
		s.log.Error(ctx, "delete failed", "id", id, "error", err)
		s.state.LastError = MsgDeleteFailed
		return fmt.Errorf("remove %s: %w", id, err)
	}
	s.state.Files = models.RemoveByID(s.state.Files, id)
	return nil
}

// LoadOne fetches a file record and, for text strategies, its content.
// A failed content fetch degrades the preview instead of failing the call.
func (s *Session) LoadOne(ctx context.Context, id string) (*Detail, error) {
	rec, err := s.client.GetFile(ctx, id)
	if err != nil {
		s.log.Error(ctx, "load file failed", "id", id, "error", err)
		return nil, &LoadError{ID: id, Err: err}
	}

	t := preview.NewTarget(rec.OriginalName, s.client.ViewURL(id), s.client.DownloadURL(id))
	if t.Strategy.NeedsContent() {
		content, err := s.readContent(ctx, id)
		if err != nil {
			s.log.Warn(ctx, "load file content failed", "id", id, "error", err)
			t.MarkUnavailable()
		} else {
			t.SetContent(content)
		}
	}

	return &Detail{File: *rec, Preview: t}, nil
}

func (s *Session) readContent(ctx context.Context, id string) (string, error) {
	body, err := s.client.DownloadFile(ctx, id)
	if err != nil {
		return "", err
	}
	defer body.Close()

	b, err := io.ReadAll(io.LimitReader(body, MaxPreviewBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Download streams a file into w and reports the bytes written.
func (s *Session) Download(ctx context.Context, id string, w io.Writer) (int64, error) {
	body, err := s.client.DownloadFile(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", id, err)
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download %s: %w", id, err)
	}
	return n, nil
}

func (s *Session) DownloadURL(id string) string { return s.client.DownloadURL(id) }

func (s *Session) ViewURL(id string) string { return s.client.ViewURL(id) }

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastError = ""
}

// Subscribe registers o for progress events until the returned function is
// called or the session is closed.
func (s *Session) Subscribe(o Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	if s.closed {
		return func() {}
	}

	id := s.nextObs
	s.nextObs++
	s.observers[id] = o

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

// Close drops every observer. Later subscriptions are ignored.
func (s *Session) Close() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.closed = true
	clear(s.observers)
}

// emit delivers ev to every observer, skipping values that would go
// backwards within the current upload.
func (s *Session) emit(ev ProgressEvent) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	if ev.Percent <= s.lastEmitted {
		return
	}
	s.lastEmitted = ev.Percent
	for _, o := range s.observers {
		o.ProgressChanged(ev)
	}
}
