// Package fakestore is an in-memory implementation of the storage REST API.
// It backs the gateway and session tests and the devstore binary.
package fakestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/formatx"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
)

// MaxUploadSize is the largest accepted file body.
const MaxUploadSize = 10 << 20

// Op names a route for failure and latency injection.
type Op string

const (
	OpHealth   Op = "health"
	OpDatabase Op = "database"
	OpList     Op = "list"
	OpGet      Op = "get"
	OpUpload   Op = "upload"
	OpDownload Op = "download"
	OpDelete   Op = "delete"
)

type entry struct {
	rec  models.FileRecord
	data []byte
}

// Store keeps uploaded files in memory. The zero value is not usable; use New.
type Store struct {
	mu       sync.Mutex
	files    map[string]*entry
	failures map[Op][]int
	latency  map[Op]time.Duration
	calls    map[Op]int

	bare bool
	now  func() time.Time
	log  logging.Logger
}

type Option func(*Store)

// WithBareResponses makes the store answer with bare payloads instead of the
// {success,data} envelope.
func WithBareResponses() Option {
	return func(s *Store) { s.bare = true }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(opts ...Option) *Store {
	s := &Store{
		files:    make(map[string]*entry),
		failures: make(map[Op][]int),
		latency:  make(map[Op]time.Duration),
		calls:    make(map[Op]int),
		now:      time.Now,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "fakestore")
	return s
}

// Seed stores a file directly, bypassing HTTP, and returns its record.
func (s *Store) Seed(name string, data []byte) models.FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(name, data)
}

// FailNext makes the next call to op answer with status. Calls queue up.
func (s *Store) FailNext(op Op, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = append(s.failures[op], status)
}

// SetLatency delays every call to op by d before it is handled.
func (s *Store) SetLatency(op Op, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency[op] = d
}

// Calls reports how many requests reached op.
func (s *Store) Calls(op Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// Handler returns the API router. Routes are mounted under /api, matching
// the default client base URL.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.wrap(OpHealth, s.health))
		r.Get("/health/database", s.wrap(OpDatabase, s.health))
		r.Get("/files", s.wrap(OpList, s.list))
		r.Post("/files", s.wrap(OpUpload, s.upload))
		r.Get("/files/{id}", s.wrap(OpGet, s.get))
		r.Delete("/files/{id}", s.wrap(OpDelete, s.delete))
		r.Get("/files/{id}/download", s.wrap(OpDownload, s.serveFile(true)))
		r.Get("/files/{id}/view", s.wrap(OpDownload, s.serveFile(false)))
	})
	return r
}

func (s *Store) wrap(op Op, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[op]++
		delay := s.latency[op]
		status := 0
		if q := s.failures[op]; len(q) > 0 {
			status, s.failures[op] = q[0], q[1:]
		}
		s.mu.Unlock()

		s.log.Debug(r.Context(), "request", "op", op, "method", r.Method, "path", r.URL.Path,
			"request_id", r.Header.Get("X-Request-ID"))

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if status != 0 {
			s.writeError(w, status, fmt.Sprintf("injected failure for %s", op))
			return
		}
		h(w, r)
	}
}

func (s *Store) health(w http.ResponseWriter, _ *http.Request) {
	s.writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Store) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]models.FileRecord, 0, len(s.files))
	for _, e := range s.files {
		out = append(out, e.rec)
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].ID < out[j].ID
	})
	s.writeData(w, http.StatusOK, out)
}

func (s *Store) get(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "File not found")
		return
	}
	s.writeData(w, http.StatusOK, e.rec)
}

func (s *Store) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "Malformed multipart body")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !formatx.IsSupported(header.Filename) {
		s.writeError(w, http.StatusBadRequest, "File type not supported")
		return
	}
	if header.Size > MaxUploadSize {
		s.writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	s.mu.Lock()
	rec := s.put(header.Filename, data)
	s.mu.Unlock()

	s.log.Info(r.Context(), "file stored", "id", rec.ID, "name", rec.OriginalName, "size", rec.Size)
	s.writeData(w, http.StatusCreated, rec)
}

func (s *Store) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, ok := s.files[id]
	delete(s.files, id)
	s.mu.Unlock()

	if !ok {
		s.writeError(w, http.StatusNotFound, "File not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Store) serveFile(attachment bool) http.HandlerFunc {
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := s.lookup(chi.URLParam(r, "id"))
		if !ok {
			s.writeError(w, http.StatusNotFound, "File not found")
			return
		}
		w.Header().Set("Content-Type", e.rec.MimeType)
		w.Header().Set("Content-Disposition",
			mime.FormatMediaType(disposition, map[string]string{"filename": e.rec.OriginalName}))
		w.Header().Set("Content-Length", fmt.Sprint(len(e.data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(e.data)
	}
}

func (s *Store) lookup(id string) (entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.files[id]
	if !ok {
		return entry{}, false
	}
	return *e, true
}

// put must be called with s.mu held.
func (s *Store) put(name string, data []byte) models.FileRecord {
	mt := mime.TypeByExtension("." + formatx.Extension(name))
	if mt == "" {
		mt = "application/octet-stream"
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	rec := models.FileRecord{
		ID:           uuid.NewString(),
		OriginalName: name,
		Size:         int64(len(data)),
		MimeType:     mt,
		UploadDate:   s.now().UTC(),
	}
	s.files[rec.ID] = &entry{rec: rec, data: append([]byte(nil), data...)}
	return rec
}

func (s *Store) writeData(w http.ResponseWriter, status int, v any) {
	var body any = v
	if !s.bare {
		body = models.Envelope[any]{Success: true, Data: v}
	}
	writeJSON(w, status, body)
}

func (s *Store) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.Envelope[any]{Success: false, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
