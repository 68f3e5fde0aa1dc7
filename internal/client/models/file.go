// Package models defines the data exchanged with the storage API.
package models

import "time"

// FileRecord is one stored file as known to the client. Field names follow
// the remote API's JSON.
type FileRecord struct {
	// ID is assigned by the server and never changes.
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	UploadDate   time.Time `json:"uploadDate"`
}

// Envelope is the {success, data, message} wrapper the storage API puts
// around most responses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RemoveByID returns files without the record whose ID is id. Order is
// preserved; the input slice is not modified.
func RemoveByID(files []FileRecord, id string) []FileRecord {
	out := make([]FileRecord, 0, len(files))
	for _, f := range files {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// DedupByID keeps the first occurrence of every ID and reports how many
// records were dropped.
func DedupByID(files []FileRecord) ([]FileRecord, int) {
	seen := make(map[string]struct{}, len(files))
	out := make([]FileRecord, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	return out, len(files) - len(out)
}

// FindByID returns the record with the given id.
func FindByID(files []FileRecord, id string) (FileRecord, bool) {
	for _, f := range files {
		if f.ID == id {
			return f, true
		}
	}
	return FileRecord{}, false
}
