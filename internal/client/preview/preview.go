// Package preview decides how a stored file is shown and prepares its
// textual content for display.
package preview

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophdrop/internal/formatx"
)

// Strategy is the way a file is presented.
type Strategy string

const (
	PlainText      Strategy = "plain-text"
	StructuredText Strategy = "structured-text"
	Image          Strategy = "image"
	Document       Strategy = "document"
	Unsupported    Strategy = "unsupported"
)

const (
	// ContentUnavailableText replaces content that could not be fetched.
	ContentUnavailableText = "Unable to load file content"
	invalidFormatNotice    = "Invalid JSON format detected. Showing original content without formatting."
)

var ErrInvalidFormat = errors.New("invalid structured content")

// Select maps a file extension to its strategy. Matching ignores case.
func Select(ext string) Strategy {
	switch strings.ToLower(ext) {
	case "txt":
		return PlainText
	case "json":
		return StructuredText
	case "jpg", "jpeg", "png":
		return Image
	case "pdf":
		return Document
	}
	return Unsupported
}

// NeedsContent reports whether the strategy renders the file body itself
// rather than pointing at a URL.
func (s Strategy) NeedsContent() bool {
	return s == PlainText || s == StructuredText
}

// Target is everything a view needs to render one file.
type Target struct {
	Extension string
	Strategy  Strategy

	Content    string
	HasContent bool
	// InvalidFormat is set when structured content failed to parse and
	// Content holds the raw text.
	InvalidFormat      bool
	ContentUnavailable bool

	ViewURL     string
	DownloadURL string
}

func NewTarget(filename, viewURL, downloadURL string) *Target {
	ext := formatx.Extension(filename)
	return &Target{
		Extension:   ext,
		Strategy:    Select(ext),
		ViewURL:     viewURL,
		DownloadURL: downloadURL,
	}
}

// SetContent stores raw file content. Structured content is pretty-printed
// when it parses; otherwise the raw text is kept and InvalidFormat is set.
func (t *Target) SetContent(raw string) {
	t.HasContent = true
	t.ContentUnavailable = false
	t.InvalidFormat = false
	t.Content = raw

	if t.Strategy != StructuredText || raw == "" {
		return
	}
	pretty, err := PrettyJSON(raw)
	if err != nil {
		t.InvalidFormat = true
		return
	}
	t.Content = pretty
}

// MarkUnavailable records that the content could not be fetched.
func (t *Target) MarkUnavailable() {
	t.HasContent = true
	t.ContentUnavailable = true
	t.InvalidFormat = false
	t.Content = ContentUnavailableText
}

// Notice is the warning shown above the content, if any.
func (t *Target) Notice() string {
	if t.InvalidFormat {
		return invalidFormatNotice
	}
	return ""
}

// PrettyJSON re-indents a JSON document with two spaces.
func PrettyJSON(raw string) (string, error) {
	src := []byte(strings.TrimSpace(raw))
	if !json.Valid(src) {
		return "", ErrInvalidFormat
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", "  "); err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return buf.String(), nil
}
