package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		ext  string
		want Strategy
	}{
		{"txt", PlainText},
		{"TXT", PlainText},
		{"json", StructuredText},
		{"jpg", Image},
		{"JPEG", Image},
		{"png", Image},
		{"pdf", Document},
		{"exe", Unsupported},
		{"", Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.ext))
		})
	}
}

func TestStrategy_NeedsContent(t *testing.T) {
	assert.True(t, PlainText.NeedsContent())
	assert.True(t, StructuredText.NeedsContent())
	assert.False(t, Image.NeedsContent())
	assert.False(t, Document.NeedsContent())
	assert.False(t, Unsupported.NeedsContent())
}

func TestNewTarget(t *testing.T) {
	tg := NewTarget("Photo.PNG", "http://h/view", "http://h/download")
	assert.Equal(t, "png", tg.Extension)
	assert.Equal(t, Image, tg.Strategy)
	assert.Equal(t, "http://h/view", tg.ViewURL)
	assert.Equal(t, "http://h/download", tg.DownloadURL)
	assert.False(t, tg.HasContent)

	tg = NewTarget("noext", "", "")
	assert.Equal(t, "", tg.Extension)
	assert.Equal(t, Unsupported, tg.Strategy)
}

func TestSetContent_PrettyPrintsJSON(t *testing.T) {
	tg := NewTarget("a.json", "", "")
	tg.SetContent(`{"a":1,"b":[true,null]}`)

	require.True(t, tg.HasContent)
	assert.False(t, tg.InvalidFormat)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}", tg.Content)
	assert.Empty(t, tg.Notice())
}

func TestSetContent_InvalidJSONKeepsRaw(t *testing.T) {
	tg := NewTarget("a.json", "", "")
	tg.SetContent(`{"a":1,`)

	assert.True(t, tg.InvalidFormat)
	assert.Equal(t, `{"a":1,`, tg.Content)
	assert.Equal(t, "Invalid JSON format detected. Showing original content without formatting.", tg.Notice())
}

func TestSetContent_EmptyJSONRaisesNoWarning(t *testing.T) {
	tg := NewTarget("a.json", "", "")
	tg.SetContent("")

	assert.True(t, tg.HasContent)
	assert.False(t, tg.InvalidFormat)
	assert.Empty(t, tg.Notice())
}

func TestSetContent_PlainTextUntouched(t *testing.T) {
	tg := NewTarget("a.txt", "", "")
	tg.SetContent(`{"a":1}`)

	assert.Equal(t, `{"a":1}`, tg.Content)
	assert.False(t, tg.InvalidFormat)
}

func TestMarkUnavailable(t *testing.T) {
	tg := NewTarget("a.txt", "", "")
	tg.MarkUnavailable()

	assert.True(t, tg.ContentUnavailable)
	assert.Equal(t, ContentUnavailableText, tg.Content)
}

func TestPrettyJSON(t *testing.T) {
	got, err := PrettyJSON("  [1, 2]\n")
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]", got)

	_, err = PrettyJSON("{nope}")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = PrettyJSON(`{"a":1} trailing`)
	require.ErrorIs(t, err, ErrInvalidFormat)
}
