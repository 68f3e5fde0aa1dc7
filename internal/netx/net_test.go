package netx

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader_MonotonicAndComplete(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1000)

	var got []int
	pr := NewProgressReader(iotest.OneByteReader(bytes.NewReader(data)), int64(len(data)), func(p int) {
		got = append(got, p)
	})

	n, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1], "progress must strictly increase between reports")
	}
	assert.Equal(t, 100, got[len(got)-1])
	assert.LessOrEqual(t, len(got), 101)
}

func TestProgressReader_ClampsWhenTotalUnderstated(t *testing.T) {
	var got []int
	pr := NewProgressReader(strings.NewReader("0123456789"), 5, func(p int) { got = append(got, p) })

	_, err := io.ReadAll(pr)
	require.NoError(t, err)
	for _, p := range got {
		assert.LessOrEqual(t, p, 100)
	}
	assert.Equal(t, 100, got[len(got)-1])
}

func TestProgressReader_NoCallbackOrUnknownSize(t *testing.T) {
	_, err := io.ReadAll(NewProgressReader(strings.NewReader("abc"), 3, nil))
	require.NoError(t, err)

	called := false
	_, err = io.ReadAll(NewProgressReader(strings.NewReader("abc"), 0, func(int) { called = true }))
	require.NoError(t, err)
	assert.False(t, called)
}

func TestMultipartFile(t *testing.T) {
	body, contentType, err := MultipartFile("file", `say "hi".json`, []byte(`{"a":1}`))
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(body, params["boundary"])
	part, err := r.NextPart()
	require.NoError(t, err)

	assert.Equal(t, "file", part.FormName())
	assert.Equal(t, `say "hi".json`, part.FileName())
	assert.Equal(t, "application/json", part.Header.Get("Content-Type"))

	content, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(content))

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMultipartFile_UnknownExtension(t *testing.T) {
	body, contentType, err := MultipartFile("file", "blob.zzz", []byte("x"))
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	part, err := multipart.NewReader(body, params["boundary"]).NextPart()
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", part.Header.Get("Content-Type"))
}
