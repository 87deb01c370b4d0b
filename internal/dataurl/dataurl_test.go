package dataurl

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent png
var pixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func TestEncode(t *testing.T) {
	got, err := Encode(pixel)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))
	assert.True(t, Is(got))
	assert.Equal(t, "image/png", MediaType(got))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pixel, raw)
}

func TestEncodeText(t *testing.T) {
	got, err := Encode([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", MediaType(got))
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestIsAndMediaType(t *testing.T) {
	assert.False(t, Is("https://example.com/a.png"))
	assert.Empty(t, MediaType("https://example.com/a.png"))
	assert.Empty(t, MediaType("data:broken"))
	assert.Equal(t, "image/svg+xml", MediaType("data:image/svg+xml;base64,PHN2Zy8+"))
}

func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer

	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestFromFileHeader(t *testing.T) {
	fh := uploadHeader(t, "pixel.bin", pixel)

	got, err := FromFileHeader(fh, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", MediaType(got))
}

func TestFromFileHeaderLimits(t *testing.T) {
	_, err := FromFileHeader(nil, 0)
	require.ErrorIs(t, err, ErrEmpty)

	fh := uploadHeader(t, "pixel.png", pixel)

	_, err = FromFileHeader(fh, 10)
	require.ErrorIs(t, err, ErrTooLarge)
}
