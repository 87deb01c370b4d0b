// Package dataurl embeds uploaded files as data URLs so an image can be
// stored as plain text next to the rest of a record.
package dataurl

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const prefix = "data:"

var (
	// ErrEmpty is returned for a zero length upload.
	ErrEmpty = errors.New("uploaded file is empty")
	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = errors.New("uploaded file is too large")
)

// Encode returns data as a base64 data URL. The media type is detected from
// the content, not from the file name.
func Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}

	mediaType := mimetype.Detect(data).String()

	var b strings.Builder
	b.Grow(len(prefix) + len(mediaType) + len(";base64,") + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(prefix)
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	return b.String(), nil
}

// FromFileHeader reads an uploaded multipart file and encodes it.
// maxSize limits the accepted size in bytes, 0 means unlimited.
func FromFileHeader(fh *multipart.FileHeader, maxSize int64) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", ErrEmpty
	}

	if maxSize > 0 && fh.Size > maxSize {
		return "", errors.Wrapf(ErrTooLarge, "%s has %d bytes, limit is %d", fh.Filename, fh.Size, maxSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", errors.Wrapf(err, "failed to open upload %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read upload %s", fh.Filename)
	}

	return Encode(data)
}

// Is reports whether s is a data URL.
func Is(s string) bool {
	return strings.HasPrefix(s, prefix)
}

// MediaType returns the media type of a data URL, empty if s is none.
func MediaType(s string) string {
	if !Is(s) {
		return ""
	}

	header, _, found := strings.Cut(s[len(prefix):], ",")
	if !found {
		return ""
	}

	mediaType, _, _ := strings.Cut(header, ";")

	return mediaType
}
