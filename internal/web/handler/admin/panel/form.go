package panel

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/portfolio-admin/portfolio-admin/internal/dataurl"
)

// FileSuffix names the file input next to an image field, e.g. "image_file".
const FileSuffix = "_file"

// Field kinds understood by the form template.
const (
	KindText     = "text"
	KindTextarea = "textarea"
	KindImage    = "image"
	KindDate     = "date"
	KindTags     = "tags"
)

// Field is one input of the edit form.
type Field struct {
	Name     string
	Label    string
	Kind     string
	Value    string
	Required bool
}

// Row is one record of the list page.
type Row struct {
	ID       string
	Title    string
	Subtitle string
	Image    string
	Tags     []string
}

// Form reads a submitted edit form, url encoded or multipart.
type Form struct {
	c            *fiber.Ctx
	maxImageSize int64
}

// Lookup returns the trimmed value of key and whether the form carried it.
func (f *Form) Lookup(key string) (string, bool) {
	if args := f.c.Request().PostArgs(); args.Has(key) {
		return strings.TrimSpace(string(args.Peek(key))), true
	}

	if mf, err := f.c.MultipartForm(); err == nil {
		if values, ok := mf.Value[key]; ok && len(values) > 0 {
			return strings.TrimSpace(values[0]), true
		}
	}

	return "", false
}

// String returns the value of key, current when the form did not carry it.
func (f *Form) String(key, current string) string {
	if v, ok := f.Lookup(key); ok {
		return v
	}

	return current
}

// Image returns an uploaded file as data URL. Without upload the text
// value of key is used, current when the form did not carry it either.
func (f *Form) Image(key, current string) (string, error) {
	if fh, err := f.c.FormFile(key + FileSuffix); err == nil && fh.Size > 0 {
		encoded, err := dataurl.FromFileHeader(fh, f.maxImageSize)
		if err != nil {
			return "", errors.Wrap(err, key)
		}

		return encoded, nil
	}

	return f.String(key, current), nil
}
