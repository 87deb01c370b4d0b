package panel

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/project"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// DateLayout is the format of the blog date input.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for a blog date not in DateLayout.
var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Binder maps one record type to the edit form and back.
type Binder[T any, P any] interface {
	// Blank is the record a new draft starts with.
	Blank() T
	// Bind reads the form on top of base.
	Bind(form *Form, base T) (T, error)
	// Patch sets every editable field of record.
	Patch(record T) P
	Fields(record T) []Field
	Row(record T) Row
}

type projectBinder struct{}

func (projectBinder) Blank() models.Project {
	return models.Project{Technologies: []string{}}
}

func (projectBinder) Bind(form *Form, base models.Project) (models.Project, error) {
	image, err := form.Image("image", base.Image)
	if err != nil {
		return base, err
	}

	base.Title = form.String("title", base.Title)
	base.Description = form.String("description", base.Description)
	base.Link = form.String("link", base.Link)
	base.Image = image

	if tags, ok := form.Lookup("technologies"); ok {
		base.Technologies = project.SplitTechnologies(tags)
	}

	return base, nil
}

func (projectBinder) Patch(p models.Project) models.ProjectPatch {
	return models.ProjectPatch{
		Title:        &p.Title,
		Description:  &p.Description,
		Image:        &p.Image,
		Link:         &p.Link,
		Technologies: &p.Technologies,
	}
}

func (projectBinder) Fields(p models.Project) []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: KindText, Value: p.Title, Required: true},
		{Name: "description", Label: "Description", Kind: KindTextarea, Value: p.Description, Required: true},
		{Name: "link", Label: "Project Link", Kind: KindText, Value: p.Link, Required: true},
		{Name: "technologies", Label: "Technologies (comma separated)", Kind: KindTags, Value: strings.Join(p.Technologies, ", ")},
		{Name: "image", Label: "Image", Kind: KindImage, Value: p.Image},
	}
}

func (projectBinder) Row(p models.Project) Row {
	return Row{ID: p.ID, Title: p.Title, Subtitle: p.Description, Image: p.Image, Tags: p.Technologies}
}

type blogBinder struct {
	now func() time.Time
}

func (b blogBinder) Blank() models.Blog {
	return models.Blog{Date: b.now().UnixMilli()}
}

func (blogBinder) Bind(form *Form, base models.Blog) (models.Blog, error) {
	image, err := form.Image("image", base.Image)
	if err != nil {
		return base, err
	}

	base.Title = form.String("title", base.Title)
	base.Content = form.String("content", base.Content)
	base.Author = form.String("author", base.Author)
	base.Image = image

	// an unchanged day keeps the time of day of the stored date
	if day, ok := form.Lookup("date"); ok && day != "" && day != formatDate(base.Date) {
		t, err := time.Parse(DateLayout, day)
		if err != nil {
			return base, ErrInvalidDate
		}

		base.Date = t.UnixMilli()
	}

	return base, nil
}

func (blogBinder) Patch(b models.Blog) models.BlogPatch {
	return models.BlogPatch{
		Title:   &b.Title,
		Content: &b.Content,
		Image:   &b.Image,
		Author:  &b.Author,
		Date:    &b.Date,
	}
}

func (blogBinder) Fields(b models.Blog) []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: KindText, Value: b.Title, Required: true},
		{Name: "content", Label: "Content", Kind: KindTextarea, Value: b.Content, Required: true},
		{Name: "author", Label: "Author", Kind: KindText, Value: b.Author, Required: true},
		{Name: "date", Label: "Date", Kind: KindDate, Value: formatDate(b.Date), Required: true},
		{Name: "image", Label: "Image", Kind: KindImage, Value: b.Image},
	}
}

func (blogBinder) Row(b models.Blog) Row {
	return Row{ID: b.ID, Title: b.Title, Subtitle: "Author: " + b.Author + " | " + formatDate(b.Date), Image: b.Image}
}

func formatDate(ms int64) string {
	if ms <= 0 {
		return ""
	}

	return time.UnixMilli(ms).UTC().Format(DateLayout)
}

type serviceBinder struct{}

func (serviceBinder) Blank() models.Service {
	return models.Service{}
}

func (serviceBinder) Bind(form *Form, base models.Service) (models.Service, error) {
	icon, err := form.Image("icon", base.Icon)
	if err != nil {
		return base, err
	}

	base.Title = form.String("title", base.Title)
	base.Description = form.String("description", base.Description)
	base.Icon = icon

	return base, nil
}

func (serviceBinder) Patch(s models.Service) models.ServicePatch {
	return models.ServicePatch{Title: &s.Title, Description: &s.Description, Icon: &s.Icon}
}

func (serviceBinder) Fields(s models.Service) []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: KindText, Value: s.Title, Required: true},
		{Name: "description", Label: "Description", Kind: KindTextarea, Value: s.Description, Required: true},
		{Name: "icon", Label: "Icon", Kind: KindImage, Value: s.Icon},
	}
}

func (serviceBinder) Row(s models.Service) Row {
	return Row{ID: s.ID, Title: s.Title, Subtitle: s.Description, Image: s.Icon}
}

type heroImageBinder struct{}

func (heroImageBinder) Blank() models.HeroImage {
	return models.HeroImage{}
}

func (heroImageBinder) Bind(form *Form, base models.HeroImage) (models.HeroImage, error) {
	image, err := form.Image("image", base.Image)
	if err != nil {
		return base, err
	}

	base.Title = form.String("title", base.Title)
	base.Subtitle = form.String("subtitle", base.Subtitle)
	base.Image = image

	return base, nil
}

func (heroImageBinder) Patch(h models.HeroImage) models.HeroImagePatch {
	return models.HeroImagePatch{Title: &h.Title, Subtitle: &h.Subtitle, Image: &h.Image}
}

func (heroImageBinder) Fields(h models.HeroImage) []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: KindText, Value: h.Title},
		{Name: "subtitle", Label: "Description", Kind: KindTextarea, Value: h.Subtitle},
		{Name: "image", Label: "Image", Kind: KindImage, Value: h.Image},
	}
}

func (heroImageBinder) Row(h models.HeroImage) Row {
	return Row{ID: h.ID, Title: h.Title, Subtitle: h.Subtitle, Image: h.Image}
}
