package models

import "time"

// Blog is a blog post shown on the insights page.
type Blog struct {
	ID      string `json:"id"      gorm:"primaryKey;size:32"`
	Title   string `json:"title"   gorm:"not null"           validate:"required"`
	Content string `json:"content" gorm:"type:text;not null" validate:"required"`
	// Image is optional, an empty string when unset.
	Image  string `json:"image"`
	Author string `json:"author" gorm:"size:255;not null" validate:"required"`
	// Date is the publication time in unix milliseconds.
	Date      int64     `json:"date" gorm:"not null" validate:"gt=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM.
func (Blog) TableName() string {
	return "blogs"
}

// Key returns the id of the blog post.
func (b Blog) Key() string {
	return b.ID
}

// WithKey returns a copy of the blog post carrying id.
func (b Blog) WithKey(id string) Blog {
	b.ID = id
	return b
}

// Published returns Date as time.
func (b Blog) Published() time.Time {
	return time.UnixMilli(b.Date)
}

// BlogPatch carries the fields of a partial blog update.
type BlogPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Image   *string `json:"image,omitempty"`
	Author  *string `json:"author,omitempty"`
	Date    *int64  `json:"date,omitempty"`
}

// Apply implements Patch.
func (p BlogPatch) Apply(blog *Blog) {
	setIfPresent(&blog.Title, p.Title)
	setIfPresent(&blog.Content, p.Content)
	setIfPresent(&blog.Image, p.Image)
	setIfPresent(&blog.Author, p.Author)
	setIfPresent(&blog.Date, p.Date)
}
