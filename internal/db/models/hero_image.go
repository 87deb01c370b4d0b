package models

import "time"

// HeroImage is a slide of the landing page hero. Every field is optional.
type HeroImage struct {
	ID        string    `json:"id"       gorm:"primaryKey;size:32"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM.
func (HeroImage) TableName() string {
	return "hero_images"
}

// Key returns the id of the hero image.
func (h HeroImage) Key() string {
	return h.ID
}

// WithKey returns a copy of the hero image carrying id.
func (h HeroImage) WithKey(id string) HeroImage {
	h.ID = id
	return h
}

// HeroImagePatch carries the fields of a partial hero image update.
type HeroImagePatch struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// Apply implements Patch.
func (p HeroImagePatch) Apply(hero *HeroImage) {
	setIfPresent(&hero.Title, p.Title)
	setIfPresent(&hero.Subtitle, p.Subtitle)
	setIfPresent(&hero.Image, p.Image)
}
