package models

import (
	"slices"
	"time"
)

// Project is a portfolio project.
type Project struct {
	// ID is assigned by the store on creation and never changes afterwards.
	ID          string `json:"id"          gorm:"primaryKey;size:32"`
	Title       string `json:"title"       gorm:"not null"           validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	// Image is an URL or an inline data URL, so it is unbounded.
	Image string `json:"image"`
	Link  string `json:"link" gorm:"not null" validate:"required"`
	// Technologies keeps the tags in the order they were entered.
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM.
func (Project) TableName() string {
	return "projects"
}

// Key returns the id of the project.
func (p Project) Key() string {
	return p.ID
}

// WithKey returns a copy of the project carrying id.
func (p Project) WithKey(id string) Project {
	p.ID = id
	p.Technologies = slices.Clone(p.Technologies)

	return p
}

// ProjectPatch carries the fields of a partial project update.
type ProjectPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Link         *string   `json:"link,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
}

// Apply implements Patch.
func (p ProjectPatch) Apply(project *Project) {
	setIfPresent(&project.Title, p.Title)
	setIfPresent(&project.Description, p.Description)
	setIfPresent(&project.Image, p.Image)
	setIfPresent(&project.Link, p.Link)

	if p.Technologies != nil {
		project.Technologies = slices.Clone(*p.Technologies)
	}
}
