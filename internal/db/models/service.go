package models

import "time"

// Service is an offered service.
type Service struct {
	ID          string `json:"id"          gorm:"primaryKey;size:32"`
	Title       string `json:"title"       gorm:"not null"           validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	// Icon is an URL, a css class name or an inline data URL.
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM.
func (Service) TableName() string {
	return "services"
}

// Key returns the id of the service.
func (s Service) Key() string {
	return s.ID
}

// WithKey returns a copy of the service carrying id.
func (s Service) WithKey(id string) Service {
	s.ID = id
	return s
}

// ServicePatch carries the fields of a partial service update.
type ServicePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// Apply implements Patch.
func (p ServicePatch) Apply(service *Service) {
	setIfPresent(&service.Title, p.Title)
	setIfPresent(&service.Description, p.Description)
	setIfPresent(&service.Icon, p.Icon)
}
