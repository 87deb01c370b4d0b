// Package emailsettings persists the contact form email settings edited in the admin area.
package emailsettings

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/setting"
)

const (
	// SettingKey is the key used to store the email settings in the database.
	SettingKey = "email"
)

// Settings are the EmailJS identifiers used to deliver contact messages.
type Settings struct {
	ServiceID  string `form:"service_id"  json:"serviceId"  validate:"required"`
	TemplateID string `form:"template_id" json:"templateId" validate:"required"`
	PublicKey  string `form:"public_key"  json:"publicKey"  validate:"required,min=8"`
}

// Load loads the settings from the database.
func (s *Settings) Load(ctx context.Context, db *gorm.DB) error {
	stored, err := setting.Get(ctx, db, SettingKey)
	if err != nil {
		return err
	}

	return json.Unmarshal(stored.Value, s)
}

// Save stores the settings in the database.
func (s *Settings) Save(ctx context.Context, db *gorm.DB) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = setting.Set(ctx, db, SettingKey, data)

	return err
}

// Complete reports whether every identifier is set.
func (s *Settings) Complete() bool {
	return s.ServiceID != "" && s.TemplateID != "" && s.PublicKey != ""
}
