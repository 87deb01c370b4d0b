// Package setting stores named value blobs in the settings table.
package setting

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(ctx context.Context, db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.WithContext(ctx).Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// Set creates or replaces the value of the setting name.
func Set(ctx context.Context, db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	setting, err := Get(ctx, db, name)

	switch {
	case errors.Is(err, ErrSettingNotFound):
		setting = &models.Setting{Name: name, Value: value}
		if err = db.WithContext(ctx).Create(setting).Error; err != nil {
			return nil, err
		}

		return setting, nil
	case err != nil:
		return nil, err
	}

	setting.Value = value
	if err = db.WithContext(ctx).Save(setting).Error; err != nil {
		return nil, err
	}

	return setting, nil
}

// Delete removes the setting name.
func Delete(ctx context.Context, db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.WithContext(ctx).Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
