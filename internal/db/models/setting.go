package models

// Setting is a named value blob stored in the database.
// Structured settings are kept JSON encoded in Value.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:100"`
	Value []byte
}

// TableName overrides the table name used by GORM.
func (Setting) TableName() string {
	return "settings"
}
