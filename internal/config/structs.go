package config

import (
	"time"

	"github.com/portfolio-admin/portfolio-admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration `toml:"expiryTime" json:"expiryTime"`
}

// Config overall data structure.
type Config struct {
	DevMode   bool       `toml:"devMode"   json:"devMode"` // enable dev mode for development
	Title     string     `toml:"title"     json:"title"`
	DB        DB         `toml:"db"        json:"db"`
	Log       logger.Log `toml:"log"       json:"log"`
	Webserver Webserver  `toml:"webserver" json:"webserver"`
	Email     Email      `toml:"email"     json:"email"`
	Admin     Admin      `toml:"admin"     json:"admin"`
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    `toml:"browseStatic"   json:"browseStatic"`   // enable static file browsing (development only)
	DisableRecover bool    `toml:"disableRecover" json:"disableRecover"` // disable recover middleware
	Address        string  `toml:"address"        json:"address"`        // listen address, empty listens on all interfaces
	Port           int     `toml:"port"           json:"port"`           // listening port for the webserver
	ShutDownTime   int     `toml:"shutDownTime"   json:"shutDownTime"`   // seconds /checkalive fails before shutdown
	URL            string  `toml:"url"            json:"url"`            // base url for the webserver
	BodyLimit      int     `toml:"bodyLimit"      json:"bodyLimit"`      // max request body in bytes, uploads are inlined
	MaxImageSize   int64   `toml:"maxImageSize"   json:"maxImageSize"`   // max uploaded image in bytes
	Session        Session `toml:"session"        json:"session"`
}

// Email configures the EmailJS account the contact form sends through.
// Values stored on the admin email settings page take precedence.
type Email struct {
	Endpoint   string `toml:"endpoint"   json:"endpoint"`
	ServiceID  string `toml:"serviceId"  json:"serviceId"`
	TemplateID string `toml:"templateId" json:"templateId"`
	PublicKey  string `toml:"publicKey"  json:"publicKey"`
	// RecipientName is passed to the template as to_name.
	RecipientName string        `toml:"recipientName" json:"recipientName"`
	Timeout       time.Duration `toml:"timeout"       json:"timeout"`
}

// Admin is the account seeded into an empty user table.
type Admin struct {
	Username string `toml:"username" json:"username"`
	Password string `toml:"password" json:"password"` //nolint:gosec // seed only, hashed before storage
}
