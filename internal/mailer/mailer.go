// Package mailer delivers contact form messages through the EmailJS REST API.
package mailer

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/emailsettings"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/setting"
)

// User visible outcome of a send.
const (
	StatusSent   = "Thank you for your message! I'll get back to you soon."
	StatusFailed = "Something went wrong. Please try again later."
)

var (
	// ErrNotConfigured is returned when service id, template id or public key are missing.
	ErrNotConfigured = errors.New("email delivery is not configured")
	// ErrInvalidMessage is returned when a message lacks a field or has a malformed address.
	ErrInvalidMessage = errors.New("invalid message")
	// ErrDelivery is returned when the provider rejects the message.
	ErrDelivery = errors.New("email delivery failed")
)

// Message is a contact form submission.
type Message struct {
	Name  string `form:"name"    validate:"required"`
	Email string `form:"email"   validate:"required,email"`
	Body  string `form:"message" validate:"required"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToName    string `json:"to_name,omitempty"`
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

// Client sends messages. Identifiers saved on the admin email settings page
// take precedence over the configured ones.
type Client struct {
	cfg       config.Email
	db        *gorm.DB
	http      *resty.Client
	validator *validator.Validate
}

// New creates a client. db may be nil, then only cfg is used.
func New(cfg config.Email, db *gorm.DB) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = config.DefaultEmailEndpoint
	}

	return &Client{
		cfg:       cfg,
		db:        db,
		http:      resty.New().SetTimeout(cfg.Timeout).SetHeader("Content-Type", "application/json"),
		validator: validator.New(),
	}
}

// Settings returns the identifiers the next Send will use.
func (c *Client) Settings(ctx context.Context) emailsettings.Settings {
	current := emailsettings.Settings{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		PublicKey:  c.cfg.PublicKey,
	}

	if c.db == nil {
		return current
	}

	var stored emailsettings.Settings

	if err := stored.Load(ctx, c.db); err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			log.Error().Err(err).Msg("failed to load email settings, using configured ones")
		}

		return current
	}

	if stored.Complete() {
		return stored
	}

	return current
}

// Send delivers msg once, without retry. It always returns the status text to
// show to the visitor, together with the error when delivery failed.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)

	if err := c.validator.StructCtx(ctx, msg); err != nil {
		return StatusFailed, errors.Wrap(ErrInvalidMessage, err.Error())
	}

	settings := c.Settings(ctx)
	if !settings.Complete() {
		return StatusFailed, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			ServiceID:  settings.ServiceID,
			TemplateID: settings.TemplateID,
			UserID:     settings.PublicKey,
			TemplateParams: templateParams{
				FromName:  msg.Name,
				FromEmail: msg.Email,
				Message:   msg.Body,
				ToName:    c.cfg.RecipientName,
			},
		}).
		Post(c.cfg.Endpoint)
	if err != nil {
		log.Error().Err(err).Msg("failed to reach email provider")
		return StatusFailed, errors.Wrap(ErrDelivery, err.Error())
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("email provider rejected message")
		return StatusFailed, errors.Wrapf(ErrDelivery, "%s: %s", resp.Status(), resp.String())
	}

	log.Info().Str("from", msg.Email).Msg("contact message sent")

	return StatusSent, nil
}
