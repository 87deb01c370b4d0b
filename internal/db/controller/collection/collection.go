// Package collection implements the generic CRUD contract shared by every
// content collection: list, get by id, create, partial update and delete.
package collection

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/docid"
)

const orderByCreation = "created_at ASC, id ASC"

// Deleted confirms a delete. It carries the id, never the deleted content.
type Deleted struct {
	DeletedID string `json:"deletedId"`
}

// Publisher receives a fresh snapshot after every committed mutation.
type Publisher[T any] interface {
	Publish(snapshot []T)
}

// Collection gives access to one kind of document stored in its own table.
type Collection[T models.Document[T], P models.Patch[T]] struct {
	name      string
	db        *gorm.DB
	validator *validator.Validate
	publisher Publisher[T]

	// serializes mutations so snapshots reach the publisher in commit order
	mu sync.Mutex
}

// Option configures a Collection.
type Option[T models.Document[T], P models.Patch[T]] func(*Collection[T, P])

// WithPublisher attaches a live snapshot publisher.
func WithPublisher[T models.Document[T], P models.Patch[T]](p Publisher[T]) Option[T, P] {
	return func(c *Collection[T, P]) {
		c.publisher = p
	}
}

// New creates a collection named name on top of db.
func New[T models.Document[T], P models.Patch[T]](name string, db *gorm.DB, opts ...Option[T, P]) *Collection[T, P] {
	c := &Collection[T, P]{
		name:      name,
		db:        db,
		validator: validator.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the collection name.
func (c *Collection[T, P]) Name() string {
	return c.name
}

// List returns every record in creation order. An empty collection yields an empty, non-nil slice.
func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	records := make([]T, 0)
	if err := c.db.WithContext(ctx).Order(orderByCreation).Find(&records).Error; err != nil {
		return nil, errors.Wrapf(ErrTransport, "list %s: %v", c.name, err)
	}

	return records, nil
}

// Get returns the record with id, or nil when there is none. Absence is not an error.
func (c *Collection[T, P]) Get(ctx context.Context, id string) (*T, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	var record T

	err := c.db.WithContext(ctx).Where(models.WhereIDIs, id).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absent is a valid result
		}

		return nil, errors.Wrapf(ErrTransport, "get %s %q: %v", c.name, id, err)
	}

	return &record, nil
}

// Create validates fields, assigns a new id and stores the record.
// Any id carried by fields is replaced.
func (c *Collection[T, P]) Create(ctx context.Context, fields T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	created, err := c.create(ctx, fields)
	observe(c.name, "create", err)

	if err != nil {
		return nil, err
	}

	c.publish(ctx)

	return created, nil
}

func (c *Collection[T, P]) create(ctx context.Context, fields T) (*T, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	record := fields.WithKey(docid.New())

	if err := c.validator.StructCtx(ctx, record); err != nil {
		return nil, errors.Wrapf(newValidationError(err), "create %s", c.name)
	}

	if err := c.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, errors.Wrapf(ErrTransport, "create %s: %v", c.name, err)
	}

	log.Debug().Str("collection", c.name).Str("id", record.Key()).Msg("record created")

	return &record, nil
}

// Update merges patch into the record with id and returns the resulting record.
func (c *Collection[T, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := c.update(ctx, id, patch)
	observe(c.name, "update", err)

	if err != nil {
		return nil, err
	}

	c.publish(ctx)

	return updated, nil
}

func (c *Collection[T, P]) update(ctx context.Context, id string, patch P) (*T, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	var record T

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.WhereIDIs, id).Take(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "update %s %q", c.name, id)
			}

			return errors.Wrapf(ErrTransport, "update %s %q: %v", c.name, id, err)
		}

		patch.Apply(&record)
		record = record.WithKey(id)

		if err := c.validator.StructCtx(ctx, record); err != nil {
			return errors.Wrapf(newValidationError(err), "update %s %q", c.name, id)
		}

		if err := tx.Save(&record).Error; err != nil {
			return errors.Wrapf(ErrTransport, "update %s %q: %v", c.name, id, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrTransport) {
			// commit failures surface from gorm directly
			err = errors.Wrapf(ErrTransport, "update %s %q: %v", c.name, id, err)
		}

		return nil, err
	}

	log.Debug().Str("collection", c.name).Str("id", id).Msg("record updated")

	return &record, nil
}

// Delete removes the record with id.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) (Deleted, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.delete(ctx, id)
	observe(c.name, "delete", err)

	if err != nil {
		return Deleted{}, err
	}

	c.publish(ctx)

	return Deleted{DeletedID: id}, nil
}

func (c *Collection[T, P]) delete(ctx context.Context, id string) error {
	if c.db == nil {
		return ErrDBNil
	}

	var model T

	result := c.db.WithContext(ctx).Where(models.WhereIDIs, id).Delete(&model)
	if result.Error != nil {
		return errors.Wrapf(ErrTransport, "delete %s %q: %v", c.name, id, result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "delete %s %q", c.name, id)
	}

	log.Debug().Str("collection", c.name).Str("id", id).Msg("record deleted")

	return nil
}

// publish pushes the current collection to the live publisher, if any.
func (c *Collection[T, P]) publish(ctx context.Context) {
	if c.publisher == nil {
		return
	}

	snapshot, err := c.List(context.WithoutCancel(ctx))
	if err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("failed to refresh live snapshot")
		return
	}

	c.publisher.Publish(snapshot)
}
