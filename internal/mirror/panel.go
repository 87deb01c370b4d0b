package mirror

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
)

// Store is the part of a collection a panel needs.
type Store[T any, P any] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields T) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (collection.Deleted, error)
}

// Source delivers live snapshots of a collection.
type Source[T any] interface {
	Subscribe() (<-chan []T, func())
}

// Panel ties a Mirror to the store it mirrors. Mutations go to the store and,
// once committed, patch the mirror from their return value.
type Panel[T Keyed, P any] struct {
	*Mirror[T]

	label  string
	store  Store[T, P]
	source Source[T]
}

// NewPanel creates a panel for store. label is the singular record name used
// in user visible messages, e.g. "project". source may be nil.
func NewPanel[T Keyed, P any](label string, store Store[T, P], source Source[T], fallback []T) *Panel[T, P] {
	return &Panel[T, P]{
		Mirror: New(fallback),
		label:  label,
		store:  store,
		source: source,
	}
}

// Label returns the singular record name.
func (p *Panel[T, P]) Label() string {
	return p.label
}

// Refresh queries the whole collection and reconciles the mirror with it.
// A failing query keeps the current records.
func (p *Panel[T, P]) Refresh(ctx context.Context) error {
	records, err := p.store.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", p.store.Name()).Msg("failed to load collection")
		return err
	}

	p.Load(records)

	return nil
}

// Run reconciles the mirror with every live snapshot until ctx ends or the
// source closes the subscription.
func (p *Panel[T, P]) Run(ctx context.Context) {
	if p.source == nil {
		return
	}

	snapshots, cancel := p.source.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}

			p.Load(snapshot)
		}
	}
}

// Create stores fields as a new record and appends the result to the mirror.
func (p *Panel[T, P]) Create(ctx context.Context, fields T) (*T, error) {
	created, err := p.store.Create(ctx, fields)
	if err != nil {
		p.fail("save", err)
		return nil, err
	}

	p.Commit(Created, Result[T]{Record: *created})

	return created, nil
}

// Update patches the record with id and replaces it in the mirror.
func (p *Panel[T, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	updated, err := p.store.Update(ctx, id, patch)
	if err != nil {
		p.fail("save", err)
		return nil, err
	}

	p.Commit(Updated, Result[T]{Record: *updated})

	return updated, nil
}

// Delete removes the record with id and filters it out of the mirror.
func (p *Panel[T, P]) Delete(ctx context.Context, id string) (collection.Deleted, error) {
	deleted, err := p.store.Delete(ctx, id)
	if err != nil {
		p.fail("delete", err)
		return collection.Deleted{}, err
	}

	p.Commit(Deleted, Result[T]{DeletedID: deleted.DeletedID})

	return deleted, nil
}

func (p *Panel[T, P]) fail(action string, err error) {
	log.Error().Err(err).Str("collection", p.store.Name()).Msgf("failed to %s %s", action, p.label)
	p.Fail(fmt.Sprintf("Failed to %s %s: %s", action, p.label, Describe(err)))
}
