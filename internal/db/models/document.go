// Package models contains database model definitions.
package models

// Document is implemented by every content record kept in a collection.
// Key returns the store assigned id, WithKey returns a copy carrying id.
type Document[T any] interface {
	Key() string
	WithKey(id string) T
}

// Patch merges the fields it carries into a record. Fields left nil are not touched.
type Patch[T any] interface {
	Apply(record *T)
}

// WhereIDIs is the query pattern used to address a document by id.
const WhereIDIs = "id = ?"

// setIfPresent copies *src into dst when src is set.
func setIfPresent[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
