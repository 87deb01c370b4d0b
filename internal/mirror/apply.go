package mirror

import "slices"

// Keyed is implemented by every record a mirror can hold.
type Keyed interface {
	Key() string
}

// MutationKind identifies the committed mutation a result belongs to.
type MutationKind int

const (
	// Created means a record was added.
	Created MutationKind = iota + 1
	// Updated means a record was replaced.
	Updated
	// Deleted means a record was removed.
	Deleted
)

// String implements fmt.Stringer.
func (k MutationKind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Result is the return value of a committed mutation.
// Record is set for Created and Updated, DeletedID for Deleted.
type Result[T Keyed] struct {
	Record    T
	DeletedID string
}

// ApplyMutationResult returns the collection that results from patching old
// with the outcome of a mutation, without asking the store again.
//
//   - Created appends the record. A record with the same id already present
//     (for example delivered by a live snapshot first) is replaced instead.
//   - Updated replaces the record with the same id. Unknown ids are ignored.
//   - Deleted drops the record with DeletedID.
//
// old is never modified.
func ApplyMutationResult[T Keyed](old []T, kind MutationKind, payload Result[T]) []T {
	switch kind {
	case Created:
		if idx := indexOf(old, payload.Record.Key()); idx >= 0 {
			out := slices.Clone(old)
			out[idx] = payload.Record

			return out
		}

		out := make([]T, 0, len(old)+1)
		out = append(out, old...)

		return append(out, payload.Record)
	case Updated:
		out := slices.Clone(old)
		if idx := indexOf(out, payload.Record.Key()); idx >= 0 {
			out[idx] = payload.Record
		}

		return out
	case Deleted:
		out := make([]T, 0, len(old))
		for _, record := range old {
			if record.Key() != payload.DeletedID {
				out = append(out, record)
			}
		}

		return out
	default:
		return slices.Clone(old)
	}
}

func indexOf[T Keyed](records []T, key string) int {
	return slices.IndexFunc(records, func(r T) bool {
		return r.Key() == key
	})
}

// Resolve returns fetched when it holds records and fallback otherwise.
// It is the one-shot form of the fallback rule for read-only pages.
func Resolve[T any](fallback, fetched []T) []T {
	if len(fetched) > 0 {
		return fetched
	}

	return fallback
}
