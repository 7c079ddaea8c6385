// Package store provides the durable record store quill persists into:
// flat JSON arrays of records keyed by an id field, read and written as
// whole collections. All access to a collection is serialized internally,
// so concurrent callers never interleave a read-modify-write.
package store

import "context"

// Record is any value that can live in a collection.
type Record interface {
	RecordID() string
}

// Collection is the contract repositories build on. Update and Delete
// report existence so callers can implement existence-aware semantics.
type Collection[T Record] interface {
	// Initialize ensures the backing storage exists, seeding an empty
	// collection when it does not.
	Initialize(ctx context.Context) error

	// Read returns every record. A missing or corrupt backing file
	// degrades to an empty slice; it is logged, not returned.
	Read(ctx context.Context) ([]T, error)

	// Write replaces the whole collection.
	Write(ctx context.Context, records []T) error

	// FindByID returns the record and true when present. Unlike Read, an
	// unreadable backing file surfaces as an error here.
	FindByID(ctx context.Context, id string) (T, bool, error)

	// Create appends a record.
	Create(ctx context.Context, record T) error

	// Update replaces the record at id. The boolean is false when the id
	// is absent, in which case nothing is written.
	Update(ctx context.Context, id string, record T) (bool, error)

	// Delete removes the record at id. The boolean is false when the id
	// is absent.
	Delete(ctx context.Context, id string) (bool, error)
}
