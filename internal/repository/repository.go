package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by FindByID when no document has the given id.
var ErrNotFound = errors.New("document not found")

// Entity is a document addressed by an opaque string id.
type Entity[E any] interface {
	DocumentID() string
	WithDocumentID(id string) E
}

// Repository persists documents of one collection. It performs no
// validation.
type Repository[E Entity[E]] interface {
	Count(ctx context.Context) (int64, error)
	// FindAll returns every document; order is stable within one call.
	FindAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, id string) (E, error)
	// Save inserts e under a new id when its id is empty, otherwise it
	// replaces (or inserts) the document with that id.
	Save(ctx context.Context, e E) (E, error)
	// DeleteByID removes the document; a missing id is not an error.
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// newUUIDv7 generates time-ordered ids for the stores that do not have a
// native id type.
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
