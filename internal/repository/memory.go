package repository

import (
	"context"
	"slices"
	"sync"
)

type memoryRepository[E Entity[E]] struct {
	mu    sync.RWMutex
	docs  map[string]E
	order []string
}

// NewMemoryRepository returns a Repository kept in process memory. FindAll
// returns documents in insertion order.
func NewMemoryRepository[E Entity[E]]() Repository[E] {
	return &memoryRepository[E]{
		docs: make(map[string]E),
	}
}

func (r *memoryRepository[E]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.docs)), nil
}

func (r *memoryRepository[E]) FindAll(_ context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]E, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *memoryRepository[E]) FindByID(_ context.Context, id string) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		var zero E
		return zero, ErrNotFound
	}
	return doc, nil
}

func (r *memoryRepository[E]) Save(ctx context.Context, e E) (E, error) {
	if err := ctx.Err(); err != nil {
		var zero E
		return zero, err
	}

	if e.DocumentID() == "" {
		e = e.WithDocumentID(newUUIDv7())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := e.DocumentID()
	if _, exists := r.docs[id]; !exists {
		r.order = append(r.order, id)
	}
	r.docs[id] = e

	return e, nil
}

func (r *memoryRepository[E]) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[id]; !exists {
		return nil
	}
	delete(r.docs, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })

	return nil
}

func (r *memoryRepository[E]) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.docs)
	r.order = r.order[:0]

	return nil
}
