package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/repository"
)

var errStoreDown = errors.New("store down")

// testClock is a manually advanced time source.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// failingRepository fails every call with errStoreDown.
type failingRepository[E repository.Entity[E]] struct{}

func (failingRepository[E]) Count(context.Context) (int64, error) { return 0, errStoreDown }

func (failingRepository[E]) FindAll(context.Context) ([]E, error) { return nil, errStoreDown }

func (failingRepository[E]) FindByID(context.Context, string) (E, error) {
	var zero E
	return zero, errStoreDown
}

func (failingRepository[E]) Save(_ context.Context, e E) (E, error) { return e, errStoreDown }

func (failingRepository[E]) DeleteByID(context.Context, string) error { return errStoreDown }

func (failingRepository[E]) DeleteAll(context.Context) error { return errStoreDown }
