package service

import (
	"strings"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/pkg/validator"
)

type Option func(*options)

type options struct {
	now       func() time.Time
	validator validator.Validator
}

// WithClock overrides the time source used for createdDate and
// lastModifiedDate.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithValidator overrides the DTO validator.
func WithValidator(v validator.Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:       time.Now,
		validator: validator.MustNewDefaultValidator(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// timestamp normalises t to UTC millisecond precision, the finest precision
// every store keeps.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func (o options) timestamp() time.Time {
	return timestamp(o.now())
}

// creationDates resolves the timestamps of a new document. Supplied values
// are kept; unset ones default to now, and lastModified is never before
// created.
func (o options) creationDates(created, lastModified time.Time) (time.Time, time.Time) {
	if created.IsZero() {
		created = o.timestamp()
	} else {
		created = timestamp(created)
	}

	if lastModified.IsZero() || lastModified.Before(created) {
		lastModified = created
	} else {
		lastModified = timestamp(lastModified)
	}

	return created, lastModified
}

// touch returns the lastModifiedDate for a mutation of a document created at
// created.
func (o options) touch(created time.Time) time.Time {
	now := o.timestamp()
	if now.Before(created) {
		return created
	}
	return now
}

func (o options) validate(s any) error {
	if err := o.validator.Validate(s); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.InvalidIDErr
	}
	return nil
}

// hasText reports whether a patch string carries a usable value.
func hasText(s string, set bool) bool {
	return set && strings.TrimSpace(s) != ""
}
