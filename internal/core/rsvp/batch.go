// Package rsvp implements the "save all" submission of an account's
// reconciled RSVP records.
//
// A batch is deliberately non-atomic: every record is written on its own and
// a failed write does not roll back the others. The Result reports each
// record's outcome so callers can reconcile partial failure without
// re-fetching.
package rsvp

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// DefaultConcurrency bounds the number of writes in flight for one batch.
const DefaultConcurrency = 4

// WriteFunc persists a single record as an upsert.
type WriteFunc func(ctx context.Context, rec domain.RSVPResponse) error

// ItemResult is the outcome of writing one record.
type ItemResult struct {
	PersonID    string `json:"person_id,omitempty"`
	NameSurname string `json:"name_surname"`
	OK          bool   `json:"ok"`
	Err         error  `json:"-"`
}

// Result is the outcome of a whole batch, in input order.
type Result struct {
	Items []ItemResult
	// HasAccepted is derived from the submitted records that were written,
	// not from a re-fetch.
	HasAccepted bool
}

// OK reports whether every write succeeded.
func (r Result) OK() bool {
	for _, it := range r.Items {
		if !it.OK {
			return false
		}
	}
	return true
}

// Failed returns the number of failed writes.
func (r Result) Failed() int {
	n := 0
	for _, it := range r.Items {
		if !it.OK {
			n++
		}
	}
	return n
}

// FirstError returns the error of the first failing record in input order,
// or nil when the batch succeeded.
func (r Result) FirstError() error {
	for _, it := range r.Items {
		if !it.OK {
			return it.Err
		}
	}
	return nil
}

// Err returns nil on full success, otherwise an error wrapping
// domain.ErrPartialBatch and the first failure.
func (r Result) Err() error {
	first := r.FirstError()
	if first == nil {
		return nil
	}
	return fmt.Errorf("%w: %d of %d failed: %w", domain.ErrPartialBatch, r.Failed(), len(r.Items), first)
}

// Validate checks every record before anything is written. It returns the
// first validation error, joined with any others.
func Validate(records []domain.RSVPResponse) error {
	var errs []error
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// Submit validates all records and, if they are all valid, writes each one
// with write. At most concurrency writes run at once (DefaultConcurrency
// when <= 0). A validation failure aborts before any write is issued.
func Submit(ctx context.Context, records []domain.RSVPResponse, write WriteFunc, concurrency int) (Result, error) {
	if err := Validate(records); err != nil {
		return Result{}, err
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	items := make([]ItemResult, len(records))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, rec := range records {
		items[i] = ItemResult{PersonID: rec.PersonID, NameSurname: rec.NameSurname}
		g.Go(func() error {
			if err := write(ctx, rec); err != nil {
				items[i].Err = err
				return nil
			}
			items[i].OK = true
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Items: items}
	for i, rec := range records {
		if items[i].OK && rec.IsAccepted() {
			res.HasAccepted = true
			break
		}
	}
	return res, nil
}
