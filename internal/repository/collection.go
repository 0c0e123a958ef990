// Package repository implements the data-consistency layer: every mutation is
// a read-full-collection, modify-in-memory, write-full-collection cycle over
// the key-value store. Writes carry an optimistic revision check; a mutation
// that loses the race is retried by re-reading and reapplying its closure.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/noah-isme/joineazy-go-api/internal/store"
)

var (
	// ErrNotFound indicates a referenced record id is absent.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail indicates a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrConflict indicates a collection write lost an optimistic revision
	// race and exhausted its retry budget.
	ErrConflict = errors.New("collection revision conflict")
)

// retryBudget bounds how often a mutation is reapplied after a revision
// conflict before giving up with ErrConflict.
const retryBudget = 3

// collection provides typed full-collection access to one store key. The
// revision counter lives under a sibling "<key>:rev" key so the documented
// layout of the collection keys themselves stays a plain JSON array.
type collection[T any] struct {
	store store.Store
	key   string
}

func newCollection[T any](s store.Store, key string) collection[T] {
	return collection[T]{store: s, key: key}
}

func (c collection[T]) revKey() string {
	return c.key + ":rev"
}

// load reads the full collection and its current revision. An absent key is
// an empty collection at revision zero.
func (c collection[T]) load(ctx context.Context) ([]T, int64, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, 0, err
	}

	var items []T
	if ok {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, 0, fmt.Errorf("corrupt %s collection: %w", c.key, err)
		}
	}

	rev, err := c.loadRev(ctx)
	if err != nil {
		return nil, 0, err
	}

	return items, rev, nil
}

func (c collection[T]) loadRev(ctx context.Context) (int64, error) {
	raw, ok, err := c.store.Get(ctx, c.revKey())
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	rev, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt revision for %s: %w", c.key, err)
	}

	return rev, nil
}

// save writes the collection back, guarded by the revision observed at load
// time. A mismatch means another writer got there first.
func (c collection[T]) save(ctx context.Context, items []T, loadedRev int64) error {
	current, err := c.loadRev(ctx)
	if err != nil {
		return err
	}
	if current != loadedRev {
		return ErrConflict
	}

	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", c.key, err)
	}

	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return err
	}

	return c.store.Set(ctx, c.revKey(), strconv.FormatInt(loadedRev+1, 10))
}

// mutate applies fn to a fresh copy of the collection and writes the result
// back, retrying the whole cycle when the revision check fails. fn must be
// safe to reapply; any error it returns aborts the mutation unchanged.
func (c collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	var lastErr error
	for attempt := 0; attempt < retryBudget; attempt++ {
		items, rev, err := c.load(ctx)
		if err != nil {
			return err
		}

		updated, err := fn(items)
		if err != nil {
			return err
		}

		err = c.save(ctx, updated, rev)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrConflict) {
			return err
		}
		lastErr = err
	}

	return lastErr
}
