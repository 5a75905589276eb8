package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/yong/moviehub/pkg/badgerfx"
)

// maxWriteAttempts bounds the retries of a write transaction that lost a
// conflict against another writer of the same keys.
const maxWriteAttempts = 10

// Repository persists one record kind under a key prefix such as "movie:".
// Ids come from a per-kind sequence stored next to the records. Writes are
// serialised per repository and retried on transaction conflicts.
type Repository[T badgerfx.Entity] struct {
	db      *badger.DB
	records *badgerfx.Repository[T]

	writeMu sync.Mutex

	prefix string
	now    func() time.Time
}

func NewRepository[T badgerfx.Entity](db *badger.DB, prefix string, factory badgerfx.EntityFactory[T]) *Repository[T] {
	return &Repository[T]{
		db:      db,
		records: badgerfx.NewRepository(factory),

		prefix: prefix,
		now:    time.Now,
	}
}

// Create allocates the next id and stores the record returned by build.
func (r *Repository[T]) Create(_ context.Context, build func(BaseEntity) (T, error)) (T, error) {
	var created T

	err := r.update(func(txn *badger.Txn) error {
		seq, err := badgerfx.NextSequence(txn, r.prefix+"seq")
		if err != nil {
			return err
		}

		entity, err := build(newBaseEntity(int64(seq), r.now())) //nolint:gosec //sequence stays far below MaxInt64
		if err != nil {
			return err
		}

		if wrErr := r.records.Write(txn, entity); wrErr != nil {
			return wrErr
		}

		created = entity
		return nil
	})

	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to create record: %w", err)
	}

	return created, nil
}

// Get returns the record with the given id or ErrNotFound.
func (r *Repository[T]) Get(_ context.Context, id int64) (T, error) {
	var found T

	err := r.db.View(func(txn *badger.Txn) error {
		entity, err := r.read(txn, id)
		if err == nil {
			found = entity
		}
		return err
	})

	return found, err
}

// List returns all records in ascending or descending id order.
func (r *Repository[T]) List(_ context.Context, direction Direction) ([]T, error) {
	var entities []T

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 50
		opts.Reverse = direction == Desc

		var err error
		entities, err = r.records.List(txn, r.prefix+"id:", opts)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return entities, nil
}

// ListByIndex returns the records referenced by index keys starting with prefix.
func (r *Repository[T]) ListByIndex(_ context.Context, prefix string) ([]T, error) {
	var entities []T

	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		entities, err = r.records.ListByIndex(txn, prefix)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list records by index: %w", err)
	}

	return entities, nil
}

// Update replaces the record with the value returned by updater. The
// updater receives the stored record and the time of the update.
func (r *Repository[T]) Update(_ context.Context, id int64, updater func(T, time.Time) (T, error)) (T, error) {
	var updated T

	err := r.update(func(txn *badger.Txn) error {
		old, err := r.read(txn, id)
		if err != nil {
			return err
		}

		if rmErr := r.records.DeleteIndexes(txn, old); rmErr != nil {
			return rmErr
		}

		entity, err := updater(old, r.now())
		if err != nil {
			return err
		}

		if entity.StorageKey() != old.StorageKey() {
			return fmt.Errorf("record key changed from %q to %q", old.StorageKey(), entity.StorageKey())
		}

		if wrErr := r.records.Write(txn, entity); wrErr != nil {
			return wrErr
		}

		updated = entity
		return nil
	})

	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to update record: %w", err)
	}

	return updated, nil
}

// Delete removes the record with the given id or returns ErrNotFound.
func (r *Repository[T]) Delete(_ context.Context, id int64) error {
	err := r.update(func(txn *badger.Txn) error {
		err := r.records.Delete(txn, Key(r.prefix, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// Exists reports whether a record with the given id is stored.
func (r *Repository[T]) Exists(_ context.Context, id int64) (bool, error) {
	exists := false

	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(Key(r.prefix, id)))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("failed to get record: %w", err)
		}

		exists = true
		return nil
	})

	return exists, err
}

// update runs fn in a read-write transaction, retrying it while badger
// reports a conflict with a concurrent transaction.
func (r *Repository[T]) update(fn func(txn *badger.Txn) error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var err error
	for range maxWriteAttempts {
		if err = r.db.Update(fn); !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrConflict, maxWriteAttempts, err)
}

func (r *Repository[T]) read(txn *badger.Txn, id int64) (T, error) {
	entity, err := r.records.Read(txn, Key(r.prefix, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entity, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return entity, fmt.Errorf("failed to read record: %w", err)
	}

	return entity, nil
}
