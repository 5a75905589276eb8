package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Entity is a value stored under its own key with optional secondary index
// keys. Index keys hold the primary key as their value.
type Entity interface {
	StorageKey() string
	StorageIndexes() []string

	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}

type EntityFactory[T Entity] func() T

// Repository reads and writes entities inside caller-managed transactions.
type Repository[T Entity] struct {
	factory EntityFactory[T]
}

func NewRepository[T Entity](factory EntityFactory[T]) *Repository[T] {
	return &Repository[T]{
		factory: factory,
	}
}

// List returns all entities whose keys start with prefix.
func (r *Repository[T]) List(txn *badger.Txn, prefix string, options badger.IteratorOptions) ([]T, error) {
	validPrefix := []byte(prefix)
	seekPrefix := []byte(prefix)
	if options.Reverse {
		seekPrefix = append(seekPrefix, SeekEnd)
	}
	options.Prefix = validPrefix

	it := txn.NewIterator(options)
	defer it.Close()

	entities := []T{}
	for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		entity, err := r.decode(it.Item())
		if err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

// ListByIndex returns the entities referenced by the index keys starting with prefix.
func (r *Repository[T]) ListByIndex(txn *badger.Txn, prefix string) ([]T, error) {
	validPrefix := []byte(prefix)

	options := badger.DefaultIteratorOptions
	options.Prefix = validPrefix

	it := txn.NewIterator(options)
	defer it.Close()

	entities := []T{}
	for it.Seek(validPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		key, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get entity key: %w", err)
		}

		entity, err := r.Read(txn, string(key))
		if err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

// Read returns the entity stored under key. A missing key is reported as
// badger.ErrKeyNotFound.
func (r *Repository[T]) Read(txn *badger.Txn, key string) (T, error) {
	item, err := txn.Get([]byte(key))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get entity: %w", err)
	}

	return r.decode(item)
}

func (r *Repository[T]) Write(txn *badger.Txn, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if indexErr := r.CreateIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if setErr := txn.Set([]byte(entity.StorageKey()), data); setErr != nil {
		return fmt.Errorf("failed to update entity: %w", setErr)
	}

	return nil
}

// Delete removes the entity stored under key together with its indexes.
func (r *Repository[T]) Delete(txn *badger.Txn, key string) error {
	entity, err := r.Read(txn, key)
	if err != nil {
		return err
	}

	if indexErr := r.DeleteIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if delErr := txn.Delete([]byte(key)); delErr != nil {
		return fmt.Errorf("failed to delete entity: %w", delErr)
	}

	return nil
}

func (r *Repository[T]) CreateIndexes(txn *badger.Txn, entity T) error {
	key := []byte(entity.StorageKey())
	for _, index := range entity.StorageIndexes() {
		if err := txn.Set([]byte(index), key); err != nil {
			return fmt.Errorf("failed to set entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) DeleteIndexes(txn *badger.Txn, entity T) error {
	for _, index := range entity.StorageIndexes() {
		if err := txn.Delete([]byte(index)); err != nil {
			return fmt.Errorf("failed to delete entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(func(val []byte) error {
		return entity.UnmarshalStorage(val)
	}); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}
