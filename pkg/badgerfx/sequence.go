package badgerfx

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// NextSequence increments the counter stored under key and returns the new
// value. The first value is 1. The counter is part of txn, so a rolled back
// transaction does not consume a value.
func NextSequence(txn *badger.Txn, key string) (uint64, error) {
	var current uint64

	item, err := txn.Get([]byte(key))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	default:
		if valErr := item.Value(func(val []byte) error {
			if len(val) != 8 { //nolint:mnd //uint64 size
				return fmt.Errorf("invalid sequence value of %d bytes", len(val))
			}
			current = binary.BigEndian.Uint64(val)
			return nil
		}); valErr != nil {
			return 0, fmt.Errorf("failed to read sequence: %w", valErr)
		}
	}

	next := current + 1
	if setErr := txn.Set([]byte(key), binary.BigEndian.AppendUint64(nil, next)); setErr != nil {
		return 0, fmt.Errorf("failed to update sequence: %w", setErr)
	}

	return next, nil
}
