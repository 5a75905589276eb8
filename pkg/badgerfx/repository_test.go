package badgerfx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yong/moviehub/pkg/badgerfx"
)

type note struct {
	ID    int    `json:"id"`
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

func (n *note) StorageKey() string {
	return fmt.Sprintf("note:id:%04d", n.ID)
}

func (n *note) StorageIndexes() []string {
	return []string{fmt.Sprintf("note:topic:%s:%04d", n.Topic, n.ID)}
}

func (n *note) MarshalStorage() ([]byte, error) {
	return json.Marshal(n)
}

func (n *note) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, n)
}

func openDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badgerfx.Config{InMemory: true}.Build().WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepositoryRoundTrip(t *testing.T) {
	db := openDB(t)
	repo := badgerfx.NewRepository(func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for i, topic := range []string{"film", "news", "film"} {
			if err := repo.Write(txn, &note{ID: i + 1, Topic: topic, Text: fmt.Sprint("n", i+1)}); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		all, err := repo.List(txn, "note:id:", badger.DefaultIteratorOptions)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids(all))

		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		reversed, err := repo.List(txn, "note:id:", opts)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, ids(reversed))

		films, err := repo.ListByIndex(txn, "note:topic:film:")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, ids(films))

		one, err := repo.Read(txn, "note:id:0002")
		require.NoError(t, err)
		assert.Equal(t, "news", one.Topic)

		_, err = repo.Read(txn, "note:id:0009")
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)

		return nil
	}))

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, "note:id:0001")
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		films, err := repo.ListByIndex(txn, "note:topic:film:")
		require.NoError(t, err)
		assert.Equal(t, []int{3}, ids(films))
		return nil
	}))
}

func TestRepositoryDeleteMissing(t *testing.T) {
	db := openDB(t)
	repo := badgerfx.NewRepository(func() *note { return &note{} })

	err := db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, "note:id:0042")
	})
	assert.True(t, errors.Is(err, badger.ErrKeyNotFound))
}

func TestNextSequence(t *testing.T) {
	db := openDB(t)

	for want := uint64(1); want <= 3; want++ {
		var got uint64
		require.NoError(t, db.Update(func(txn *badger.Txn) error {
			var err error
			got, err = badgerfx.NextSequence(txn, "note:seq")
			return err
		}))
		assert.Equal(t, want, got)
	}

	rolledBack := errors.New("rollback")
	err := db.Update(func(txn *badger.Txn) error {
		if _, err := badgerfx.NextSequence(txn, "note:seq"); err != nil {
			return err
		}
		return rolledBack
	})
	require.ErrorIs(t, err, rolledBack)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		got, seqErr := badgerfx.NextSequence(txn, "note:seq")
		assert.Equal(t, uint64(4), got)
		return seqErr
	}))
}

func ids(notes []*note) []int {
	out := make([]int, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}
