package badgerfx

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewInMemory(t *testing.T) {
	db, err := New(Config{Dir: "ignored", InMemory: true}, newLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Opts().InMemory)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("v"))
	}))
}

func TestConfigBuild(t *testing.T) {
	opts := Config{Dir: "/var/lib/moviehub"}.Build()

	assert.Equal(t, "/var/lib/moviehub", opts.Dir)
	assert.Equal(t, "/var/lib/moviehub", opts.ValueDir)
	assert.False(t, opts.InMemory)
}
