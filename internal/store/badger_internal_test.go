package store

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStore_RejectsInvalidStoredValues(t *testing.T) {
	ctx := context.Background()
	values := map[string]string{
		"same words": `{"date":"2024-03-01","pair":["x","x"]}`,
		"empty word": `{"date":"2024-03-01","pair":["cold",""]}`,
		"bad date":   `{"date":"yesterday","pair":["cold","warm"]}`,
		"not json":   `{"date":`,
	}
	for name, raw := range values {
		t.Run(name, func(t *testing.T) {
			s, err := OpenBadger(BadgerConfig{InMemory: true})
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
				return txn.Set(recordKey("2024-03-01"), []byte(raw))
			}))

			_, err = s.Get(ctx, "2024-03-01")
			assert.ErrorIs(t, err, ErrCorrupt)

			_, err = s.List(ctx, 0)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
