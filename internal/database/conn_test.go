package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/stockbox/internal/config"
	"github.com/thenoetrevino/stockbox/internal/models"
)

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, s.AddProduct(ctx, newProduct(t, "Bolt", 10, "Hardware", "Shelf 1")))

	db, err := s.Conn().Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(ctx, db, SQLite))
	require.NoError(t, EnsureSchema(ctx, db, SQLite))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestInitDBCreatesStorageDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	conn, err := InitDB(ctx, config.Database{Driver: config.DriverSQLite, Dir: dir, Name: "inventory.db"})
	require.NoError(t, err)
	defer conn.Close()

	assert.FileExists(t, filepath.Join(dir, "inventory.db"))
	assert.True(t, conn.Test(ctx))
}

func TestConnReopensAfterClose(t *testing.T) {
	ctx := context.Background()
	cfg := config.Database{Driver: config.DriverSQLite, Dir: t.TempDir(), Name: "inventory.db"}

	conn, err := InitDB(ctx, cfg)
	require.NoError(t, err)
	defer conn.Close()

	s := NewStore(conn, nil)
	require.NoError(t, s.AddProduct(ctx, newProduct(t, "Bolt", 10, "Hardware", "Shelf 1")))

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close(), "closing twice is harmless")

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bolt", products[0].Name)
}

func TestAcquireReportsConnectionError(t *testing.T) {
	conn := Open(config.Database{Driver: "oracle"})

	db, err := conn.Acquire(context.Background())
	assert.Nil(t, db)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "oracle", connErr.Driver)
	assert.False(t, conn.Test(context.Background()))
}

func TestTxFinishIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := setupTestConn(t)

	var nilTx *Tx
	assert.NoError(t, nilTx.Commit())
	assert.NoError(t, nilTx.Rollback())

	tx, err := conn.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())

	tx, err = conn.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, tx.Commit())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	boom := errors.New("boom")

	err := WithTx(ctx, s.Conn(), func(tx *Tx) error {
		if err := s.boxes.Insert(ctx, tx, models.NewBox("Box A", "")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	boxes, err := s.ListBoxes(ctx)
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	assert.Panics(t, func() {
		_ = WithTx(ctx, s.Conn(), func(tx *Tx) error {
			if err := s.boxes.Insert(ctx, tx, models.NewBox("Box A", "")); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	boxes, err := s.ListBoxes(ctx)
	require.NoError(t, err)
	assert.Empty(t, boxes)
}
