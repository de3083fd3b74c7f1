package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

// recordingTx pgx.Tx que delega las consultas en fakeQuerier y anota Commit/Rollback.
type recordingTx struct {
	pgx.Tx
	q          *fakeQuerier
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.q.Exec(ctx, sql, args...)
}

func (tx *recordingTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.q.Query(ctx, sql, args...)
}

func (tx *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return tx.q.QueryRow(ctx, sql, args...)
}

func (tx *recordingTx) CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	return tx.q.CopyFrom(ctx, table, columns, src)
}

func (tx *recordingTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *recordingTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	tx  *recordingTx
	err error
}

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

type txRepos func(repository.UploadRepository, repository.SaleRepository, repository.ProductRepository, repository.TransferRepository) error

func TestTxRunner_CommitConReposDeLaTx(t *testing.T) {
	tx := &recordingTx{q: &fakeQuerier{}}
	var fn txRepos = func(u repository.UploadRepository, s repository.SaleRepository, _ repository.ProductRepository, _ repository.TransferRepository) error {
		if err := u.Create(context.Background(), &entity.Upload{ID: "up-1", UserID: "user-1", CreatedAt: time.Now()}); err != nil {
			return err
		}
		_, err := s.InsertBatch(context.Background(), "up-1", "user-1", []entity.Sale{{SKU: "SKU1", Quantity: 1, Store: "T"}})
		return err
	}

	require.NoError(t, NewTxRunner(fakeBeginner{tx: tx}).Run(context.Background(), fn))
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Contains(t, tx.q.execSQL, "INSERT INTO uploads", "el lote se crea dentro de la tx")
	assert.Equal(t, pgx.Identifier{"sales"}, tx.q.table)
	assert.Len(t, tx.q.rows, 1)
}

func TestTxRunner_RollbackSiFallaFn(t *testing.T) {
	tx := &recordingTx{q: &fakeQuerier{}}
	boom := errors.New("copy falló")
	var fn txRepos = func(repository.UploadRepository, repository.SaleRepository, repository.ProductRepository, repository.TransferRepository) error {
		return boom
	}

	err := NewTxRunner(fakeBeginner{tx: tx}).Run(context.Background(), fn)
	assert.Same(t, boom, err)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestTxRunner_ErroresDeBeginYCommit(t *testing.T) {
	noop := func(repository.UploadRepository, repository.SaleRepository, repository.ProductRepository, repository.TransferRepository) error {
		return nil
	}
	refused := errors.New("conexión rechazada")
	err := NewTxRunner(fakeBeginner{err: refused}).Run(context.Background(), noop)
	assert.ErrorIs(t, err, refused)

	serialization := errors.New("could not serialize access")
	tx := &recordingTx{q: &fakeQuerier{}, commitErr: serialization}
	err = NewTxRunner(fakeBeginner{tx: tx}).Run(context.Background(), noop)
	assert.ErrorIs(t, err, serialization)
	assert.True(t, tx.rolledBack)
}
