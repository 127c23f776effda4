package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/cleanup"
)

const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// NewPool opens the pool shared by all repositories, so they can join one transaction.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

type txKey struct{}

type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	return &TxManager{
		conn: conn,
	}
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := m.conn.Begin(ctx)
	if err != nil {
		return storeErr("beginning transaction", err)
	}
	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		// Rollback must survive a cancelled request context
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Error("transaction rollback failed", slog.String("error", rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return storeErr("committing transaction", err)
	}
	return nil
}

// querier returns the transaction bound to ctx, or the plain connection.
func querier(ctx context.Context, conn PgConnection) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s error: %w", errorvalues.ErrStore, op, err)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
