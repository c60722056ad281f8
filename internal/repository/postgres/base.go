package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clinicore/clinic-api/pkg/metrics"
)

// Store owns the connection pool and the transaction boundary. Services
// run multi-statement operations through WithTx; repositories execute
// single statements and carry no transaction control of their own.
type Store struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

func NewStore(db *sqlx.DB, m *metrics.Metrics) *Store {
	return &Store{db: db, metrics: m}
}

// GetDB returns the database instance
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// WithTx executes a function within a transaction
func (s *Store) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.observe("tx", "begin_failed", start)
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		s.observe("tx", "rollback", start)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.observe("tx", "commit_failed", start)
		return err
	}
	s.observe("tx", "commit", start)
	return nil
}

func (s *Store) observe(operation, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.DatabaseOperations.WithLabelValues(operation, status).Inc()
	s.metrics.DatabaseLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// uniqueViolation is the Postgres error code raised when an insert hits
// a unique constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
