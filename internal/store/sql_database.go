// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/migrations"
)

// Retry policy for statements whose error the driver classifier marks as
// Retryable: capped exponential backoff, three attempts in total.
const (
	maxExecRetries     = 2
	defaultRetryBase   = 50 * time.Millisecond
	defaultRetryCapped = time.Second
)

// DB wraps a *sql.DB with the dialect specific pieces the repositories need:
// the squirrel statement builder (placeholder format) and the driver error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	retryBase   time.Duration
	retryCapped time.Duration
}

// NewDB wraps an already opened connection. driver selects the placeholder
// format and error classifier: "pgx" uses $n placeholders and PostgreSQL
// error codes, anything else uses ? placeholders and SQLite error codes.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:          conn,
		driver:      driver,
		logger:      log,
		retryBase:   defaultRetryBase,
		retryCapped: defaultRetryCapped,
	}

	if driver == config.DriverPostgres {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	} else {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// execWithRetry executes a DML statement, backing off and retrying while
// the driver classifies the failure as Retryable. The wait is bound to ctx.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	backoff := retry.WithMaxRetries(maxExecRetries,
		retry.WithCappedDuration(db.retryCapped, retry.NewExponential(db.retryBase)))

	var result sql.Result
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		result, err = db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if db.classify(err) == Retryable {
			db.logger.Debug().Err(err).Str("func", "*DB.execWithRetry").Msg("retryable statement error")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
