// Package simpletxmanager менеджер транзакций поверх обычного *sql.DB,
// без обёртки метрик. Используется, когда метрики выключены в конфигурации.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/courtbook/court-booking-service/pkg/dbmetrics"
	"github.com/courtbook/court-booking-service/pkg/txmanager"
)

const defaultLockTimeout = 10 * time.Second

// TransactionManager менеджер транзакций без метрик
type TransactionManager struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// Option опция конструктора
type Option func(*TransactionManager)

// WithLockTimeout задает ограничение ожидания блокировок (SET LOCAL lock_timeout)
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:          db,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с ограниченным
// временем ожидания блокировок
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if opts.Isolation == sql.LevelSerializable && !opts.ReadOnly {
		timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, timeout); err != nil {
			return fmt.Errorf("simpletxmanager: set lock_timeout: %w", err)
		}
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		if txmanager.IsRetryableError(err) {
			return fmt.Errorf("%w: %v", txmanager.ErrRetryable, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if txmanager.IsRetryableError(err) {
			return fmt.Errorf("%w: commit: %v", txmanager.ErrRetryable, err)
		}
		return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
	}
	committed = true

	return nil
}
