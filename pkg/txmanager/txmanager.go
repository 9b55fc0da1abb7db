// Package txmanager управление транзакциями поверх dbmetrics.DB.
// Транзакция передается в репозитории через context (dbmetrics.WithExecutor),
// поэтому код usecase не зависит от *sql.Tx напрямую.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/courtbook/court-booking-service/pkg/dbmetrics"
)

// ErrRetryable возвращается, когда транзакция завершилась конфликтом
// сериализации или не смогла получить блокировку. Вызывающий код может
// повторить операцию.
var ErrRetryable = errors.New("txmanager: transaction must be retried")

// коды ошибок PostgreSQL, при которых транзакцию имеет смысл повторить
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

const defaultLockTimeout = 10 * time.Second

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db          TxBeginner
	lockTimeout time.Duration
}

// Option опция конструктора
type Option func(*TransactionManager)

// WithLockTimeout задает ограничение ожидания блокировок внутри
// сериализуемых транзакций (SET LOCAL lock_timeout)
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
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
// временем ожидания блокировок. Это критическая секция для операций
// "проверить и записать": между проверкой и коммитом нет точек, в которых
// конкурирующая транзакция могла бы вклиниться.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
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
			return fmt.Errorf("txmanager: set lock_timeout: %w", err)
		}
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		if IsRetryableError(err) {
			return fmt.Errorf("%w: %v", ErrRetryable, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsRetryableError(err) {
			return fmt.Errorf("%w: commit: %v", ErrRetryable, err)
		}
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}
	committed = true

	return nil
}

// IsRetryableError сообщает, является ли ошибка конфликтом сериализации,
// дедлоком или отказом в блокировке PostgreSQL
func IsRetryableError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
		return true
	default:
		return false
	}
}
