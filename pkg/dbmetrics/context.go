package dbmetrics

import "context"

type ctxKey struct{}

var executorKey ctxKey

// WithExecutor кладет транзакционный исполнитель в context.
// Репозитории, получившие такой context, выполняют запросы внутри транзакции.
func WithExecutor(ctx context.Context, executor TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey, executor)
}

// GetExecutor возвращает исполнитель из context или fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey).(TxExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(TxExecutor)
	return ok
}
