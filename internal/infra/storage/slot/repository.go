package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/courtbook/court-booking-service/internal/domain"
	"github.com/courtbook/court-booking-service/pkg/dbmetrics"
	"github.com/courtbook/court-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом временных слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает временной слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
	).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// ListAll получает весь каталог слотов, отсортированный по времени начала
func (r *Repository) ListAll(ctx context.Context) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
	).
		From("time_slots").
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
