package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/courtbook/court-booking-service/internal/domain"
	"github.com/courtbook/court-booking-service/pkg/dbmetrics"
	"github.com/courtbook/court-booking-service/pkg/psqlbuilder"
)

// код ошибки PostgreSQL "lock_not_available" (FOR UPDATE NOWAIT отказал)
const pqLockNotAvailable = "55P03"

// Repository репозиторий для работы с кортами и их услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт по ID вместе с названием его статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.description",
		"c.hourly_rate",
		"c.status_id",
		"s.name",
		"c.covered",
		"c.created_at",
		"c.updated_at",
	).
		From("courts c").
		Join("court_statuses s ON s.id = c.status_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.Description,
		&court.HourlyRate,
		&court.StatusID,
		&court.StatusName,
		&court.Covered,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	// Фолбэк для легаси-строк, у которых флаг covered не проставлен при вводе
	if !court.Covered {
		desc := ""
		if court.Description != nil {
			desc = *court.Description
		}
		court.Covered = domain.ClassifyCovered(desc, court.StatusName)
	}

	return &court, nil
}

// ListServices получает все услуги корта.
// Внутри транзакции строки блокируются через FOR UPDATE NOWAIT: это
// write-intent блокировка критической секции бронирования: две
// конкурирующие заявки на один корт не могут одновременно пройти проверку
// конфликтов. Отказ в блокировке возвращается как ErrLockNotAvailable.
func (r *Repository) ListServices(ctx context.Context, courtID int64) ([]*domain.CourtService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"court_id",
		"service_id",
		"service_name",
		"service_kind",
		"additional_price",
	).
		From("court_services").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE NOWAIT")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqLockNotAvailable {
			return nil, fmt.Errorf("%w: court_id=%d", ErrLockNotAvailable, courtID)
		}
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.CourtService, 0)
	for rows.Next() {
		var svc domain.CourtService
		var kind sql.NullString

		err := rows.Scan(
			&svc.ID,
			&svc.CourtID,
			&svc.ServiceID,
			&svc.ServiceName,
			&kind,
			&svc.AdditionalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}

		// Фолбэк-классификатор для легаси-строк без явного вида услуги
		if kind.Valid && kind.String != "" {
			svc.Kind = domain.ServiceKind(kind.String)
		} else {
			svc.Kind = domain.ClassifyServiceKind(svc.ServiceName)
		}

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
