package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/courtbook/court-booking-service/internal/domain"
	"github.com/courtbook/court-booking-service/pkg/dbmetrics"
	"github.com/courtbook/court-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями и их строками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (без строк).
// Вызывается координатором внутри сериализуемой транзакции: если в контексте
// есть активная транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"reserved_date",
			"total",
			"status",
		).
		Values(
			booking.ClientID,
			booking.ReservedDate,
			booking.Total,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// CreateLines сохраняет строки бронирования одним INSERT.
// Возвращает строки с проставленными ID в порядке вставки.
func (r *Repository) CreateLines(ctx context.Context, lines []*domain.BookingLine) ([]*domain.BookingLine, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_lines").
		Columns(
			"booking_id",
			"court_service_id",
			"slot_id",
			"reserved_date",
		)

	for _, line := range lines {
		insertBuilder = insertBuilder.Values(
			line.BookingID,
			line.CourtServiceID,
			line.SlotID,
			line.ReservedDate,
		)
	}

	query, args, err := insertBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLines - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLines - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(lines) {
			return nil, fmt.Errorf("%w: CreateLines - more rows returned than inserted", ErrScanRow)
		}
		if err := rows.Scan(&lines[i].ID); err != nil {
			return nil, fmt.Errorf("%w: CreateLines - scan id: %v", ErrScanRow, err)
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateLines - rows error: %v", ErrScanRow, err)
	}
	if i != len(lines) {
		return nil, fmt.Errorf("%w: CreateLines - inserted %d lines, returned %d ids", ErrExecQuery, len(lines), i)
	}

	return lines, nil
}

// HasLineForSlot проверяет, существует ли строка бронирования для данной
// услуги корта, слота и даты среди неотменённых бронирований.
// Это проверка допуска: для базовой услуги корта не более одной строки
// на пару (слот, дата).
func (r *Repository) HasLineForSlot(ctx context.Context, courtServiceID, slotID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_lines bl").
		Join("bookings b ON b.id = bl.booking_id").
		Where(squirrel.Eq{
			"bl.court_service_id": courtServiceID,
			"bl.slot_id":          slotID,
			"bl.reserved_date":    date,
		}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasLineForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasLineForSlot - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListBookedSlotIDs возвращает ID слотов, занятых на дату для данной услуги
// корта (обычно базовой). Используется выдачей доступности.
func (r *Repository) ListBookedSlotIDs(ctx context.Context, courtServiceID int64, date time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT bl.slot_id").
		From("booking_lines bl").
		Join("bookings b ON b.id = bl.booking_id").
		Where(squirrel.Eq{
			"bl.court_service_id": courtServiceID,
			"bl.reserved_date":    date,
		}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("bl.slot_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSlotIDs - scan slot_id: %v", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - rows error: %v", ErrScanRow, err)
	}

	return slotIDs, nil
}

// GetByID получает бронирование по ID вместе со строками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"reserved_date",
		"total",
		"status",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ReservedDate,
		&booking.Total,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	lines, err := r.getLines(ctx, executor, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Lines = lines

	return &booking, nil
}

// GetByClientWithFilter получает бронирования клиента с фильтрацией по статусу.
// Если статус не указан и IncludeInactive=false, отменённые бронирования
// исключаются.
func (r *Repository) GetByClientWithFilter(ctx context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"reserved_date",
		"total",
		"status",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"client_id": filter.ClientID}).
		OrderBy("reserved_date DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ClientID,
			&booking.ReservedDate,
			&booking.Total,
			&booking.Status,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClientWithFilter - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// getLines получает строки бронирования
func (r *Repository) getLines(ctx context.Context, executor DBExecutor, bookingID int64) ([]domain.BookingLine, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"court_service_id",
		"slot_id",
		"reserved_date",
	).
		From("booking_lines").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.BookingLine, 0)
	for rows.Next() {
		var line domain.BookingLine
		err := rows.Scan(
			&line.ID,
			&line.BookingID,
			&line.CourtServiceID,
			&line.SlotID,
			&line.ReservedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}
