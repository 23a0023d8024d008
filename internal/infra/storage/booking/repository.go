package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository read-only репозиторий бронирований. Таблица принадлежит
// BookingService; этот сервис читает её исключительно для вычитания
// занятого времени при расчёте доступности.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithFilter получает бронирования компании с фильтрацией по ресурсам
// и периоду. По умолчанию возвращаются только активные бронирования -
// отменённые и no-show слот не занимают.
//
// Для консистентного расчёта доступности все бронирования запроса должны
// читаться одним вызовом (один снапшот стора), а не по одному на ресурс.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"company_id",
		"resource_id",
		"service_id",
		"user_id",
		"booking_date",
		"start_time",
		"duration_minutes",
		"buffer_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"company_id": filter.CompanyID})

	// Фильтрация по ресурсам (если указаны)
	if len(filter.ResourceIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": filter.ResourceIDs})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Неактивные бронирования не занимают слоты
	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC", "start_time ASC", "resource_id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CompanyID,
			&b.ResourceID,
			&b.ServiceID,
			&b.UserID,
			&b.BookingDate,
			&b.StartTime,
			&b.DurationMinutes,
			&b.BufferMinutes,
			&b.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
