package shift

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий месячных смен ресурсов. Хранит только явные
// переопределения дней: день без записи наследует шаблон дня недели.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetMonth загружает смену одного ресурса за месяц.
// Отсутствие записей - валидное состояние: возвращается смена с пустой
// картой дней, не ошибка.
func (r *Repository) GetMonth(ctx context.Context, companyID, resourceID int64, year int, month time.Month) (*domain.ResourceMonthShift, error) {
	shifts, err := r.GetMonthForResources(ctx, companyID, []int64{resourceID}, year, month)
	if err != nil {
		return nil, err
	}

	if s, ok := shifts[resourceID]; ok {
		return s, nil
	}

	return &domain.ResourceMonthShift{
		CompanyID:  companyID,
		ResourceID: resourceID,
		Year:       year,
		Month:      month,
		Days:       make(map[int]domain.DayEntry),
	}, nil
}

// GetMonthForResources загружает смены нескольких ресурсов за месяц одним
// запросом. Ресурсы без записей в результат не попадают.
// Инвариант "закрытый день без интервалов" восстанавливается при чтении.
func (r *Repository) GetMonthForResources(ctx context.Context, companyID int64, resourceIDs []int64, year int, month time.Month) (map[int64]*domain.ResourceMonthShift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(resourceIDs) == 0 {
		return map[int64]*domain.ResourceMonthShift{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"d.resource_id",
		"d.day",
		"d.status",
		"r.start_time",
		"r.end_time",
		"d.created_at",
		"d.updated_at",
	).
		From("resource_shift_days d").
		LeftJoin("resource_shift_ranges r ON r.shift_day_id = d.id").
		Where(squirrel.Eq{
			"d.company_id":  companyID,
			"d.resource_id": resourceIDs,
			"d.year":        year,
			"d.month":       int(month),
		}).
		OrderBy("d.resource_id ASC", "d.day ASC", "r.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthForResources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthForResources - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make(map[int64]*domain.ResourceMonthShift)

	for rows.Next() {
		var resourceID int64
		var day int
		var status string
		var startTime, endTime sql.NullString
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&resourceID, &day, &status, &startTime, &endTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetMonthForResources - scan row: %v", ErrScanRow, err)
		}

		s, ok := shifts[resourceID]
		if !ok {
			s = &domain.ResourceMonthShift{
				CompanyID:  companyID,
				ResourceID: resourceID,
				Year:       year,
				Month:      month,
				Days:       make(map[int]domain.DayEntry),
				CreatedAt:  createdAt.Time,
				UpdatedAt:  updatedAt.Time,
			}
			shifts[resourceID] = s
		}

		entry, ok := s.Days[day]
		if !ok {
			entry = domain.DayEntry{Status: domain.DayStatus(status)}
		}

		// LEFT JOIN: день без интервалов приходит с NULL временем
		if startTime.Valid && endTime.Valid {
			entry.Slots = append(entry.Slots, domain.TimeRange{
				Start: types.TimeString(startTime.String),
				End:   types.TimeString(endTime.String),
			})
		}

		s.Days[day] = entry
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMonthForResources - rows error: %v", ErrScanRow, err)
	}

	// Self-heal на границе чтения: закрытый статус теряет интервалы,
	// кривые интервалы отбрасываются
	for _, s := range shifts {
		s.Normalize()
	}

	return shifts, nil
}

// UpsertMonth перезаписывает смену ресурса за месяц целиком.
// Вызывается внутри сериализуемой транзакции: конкурирующее сохранение
// одного и того же месяца не должно оставлять смесь двух версий.
func (r *Repository) UpsertMonth(ctx context.Context, s *domain.ResourceMonthShift) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, args, err := psqlbuilder.Delete("resource_shift_days").
		Where(squirrel.Eq{
			"company_id":  s.CompanyID,
			"resource_id": s.ResourceID,
			"year":        s.Year,
			"month":       int(s.Month),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertMonth - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, args...); err != nil {
		return fmt.Errorf("%w: UpsertMonth - execute delete: %v", ErrExecQuery, err)
	}

	for day, entry := range s.Days {
		insertDay, args, err := psqlbuilder.Insert("resource_shift_days").
			Columns("company_id", "resource_id", "year", "month", "day", "status").
			Values(s.CompanyID, s.ResourceID, s.Year, int(s.Month), day, string(entry.Status)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpsertMonth - build day insert: %v", ErrBuildQuery, err)
		}

		var dayID int64
		if err := executor.QueryRowContext(ctx, insertDay, args...).Scan(&dayID); err != nil {
			return fmt.Errorf("%w: UpsertMonth - execute day insert: %v", ErrExecQuery, err)
		}

		if len(entry.Slots) == 0 {
			continue
		}

		insertRanges := psqlbuilder.Insert("resource_shift_ranges").
			Columns("shift_day_id", "start_time", "end_time")
		for _, rng := range entry.Slots {
			insertRanges = insertRanges.Values(dayID, rng.Start.String(), rng.End.String())
		}

		query, args, err := insertRanges.ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpsertMonth - build ranges insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpsertMonth - execute ranges insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}
