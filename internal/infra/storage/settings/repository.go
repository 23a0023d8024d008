package settings

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

// Repository репозиторий настроек расписания компании: базовые параметры,
// часы работы и правила регулярных выходных
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompany загружает настройки компании целиком: строку настроек,
// интервалы часов работы (базовые и по дням недели) и правила выходных.
// Некорректные интервалы и правила отбрасываются при чтении (self-heal),
// а не валят весь запрос.
func (r *Repository) GetByCompany(ctx context.Context, companyID int64) (*domain.CompanySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"slot_step_minutes",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("company_settings").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.CompanySettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.CompanyID,
		&settings.SlotStepMinutes,
		&settings.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	hours, err := r.loadBusinessHours(ctx, executor, companyID)
	if err != nil {
		return nil, err
	}
	settings.Hours = hours

	rules, err := r.loadHolidayRules(ctx, executor, companyID)
	if err != nil {
		return nil, err
	}
	settings.HolidayRules = rules

	return &settings, nil
}

// Upsert сохраняет настройки компании. Часы работы и правила выходных
// перезаписываются целиком; вызывать внутри транзакции.
func (r *Repository) Upsert(ctx context.Context, settings *domain.CompanySettings) (*domain.CompanySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_settings").
		Columns("company_id", "slot_step_minutes", "timezone").
		Values(settings.CompanyID, settings.SlotStepMinutes, settings.Timezone).
		Suffix(`ON CONFLICT (company_id) DO UPDATE
			SET slot_step_minutes = EXCLUDED.slot_step_minutes,
			    timezone = EXCLUDED.timezone,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	if err := r.replaceBusinessHours(ctx, executor, settings.CompanyID, settings.Hours); err != nil {
		return nil, err
	}
	if err := r.replaceHolidayRules(ctx, executor, settings.CompanyID, settings.HolidayRules); err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *Repository) loadBusinessHours(ctx context.Context, executor DBExecutor, companyID int64) (domain.BusinessHours, error) {
	hours := domain.BusinessHours{
		Weekly: make(map[time.Weekday]domain.WeekdayHours),
	}

	// Флаги useCustom по дням недели
	query, args, err := psqlbuilder.Select("weekday", "use_custom").
		From("business_hours_weekly").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - build flags query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - execute flags query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var useCustom bool
		if err := rows.Scan(&weekday, &useCustom); err != nil {
			return hours, fmt.Errorf("%w: loadBusinessHours - scan flag: %v", ErrScanRow, err)
		}
		hours.Weekly[time.Weekday(weekday)] = domain.WeekdayHours{UseCustom: useCustom}
	}
	if err := rows.Err(); err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - flag rows error: %v", ErrScanRow, err)
	}

	// Интервалы: weekday IS NULL - базовые часы
	query, args, err = psqlbuilder.Select("weekday", "start_time", "end_time").
		From("business_hours").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("weekday NULLS FIRST", "start_time ASC").
		ToSql()
	if err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - build ranges query: %v", ErrBuildQuery, err)
	}

	rangeRows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - execute ranges query: %v", ErrExecQuery, err)
	}
	defer rangeRows.Close()

	for rangeRows.Next() {
		var weekday sql.NullInt64
		var startTime, endTime string
		if err := rangeRows.Scan(&weekday, &startTime, &endTime); err != nil {
			return hours, fmt.Errorf("%w: loadBusinessHours - scan range: %v", ErrScanRow, err)
		}

		rng := domain.TimeRange{Start: types.TimeString(startTime), End: types.TimeString(endTime)}

		if !weekday.Valid {
			hours.Basic = append(hours.Basic, rng)
			continue
		}

		w := time.Weekday(weekday.Int64)
		wh := hours.Weekly[w]
		wh.Ranges = append(wh.Ranges, rng)
		hours.Weekly[w] = wh
	}
	if err := rangeRows.Err(); err != nil {
		return hours, fmt.Errorf("%w: loadBusinessHours - range rows error: %v", ErrScanRow, err)
	}

	// Self-heal: невалидные интервалы отбрасываем на границе чтения
	return hours.Sanitize(), nil
}

func (r *Repository) loadHolidayRules(ctx context.Context, executor DBExecutor, companyID int64) ([]domain.HolidayRule, error) {
	query, args, err := psqlbuilder.Select("weekday", "frequency").
		From("holiday_rules").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("weekday ASC", "frequency ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadHolidayRules - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadHolidayRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.HolidayRule, 0)
	for rows.Next() {
		var weekday int
		var frequency string
		if err := rows.Scan(&weekday, &frequency); err != nil {
			return nil, fmt.Errorf("%w: loadHolidayRules - scan rule: %v", ErrScanRow, err)
		}

		rule := domain.HolidayRule{
			Weekday:   time.Weekday(weekday),
			Frequency: domain.HolidayFrequency(frequency),
		}
		// Self-heal: правила с неизвестной частотой пропускаем
		if !rule.Frequency.IsValid() {
			continue
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadHolidayRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func (r *Repository) replaceBusinessHours(ctx context.Context, executor DBExecutor, companyID int64, hours domain.BusinessHours) error {
	for _, table := range []string{"business_hours", "business_hours_weekly"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"company_id": companyID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - build delete query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - execute delete: %v", ErrExecQuery, err)
		}
	}

	insertRanges := psqlbuilder.Insert("business_hours").
		Columns("company_id", "weekday", "start_time", "end_time")
	haveRanges := false

	for _, rng := range hours.Basic {
		insertRanges = insertRanges.Values(companyID, nil, rng.Start.String(), rng.End.String())
		haveRanges = true
	}

	insertFlags := psqlbuilder.Insert("business_hours_weekly").
		Columns("company_id", "weekday", "use_custom")
	haveFlags := false

	for _, weekday := range domain.Weekdays {
		wh, ok := hours.Weekly[weekday]
		if !ok {
			continue
		}
		insertFlags = insertFlags.Values(companyID, int(weekday), wh.UseCustom)
		haveFlags = true

		for _, rng := range wh.Ranges {
			insertRanges = insertRanges.Values(companyID, int(weekday), rng.Start.String(), rng.End.String())
			haveRanges = true
		}
	}

	if haveRanges {
		query, args, err := insertRanges.ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - execute insert: %v", ErrExecQuery, err)
		}
	}

	if haveFlags {
		query, args, err := insertFlags.ToSql()
		if err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - build flags insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: replaceBusinessHours - execute flags insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

func (r *Repository) replaceHolidayRules(ctx context.Context, executor DBExecutor, companyID int64, rules []domain.HolidayRule) error {
	query, args, err := psqlbuilder.Delete("holiday_rules").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHolidayRules - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHolidayRules - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("holiday_rules").
		Columns("company_id", "weekday", "frequency")
	for _, rule := range rules {
		insert = insert.Values(companyID, int(rule.Weekday), string(rule.Frequency))
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHolidayRules - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHolidayRules - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
