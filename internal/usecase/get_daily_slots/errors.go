package get_daily_slots

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("usecase.get_daily_slots: company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("usecase.get_daily_slots: service not found")

	// ErrResourceNotFound возвращается, когда ресурс не принадлежит компании
	ErrResourceNotFound = errors.New("usecase.get_daily_slots: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("usecase.get_daily_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.get_daily_slots: internal error")
)
