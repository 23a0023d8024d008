package get_calendar_meta

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("usecase.get_calendar_meta: company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("usecase.get_calendar_meta: service not found")

	// ErrResourceNotFound возвращается, когда ресурс не принадлежит компании
	ErrResourceNotFound = errors.New("usecase.get_calendar_meta: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("usecase.get_calendar_meta: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.get_calendar_meta: internal error")
)
