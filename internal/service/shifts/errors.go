package shifts

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("shifts.service: company not found")

	// ErrResourceNotFound возвращается, когда ресурс не принадлежит компании
	ErrResourceNotFound = errors.New("shifts.service: resource not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер компании
	ErrAccessDenied = errors.New("shifts.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("shifts.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shifts.service: internal error")
)
