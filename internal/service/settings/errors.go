package settings

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("settings.service: company not found")

	// ErrSettingsNotFound возвращается, когда у компании нет сохранённых настроек
	ErrSettingsNotFound = errors.New("settings.service: settings not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер компании
	ErrAccessDenied = errors.New("settings.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
