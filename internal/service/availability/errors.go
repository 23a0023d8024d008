package availability

import "errors"

var (
	// ErrInvalidMonth возвращается при месяце вне диапазона 1-12
	ErrInvalidMonth = errors.New("availability: month must be between 1 and 12")

	// ErrInvalidYear возвращается при годе вне поддерживаемого диапазона
	ErrInvalidYear = errors.New("availability: year out of supported range")

	// ErrInvalidHolidayRule возвращается при правиле с неизвестной частотой
	ErrInvalidHolidayRule = errors.New("availability: invalid holiday rule")

	// ErrInvalidOffering возвращается при некорректных параметрах услуги
	ErrInvalidOffering = errors.New("availability: invalid service offering")
)
