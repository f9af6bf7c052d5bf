package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound  = errors.New("employee is not registered")
	ErrDuplicateEmployee = errors.New("employee with this name already exists")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrUnknownPosition   = errors.New("unknown position")
	ErrNegativeHours     = errors.New("hours cannot be negative")
	ErrInvalidDate       = errors.New("invalid date, expected format YYYY-MM-DD")
	ErrInvalidMonth      = errors.New("invalid month, expected year and month 1-12")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("failed to write export file")
)
