package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на регистрацию сотрудника
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=80"`
	Position string `json:"position" validate:"required,min=1,max=80"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	BaseSalary float64   `json:"base_salary"`
	CreatedAt  time.Time `json:"created_at"`
}

// RoleResponse - элемент справочника должностей
type RoleResponse struct {
	Position   string  `json:"position"`
	BaseSalary float64 `json:"base_salary"`
}

// MarkAttendanceRequest - запрос на отметку посещаемости
type MarkAttendanceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

// MarkAttendanceResponse - результат отметки посещаемости
type MarkAttendanceResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`
}

// AttendanceResponse - запись посещаемости
type AttendanceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// DashboardResponse - сводка за сегодняшний день
type DashboardResponse struct {
	Today         string               `json:"today"`
	EmployeeCount int64                `json:"employee_count"`
	Records       []AttendanceResponse `json:"records"`
}

// RecordWorkHoursRequest - запрос на запись отработанных часов.
// Пустая дата означает сегодняшний день.
type RecordWorkHoursRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=80"`
	Date  string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Hours float64 `json:"hours"`
}

// RecordWorkHoursResponse - результат записи отработанных часов
type RecordWorkHoursResponse struct {
	Status string  `json:"status"`
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
}

// ExportAttendanceRequest - запрос на выгрузку журнала посещаемости
type ExportAttendanceRequest struct {
	Format string `json:"format" validate:"required,oneof=csv xlsx pdf"`
}

// ExportReportRequest - запрос на выгрузку месячного отчёта
type ExportReportRequest struct {
	Year   int    `json:"year" validate:"required,min=1,max=9999"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Format string `json:"format" validate:"required,oneof=csv xlsx pdf"`
}

// ExportResponse - путь к созданному файлу выгрузки
type ExportResponse struct {
	FilePath string `json:"file_path"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
