package domain

import (
	"time"
)

// DateLayout - канонический формат календарной даты (ISO 8601, только дата)
const DateLayout = "2006-01-02"

// TimeLayout - формат времени суток для отметок посещаемости
const TimeLayout = "15:04:05"

// Employee представляет сотрудника с зафиксированным окладом
type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"type:varchar(80);uniqueIndex;not null"`
	Position   Position  `json:"position" gorm:"type:varchar(80);not null"`
	BaseSalary float64   `json:"base_salary" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// AttendanceEvent представляет отметку посещаемости за календарный день.
// Дата хранится канонически в формате DateLayout; не более одной записи
// на пару (name, date).
type AttendanceEvent struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(80);not null;uniqueIndex:idx_attendance_name_date"`
	Date string `json:"date" gorm:"type:varchar(20);not null;uniqueIndex:idx_attendance_name_date"`
	Time string `json:"time" gorm:"type:varchar(20);not null"`
}

// TableName задаёт имя таблицы для GORM
func (AttendanceEvent) TableName() string {
	return "attendance"
}

// WorkHourEntry представляет отработанные часы за день.
// Не более одной записи на пару (name, date); повторная отправка
// перезаписывает часы.
type WorkHourEntry struct {
	ID    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `json:"name" gorm:"type:varchar(80);not null;uniqueIndex:idx_work_hours_name_date"`
	Date  string  `json:"date" gorm:"type:varchar(20);not null;uniqueIndex:idx_work_hours_name_date"`
	Hours float64 `json:"hours" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (WorkHourEntry) TableName() string {
	return "work_hours"
}

// MonthlyReportRow - строка месячного отчёта. Вычисляется заново
// на каждый запрос и нигде не сохраняется.
type MonthlyReportRow struct {
	Employee             string  `json:"employee"`
	DaysAttended         int     `json:"days_attended"`
	AbsentDays           int     `json:"absent_days"`
	ExtraHourDays        int     `json:"extra_hour_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	BaseSalary           float64 `json:"base_salary"`
	Deduction            float64 `json:"deduction"`
	Increment            float64 `json:"increment"`
	FinalSalary          float64 `json:"final_salary"`
}
