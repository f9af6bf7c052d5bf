package repository

import (
	"context"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для работы с отметками посещаемости
type AttendanceRepository interface {
	Create(ctx context.Context, event *domain.AttendanceEvent) error
	ExistsForDay(ctx context.Context, name string, day time.Time) (bool, error)
	ListByDate(ctx context.Context, day time.Time) ([]domain.AttendanceEvent, error)
	List(ctx context.Context) ([]domain.AttendanceEvent, error)
	CountDistinctDays(ctx context.Context, name string, from, to time.Time) (int, error)
	DeleteAll(ctx context.Context) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, event *domain.AttendanceEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *attendanceRepository) ExistsForDay(ctx context.Context, name string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.AttendanceEvent{}).
		Where("name = ? AND date = ?", name, day.Format(domain.DateLayout)).
		Count(&count).Error
	return count > 0, err
}

func (r *attendanceRepository) ListByDate(ctx context.Context, day time.Time) ([]domain.AttendanceEvent, error) {
	var events []domain.AttendanceEvent
	err := r.db.WithContext(ctx).
		Where("date = ?", day.Format(domain.DateLayout)).
		Order("time ASC").
		Find(&events).Error
	return events, err
}

func (r *attendanceRepository) List(ctx context.Context) ([]domain.AttendanceEvent, error) {
	var events []domain.AttendanceEvent
	err := r.db.WithContext(ctx).
		Order("date DESC, time DESC").
		Find(&events).Error
	return events, err
}

func (r *attendanceRepository) CountDistinctDays(ctx context.Context, name string, from, to time.Time) (int, error) {
	var count int

	// Даты хранятся в формате ISO, поэтому BETWEEN по строкам корректен
	query := `SELECT COUNT(DISTINCT date) FROM attendance WHERE name = ? AND date BETWEEN ? AND ?`

	err := r.db.WithContext(ctx).
		Raw(query, name, from.Format(domain.DateLayout), to.Format(domain.DateLayout)).
		Scan(&count).Error
	return count, err
}

func (r *attendanceRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&domain.AttendanceEvent{}).Error
}
