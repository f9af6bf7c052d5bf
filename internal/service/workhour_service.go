package service

import (
	"context"
	"strings"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/repository"
)

// RecordStatus - результат записи отработанных часов
type RecordStatus string

const (
	// RecordStatusInserted - создана новая запись за день
	RecordStatusInserted RecordStatus = "inserted"
	// RecordStatusUpdated - часы существующей записи перезаписаны
	RecordStatusUpdated RecordStatus = "updated"
)

// WorkHourService определяет интерфейс бизнес-логики учёта часов
type WorkHourService interface {
	Record(ctx context.Context, name, dateStr string, hours float64, now time.Time) (*domain.WorkHourEntry, RecordStatus, error)
}

type workHourService struct {
	whRepo  repository.WorkHourRepository
	empRepo repository.EmployeeRepository
}

// NewWorkHourService создаёт новый экземпляр сервиса
func NewWorkHourService(whRepo repository.WorkHourRepository, empRepo repository.EmployeeRepository) WorkHourService {
	return &workHourService{
		whRepo:  whRepo,
		empRepo: empRepo,
	}
}

func (s *workHourService) Record(ctx context.Context, name, dateStr string, hours float64, now time.Time) (*domain.WorkHourEntry, RecordStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", domain.ErrEmptyName
	}

	if hours < 0 {
		return nil, "", domain.ErrNegativeHours
	}

	// Пустая дата означает сегодняшний день
	day := now
	if dateStr = strings.TrimSpace(dateStr); dateStr != "" {
		parsed, err := time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			return nil, "", domain.ErrInvalidDate
		}
		day = parsed
	}

	exists, err := s.empRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", domain.ErrEmployeeNotFound
	}

	entry := &domain.WorkHourEntry{
		Name:  name,
		Date:  day.Format(domain.DateLayout),
		Hours: hours,
	}

	created, err := s.whRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, "", err
	}

	status := RecordStatusUpdated
	if created {
		status = RecordStatusInserted
	}

	return entry, status, nil
}
