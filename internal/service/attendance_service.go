package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/export"
	"github.com/smart-attendance-api/internal/repository"
)

// MarkStatus - результат отметки посещаемости
type MarkStatus string

const (
	// MarkStatusMarked - отметка создана
	MarkStatusMarked MarkStatus = "marked"
	// MarkStatusAlreadyMarked - отметка за этот день уже существует,
	// повторный вызов ничего не меняет
	MarkStatusAlreadyMarked MarkStatus = "already_marked"
)

// AttendanceService определяет интерфейс бизнес-логики посещаемости
type AttendanceService interface {
	Mark(ctx context.Context, name string, now time.Time) (*domain.AttendanceEvent, MarkStatus, error)
	ListToday(ctx context.Context, now time.Time) ([]domain.AttendanceEvent, error)
	History(ctx context.Context) ([]domain.AttendanceEvent, error)
	DeleteAll(ctx context.Context) error
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
	mirror  *export.Mirror
	logger  *slog.Logger
}

// NewAttendanceService создаёт новый экземпляр сервиса.
// mirror может быть nil - тогда CSV-зеркало не ведётся.
func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	empRepo repository.EmployeeRepository,
	mirror *export.Mirror,
	logger *slog.Logger,
) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
		mirror:  mirror,
		logger:  logger,
	}
}

func (s *attendanceService) Mark(ctx context.Context, name string, now time.Time) (*domain.AttendanceEvent, MarkStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", domain.ErrEmptyName
	}

	// Отмечать посещаемость могут только зарегистрированные сотрудники
	exists, err := s.empRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", domain.ErrEmployeeNotFound
	}

	// Повторная отметка за тот же день - мягкое условие, не ошибка
	marked, err := s.attRepo.ExistsForDay(ctx, name, now)
	if err != nil {
		return nil, "", err
	}
	if marked {
		return nil, MarkStatusAlreadyMarked, nil
	}

	event := &domain.AttendanceEvent{
		Name: name,
		Date: now.Format(domain.DateLayout),
		Time: now.Format(domain.TimeLayout),
	}

	if err := s.attRepo.Create(ctx, event); err != nil {
		return nil, "", err
	}

	s.syncMirror(ctx)

	return event, MarkStatusMarked, nil
}

// syncMirror перезаписывает CSV-зеркало из авторитетной таблицы.
// Сбой зеркала не откатывает отметку: хранилище остаётся источником истины.
func (s *attendanceService) syncMirror(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	events, err := s.attRepo.List(ctx)
	if err == nil {
		err = s.mirror.Sync(events)
	}
	if err != nil {
		s.logger.Warn("failed to sync attendance mirror",
			slog.String("path", s.mirror.Path()),
			slog.Any("error", err),
		)
	}
}

func (s *attendanceService) ListToday(ctx context.Context, now time.Time) ([]domain.AttendanceEvent, error) {
	return s.attRepo.ListByDate(ctx, now)
}

func (s *attendanceService) History(ctx context.Context) ([]domain.AttendanceEvent, error) {
	return s.attRepo.List(ctx)
}

func (s *attendanceService) DeleteAll(ctx context.Context) error {
	return s.attRepo.DeleteAll(ctx)
}
