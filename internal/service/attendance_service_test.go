package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/export"
	"github.com/smart-attendance-api/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func registerEmployee(t *testing.T, repo *mockEmployeeRepo, name string) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Employee{
		Name:       name,
		Position:   domain.PositionTinker,
		BaseSalary: 20000,
	})
	if err != nil {
		t.Fatalf("failed to register employee: %v", err)
	}
}

func TestMark_Success(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	registerEmployee(t, empRepo, "Ravi")

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	event, status, err := svc.Mark(context.Background(), "Ravi", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status != service.MarkStatusMarked {
		t.Errorf("expected status marked, got %s", status)
	}
	if event.Date != "2024-03-15" {
		t.Errorf("expected date '2024-03-15', got '%s'", event.Date)
	}
	if event.Time != "09:30:00" {
		t.Errorf("expected time '09:30:00', got '%s'", event.Time)
	}
}

func TestMark_IdempotentSameDay(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	registerEmployee(t, empRepo, "Ravi")

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	t1 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)

	if _, status, err := svc.Mark(context.Background(), "Ravi", t1); err != nil || status != service.MarkStatusMarked {
		t.Fatalf("first mark: status %s, err %v", status, err)
	}

	event, status, err := svc.Mark(context.Background(), "Ravi", t2)
	if err != nil {
		t.Fatalf("second mark returned error: %v", err)
	}
	if status != service.MarkStatusAlreadyMarked {
		t.Errorf("expected status already_marked, got %s", status)
	}
	if event != nil {
		t.Errorf("expected no event for duplicate mark, got %+v", event)
	}

	if len(attRepo.events) != 1 {
		t.Errorf("expected exactly one attendance event, got %d", len(attRepo.events))
	}
}

func TestMark_NextDayCreatesNewEvent(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	registerEmployee(t, empRepo, "Ravi")

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	day1 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	if _, _, err := svc.Mark(context.Background(), "Ravi", day1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, status, err := svc.Mark(context.Background(), "Ravi", day2); err != nil || status != service.MarkStatusMarked {
		t.Fatalf("next day mark: status %s, err %v", status, err)
	}

	if len(attRepo.events) != 2 {
		t.Errorf("expected two attendance events, got %d", len(attRepo.events))
	}
}

func TestMark_UnknownEmployee(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	_, _, err := svc.Mark(context.Background(), "Ghost", time.Now())
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(attRepo.events) != 0 {
		t.Errorf("expected no events persisted, got %d", len(attRepo.events))
	}
}

func TestMark_EmptyName(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	_, _, err := svc.Mark(context.Background(), "  ", time.Now())
	if !errors.Is(err, domain.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestMark_SyncsMirror(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	registerEmployee(t, empRepo, "Ravi")

	mirrorPath := filepath.Join(t.TempDir(), "Attendance.csv")
	mirror := export.NewMirror(mirrorPath)

	svc := service.NewAttendanceService(attRepo, empRepo, mirror, testLogger())

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	if _, _, err := svc.Mark(context.Background(), "Ravi", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(mirrorPath)
	if err != nil {
		t.Fatalf("mirror file not written: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Name") {
		t.Errorf("mirror missing header row: %q", content)
	}
	if !strings.Contains(content, "Ravi") || !strings.Contains(content, "2024-03-15") {
		t.Errorf("mirror missing attendance record: %q", content)
	}
}

func TestDeleteAll_RemovesEverything(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	registerEmployee(t, empRepo, "Ravi")

	svc := service.NewAttendanceService(attRepo, empRepo, nil, testLogger())

	if _, _, err := svc.Mark(context.Background(), "Ravi", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty history after bulk delete, got %d events", len(events))
	}
}
