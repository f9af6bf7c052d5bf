package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/smart-attendance-api/internal/domain"
)

type mockEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int64
	listCalls int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	m.nextID++
	m.employees[emp.Name] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByName(ctx context.Context, name string) (*domain.Employee, error) {
	if emp, ok := m.employees[name]; ok {
		return emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	m.listCalls++
	result := make([]domain.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, *emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

func (m *mockEmployeeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, ok := m.employees[name]
	return ok, nil
}

type mockAttendanceRepo struct {
	events []domain.AttendanceEvent
	nextID int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{nextID: 1}
}

func (m *mockAttendanceRepo) Create(ctx context.Context, event *domain.AttendanceEvent) error {
	event.ID = m.nextID
	m.nextID++
	m.events = append(m.events, *event)
	return nil
}

func (m *mockAttendanceRepo) ExistsForDay(ctx context.Context, name string, day time.Time) (bool, error) {
	date := day.Format(domain.DateLayout)
	for _, event := range m.events {
		if event.Name == name && event.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepo) ListByDate(ctx context.Context, day time.Time) ([]domain.AttendanceEvent, error) {
	date := day.Format(domain.DateLayout)
	var result []domain.AttendanceEvent
	for _, event := range m.events {
		if event.Date == date {
			result = append(result, event)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Time < result[j].Time })
	return result, nil
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]domain.AttendanceEvent, error) {
	result := make([]domain.AttendanceEvent, len(m.events))
	copy(result, m.events)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].Time > result[j].Time
	})
	return result, nil
}

func (m *mockAttendanceRepo) CountDistinctDays(ctx context.Context, name string, from, to time.Time) (int, error) {
	fromDate := from.Format(domain.DateLayout)
	toDate := to.Format(domain.DateLayout)
	seen := make(map[string]bool)
	for _, event := range m.events {
		if event.Name == name && event.Date >= fromDate && event.Date <= toDate {
			seen[event.Date] = true
		}
	}
	return len(seen), nil
}

func (m *mockAttendanceRepo) DeleteAll(ctx context.Context) error {
	m.events = nil
	return nil
}

type mockWorkHourRepo struct {
	entries []domain.WorkHourEntry
	nextID  int64
}

func newMockWorkHourRepo() *mockWorkHourRepo {
	return &mockWorkHourRepo{nextID: 1}
}

func (m *mockWorkHourRepo) Upsert(ctx context.Context, entry *domain.WorkHourEntry) (bool, error) {
	for i := range m.entries {
		if m.entries[i].Name == entry.Name && m.entries[i].Date == entry.Date {
			m.entries[i].Hours = entry.Hours
			entry.ID = m.entries[i].ID
			return false, nil
		}
	}
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *entry)
	return true, nil
}

func (m *mockWorkHourRepo) CountExtraHourDays(ctx context.Context, name string, from, to time.Time, threshold float64) (int, error) {
	fromDate := from.Format(domain.DateLayout)
	toDate := to.Format(domain.DateLayout)
	seen := make(map[string]bool)
	for _, entry := range m.entries {
		if entry.Name == name && entry.Date >= fromDate && entry.Date <= toDate && entry.Hours > threshold {
			seen[entry.Date] = true
		}
	}
	return len(seen), nil
}

func (m *mockWorkHourRepo) ListByName(ctx context.Context, name string) ([]domain.WorkHourEntry, error) {
	var result []domain.WorkHourEntry
	for _, entry := range m.entries {
		if entry.Name == name {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}
