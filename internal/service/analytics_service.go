package service

import (
	"context"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/repository"
)

// Правила начисления: фиксированный штраф за день отсутствия и
// фиксированная надбавка за день с переработкой (> extraHoursThreshold часов)
const (
	deductionPerAbsentDay    = 200.0
	incrementPerExtraHourDay = 200.0
	extraHoursThreshold      = 8.0
)

// AnalyticsService определяет интерфейс месячной аналитики и расчёта зарплат
type AnalyticsService interface {
	MonthlyReport(ctx context.Context, year, month int) ([]domain.MonthlyReportRow, error)
}

type analyticsService struct {
	empRepo repository.EmployeeRepository
	attRepo repository.AttendanceRepository
	whRepo  repository.WorkHourRepository
}

// NewAnalyticsService создаёт новый экземпляр сервиса
func NewAnalyticsService(
	empRepo repository.EmployeeRepository,
	attRepo repository.AttendanceRepository,
	whRepo repository.WorkHourRepository,
) AnalyticsService {
	return &analyticsService{
		empRepo: empRepo,
		attRepo: attRepo,
		whRepo:  whRepo,
	}
}

func (s *analyticsService) MonthlyReport(ctx context.Context, year, month int) ([]domain.MonthlyReportRow, error) {
	// Валидация месяца выполняется до любых обращений к хранилищу
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, domain.ErrInvalidMonth
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	totalDays := lastDay.Day()

	// Порядок строк отчёта - порядок ростера, отсортированного по имени
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.MonthlyReportRow, 0, len(employees))
	for _, emp := range employees {
		attended, err := s.attRepo.CountDistinctDays(ctx, emp.Name, firstDay, lastDay)
		if err != nil {
			return nil, err
		}

		extraDays, err := s.whRepo.CountExtraHourDays(ctx, emp.Name, firstDay, lastDay, extraHoursThreshold)
		if err != nil {
			return nil, err
		}

		// Отрицательные absent_days и final_salary не отсекаются:
		// это прямое следствие правил расчёта
		absent := totalDays - attended
		deduction := float64(absent) * deductionPerAbsentDay
		increment := float64(extraDays) * incrementPerExtraHourDay

		rows = append(rows, domain.MonthlyReportRow{
			Employee:             emp.Name,
			DaysAttended:         attended,
			AbsentDays:           absent,
			ExtraHourDays:        extraDays,
			AttendancePercentage: float64(attended) / float64(totalDays) * 100,
			BaseSalary:           emp.BaseSalary,
			Deduction:            deduction,
			Increment:            increment,
			FinalSalary:          emp.BaseSalary - deduction + increment,
		})
	}

	return rows, nil
}
