package service

import (
	"context"
	"strings"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/dto"
	"github.com/smart-attendance-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Register(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) Register(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	// Должность приводится к нижнему регистру и проверяется по справочнику
	position := domain.Position(strings.ToLower(strings.TrimSpace(req.Position)))
	baseSalary, ok := domain.BaseSalaryFor(position)
	if !ok {
		return nil, domain.ErrUnknownPosition
	}

	exists, err := s.empRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmployee
	}

	// Оклад фиксируется на момент создания и дальше не пересчитывается
	emp := &domain.Employee{
		Name:       name,
		Position:   position,
		BaseSalary: baseSalary,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) Count(ctx context.Context) (int64, error) {
	return s.empRepo.Count(ctx)
}
