package repository

import (
	"context"

	"github.com/smart-attendance-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByName(ctx context.Context, name string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByName(ctx context.Context, name string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *employeeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
