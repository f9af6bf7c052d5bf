package repository

import (
	"context"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"gorm.io/gorm"
)

// WorkHourRepository определяет интерфейс для работы с отработанными часами
type WorkHourRepository interface {
	// Upsert вставляет запись или перезаписывает часы существующей записи
	// за тот же день. Возвращает true, если запись была создана.
	Upsert(ctx context.Context, entry *domain.WorkHourEntry) (bool, error)
	CountExtraHourDays(ctx context.Context, name string, from, to time.Time, threshold float64) (int, error)
	ListByName(ctx context.Context, name string) ([]domain.WorkHourEntry, error)
}

type workHourRepository struct {
	db *gorm.DB
}

// NewWorkHourRepository создаёт новый экземпляр репозитория
func NewWorkHourRepository(db *gorm.DB) WorkHourRepository {
	return &workHourRepository{db: db}
}

func (r *workHourRepository) Upsert(ctx context.Context, entry *domain.WorkHourEntry) (bool, error) {
	created := false

	// Поиск и запись выполняются в одной транзакции, чтобы не было
	// видимых частичных изменений
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.WorkHourEntry
		err := tx.Where("name = ? AND date = ?", entry.Name, entry.Date).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			created = true
			return tx.Create(entry).Error
		}
		if err != nil {
			return err
		}

		entry.ID = existing.ID
		return tx.Model(&existing).Update("hours", entry.Hours).Error
	})

	return created, err
}

func (r *workHourRepository) CountExtraHourDays(ctx context.Context, name string, from, to time.Time, threshold float64) (int, error) {
	var count int

	query := `SELECT COUNT(DISTINCT date) FROM work_hours WHERE name = ? AND date BETWEEN ? AND ? AND hours > ?`

	err := r.db.WithContext(ctx).
		Raw(query, name, from.Format(domain.DateLayout), to.Format(domain.DateLayout), threshold).
		Scan(&count).Error
	return count, err
}

func (r *workHourRepository) ListByName(ctx context.Context, name string) ([]domain.WorkHourEntry, error) {
	var entries []domain.WorkHourEntry
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
