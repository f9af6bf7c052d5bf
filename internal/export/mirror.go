package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/smart-attendance-api/internal/domain"
)

// Mirror поддерживает плоское CSV-зеркало журнала посещаемости.
// Зеркало перезаписывается целиком из авторитетной таблицы; само
// хранилище при этом остаётся источником истины.
type Mirror struct {
	path string
}

// NewMirror создаёт зеркало по указанному пути
func NewMirror(path string) *Mirror {
	return &Mirror{path: path}
}

// Path возвращает путь к файлу зеркала
func (m *Mirror) Path() string {
	return m.path
}

// Sync перезаписывает файл зеркала текущим содержимым журнала
func (m *Mirror) Sync(events []domain.AttendanceEvent) error {
	records := make([]attendanceRecord, len(events))
	for i, event := range events {
		records[i] = attendanceRecord{Name: event.Name, Time: event.Time, Date: event.Date}
	}

	file, err := os.Create(m.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return nil
}
