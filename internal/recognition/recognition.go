package recognition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/service"
)

// Unknown - сигнальная метка: лицо в кадре не распознано,
// отметка посещаемости не выполняется
const Unknown = "Unknown"

// FrameSource - источник кадров (камера или её замена).
// Capture блокируется до получения очередного кадра; io.EOF означает,
// что источник исчерпан.
type FrameSource interface {
	Capture(ctx context.Context) ([]byte, error)
}

// Matcher - внешняя библиотека распознавания лиц. Возвращает имя
// сотрудника или метку Unknown; алгоритм распознавания не важен.
type Matcher interface {
	Match(frame []byte) (string, error)
}

// Recorder - часть сервиса посещаемости, нужная циклу распознавания
type Recorder interface {
	Mark(ctx context.Context, name string, now time.Time) (*domain.AttendanceEvent, service.MarkStatus, error)
}

// Runner - однопоточный блокирующий цикл захвата: кадр, распознавание,
// отметка посещаемости. Владеет источником кадров на всё время работы.
type Runner struct {
	source   FrameSource
	matcher  Matcher
	recorder Recorder
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewRunner создаёт цикл распознавания с заданным интервалом опроса
func NewRunner(source FrameSource, matcher Matcher, recorder Recorder, interval time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		source:   source,
		matcher:  matcher,
		recorder: recorder,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run выполняет цикл до отмены контекста или исчерпания источника кадров.
// Ошибки отдельных кадров логируются, цикл продолжается.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		frame, err := r.source.Capture(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			r.logger.Warn("frame capture failed", slog.Any("error", err))
			continue
		}

		name, err := r.matcher.Match(frame)
		if err != nil {
			r.logger.Warn("face match failed", slog.Any("error", err))
			continue
		}
		if name == Unknown {
			continue
		}

		_, status, err := r.recorder.Mark(ctx, name, r.now())
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			// Лицо известно библиотеке, но сотрудник не зарегистрирован
			r.logger.Warn("recognized face is not a registered employee", slog.String("name", name))
		case err != nil:
			r.logger.Error("failed to mark attendance", slog.String("name", name), slog.Any("error", err))
		case status == service.MarkStatusMarked:
			r.logger.Info("attendance marked", slog.String("name", name))
		}
	}
}
