package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/export"
	"github.com/xuri/excelize/v2"
)

func sampleReport() []domain.MonthlyReportRow {
	return []domain.MonthlyReportRow{
		{
			Employee:             "Ravi",
			DaysAttended:         28,
			AbsentDays:           3,
			ExtraHourDays:        2,
			AttendancePercentage: 90.32,
			BaseSalary:           20000,
			Deduction:            600,
			Increment:            400,
			FinalSalary:          19800,
		},
	}
}

func sampleEvents() []domain.AttendanceEvent {
	return []domain.AttendanceEvent{
		{ID: 1, Name: "Ravi", Date: "2024-01-15", Time: "09:00:00"},
		{ID: 2, Name: "Priya", Date: "2024-01-15", Time: "09:05:00"},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "xlsx", "pdf"} {
		if _, err := export.ParseFormat(s); err != nil {
			t.Errorf("format %q: unexpected error: %v", s, err)
		}
	}

	_, err := export.ParseFormat("docx")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReportCSV(t *testing.T) {
	dir := t.TempDir()
	exporter := export.NewExporter(dir)

	path, err := exporter.Report(sampleReport(), 2024, 1, export.FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected file under %s, got %s", dir, path)
	}
	if !strings.Contains(filepath.Base(path), "salary_report_2024-01") {
		t.Errorf("expected period in filename, got %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Employee") {
		t.Errorf("missing header row: %q", content)
	}
	if !strings.Contains(content, "Ravi") {
		t.Errorf("missing employee row: %q", content)
	}
	if !strings.Contains(content, "19800.00") {
		t.Errorf("missing final salary: %q", content)
	}
	if !strings.Contains(content, "90.32%") {
		t.Errorf("expected percentage with two decimals: %q", content)
	}
}

func TestReportXLSX(t *testing.T) {
	exporter := export.NewExporter(t.TempDir())

	path, err := exporter.Report(sampleReport(), 2024, 1, export.FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open xlsx: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Salary Report", "A1")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if got != "Employee" {
		t.Errorf("expected header cell 'Employee', got %q", got)
	}

	got, err = f.GetCellValue("Salary Report", "A2")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if got != "Ravi" {
		t.Errorf("expected first row 'Ravi', got %q", got)
	}
}

func TestReportPDF(t *testing.T) {
	exporter := export.NewExporter(t.TempDir())

	path, err := exporter.Report(sampleReport(), 2024, 1, export.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("pdf export is empty")
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("expected PDF magic header, got %q", string(data[:8]))
	}
}

func TestAttendanceExportAllFormats(t *testing.T) {
	exporter := export.NewExporter(t.TempDir())

	for _, format := range []export.Format{export.FormatCSV, export.FormatXLSX, export.FormatPDF} {
		path, err := exporter.Attendance(sampleEvents(), format)
		if err != nil {
			t.Fatalf("format %s: unexpected error: %v", format, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("format %s: export not written: %v", format, err)
		}
		if info.Size() == 0 {
			t.Errorf("format %s: export is empty", format)
		}
		if !strings.HasSuffix(path, "."+string(format)) {
			t.Errorf("format %s: unexpected extension in %s", format, path)
		}
	}
}

func TestAttendanceExportEmptyTable(t *testing.T) {
	exporter := export.NewExporter(t.TempDir())

	path, err := exporter.Attendance(nil, export.FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "Name") {
		t.Errorf("expected header-only csv, got %q", string(data))
	}
}

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	exporter := export.NewExporter(dir)

	if _, err := exporter.Attendance(sampleEvents(), export.FormatCSV); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("exports directory was not created: %v", err)
	}
}

func TestExportUnwritableDestination(t *testing.T) {
	// Путь каталога выгрузок указывает на обычный файл
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	exporter := export.NewExporter(blocker)

	_, err := exporter.Attendance(sampleEvents(), export.FormatCSV)
	if !errors.Is(err, domain.ErrExportFailed) {
		t.Errorf("expected ErrExportFailed, got %v", err)
	}
}

func TestMirrorSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Attendance.csv")
	mirror := export.NewMirror(path)

	if err := mirror.Sync(sampleEvents()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("mirror not written: %v", err)
	}

	content := string(data)
	for _, want := range []string{"Name", "Time", "Date", "Ravi", "Priya"} {
		if !strings.Contains(content, want) {
			t.Errorf("mirror missing %q: %q", want, content)
		}
	}

	// Повторная синхронизация перезаписывает файл целиком
	if err := mirror.Sync(sampleEvents()[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "Priya") {
		t.Errorf("expected mirror rewrite to drop stale rows: %q", string(data))
	}
}
