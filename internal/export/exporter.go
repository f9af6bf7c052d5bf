package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf"
	"github.com/smart-attendance-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Format - формат файла выгрузки
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat разбирает строковое значение формата
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

// reportRecord - строка месячного отчёта в выгрузке
type reportRecord struct {
	Employee             string `csv:"Employee"`
	DaysAttended         int    `csv:"Days Attended"`
	AbsentDays           int    `csv:"Absent Days"`
	ExtraHourDays        int    `csv:"Extra Hour Days"`
	AttendancePercentage string `csv:"Attendance %"`
	BaseSalary           string `csv:"Base Salary"`
	Deduction            string `csv:"Salary Deduction"`
	Increment            string `csv:"Salary Increment"`
	FinalSalary          string `csv:"Final Salary"`
}

// attendanceRecord - запись журнала посещаемости в выгрузке
type attendanceRecord struct {
	Name string `csv:"Name"`
	Time string `csv:"Time"`
	Date string `csv:"Date"`
}

// Exporter пишет отчёты и журнал посещаемости в каталог выгрузок.
// Чтение хранилища не выполняется: на вход подаются уже готовые данные.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter создаёт экспортёр, пишущий в каталог dir
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Report выгружает месячный отчёт в указанном формате и возвращает
// путь к созданному файлу
func (e *Exporter) Report(rows []domain.MonthlyReportRow, year, month int, format Format) (string, error) {
	period := fmt.Sprintf("%04d-%02d", year, month)
	path, err := e.targetPath(fmt.Sprintf("salary_report_%s", period), format)
	if err != nil {
		return "", err
	}

	records := make([]reportRecord, len(rows))
	for i, row := range rows {
		records[i] = reportRecord{
			Employee:             row.Employee,
			DaysAttended:         row.DaysAttended,
			AbsentDays:           row.AbsentDays,
			ExtraHourDays:        row.ExtraHourDays,
			AttendancePercentage: fmt.Sprintf("%.2f%%", row.AttendancePercentage),
			BaseSalary:           fmt.Sprintf("%.2f", row.BaseSalary),
			Deduction:            fmt.Sprintf("-%.2f", row.Deduction),
			Increment:            fmt.Sprintf("+%.2f", row.Increment),
			FinalSalary:          fmt.Sprintf("%.2f", row.FinalSalary),
		}
	}

	header := []string{
		"Employee", "Days Attended", "Absent Days", "Extra Hour Days",
		"Attendance %", "Base Salary", "Salary Deduction", "Salary Increment", "Final Salary",
	}
	cells := make([][]string, len(records))
	for i, rec := range records {
		cells[i] = []string{
			rec.Employee,
			fmt.Sprintf("%d", rec.DaysAttended),
			fmt.Sprintf("%d", rec.AbsentDays),
			fmt.Sprintf("%d", rec.ExtraHourDays),
			rec.AttendancePercentage,
			rec.BaseSalary,
			rec.Deduction,
			rec.Increment,
			rec.FinalSalary,
		}
	}

	switch format {
	case FormatCSV:
		err = writeCSV(path, &records)
	case FormatXLSX:
		err = writeXLSX(path, "Salary Report", header, cells)
	case FormatPDF:
		err = writePDF(path, fmt.Sprintf("Monthly Salary Report %s", period), header, cells)
	default:
		return "", domain.ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

// Attendance выгружает журнал посещаемости в указанном формате
func (e *Exporter) Attendance(events []domain.AttendanceEvent, format Format) (string, error) {
	path, err := e.targetPath("attendance_export", format)
	if err != nil {
		return "", err
	}

	records := make([]attendanceRecord, len(events))
	cells := make([][]string, len(events))
	for i, event := range events {
		records[i] = attendanceRecord{Name: event.Name, Time: event.Time, Date: event.Date}
		cells[i] = []string{event.Name, event.Time, event.Date}
	}

	header := []string{"Name", "Time", "Date"}

	switch format {
	case FormatCSV:
		err = writeCSV(path, &records)
	case FormatXLSX:
		err = writeXLSX(path, "Attendance", header, cells)
	case FormatPDF:
		err = writePDF(path, "Attendance Records", header, cells)
	default:
		return "", domain.ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

// targetPath создаёт каталог выгрузок при необходимости и возвращает
// путь файла с меткой времени генерации в имени
func (e *Exporter) targetPath(prefix string, format Format) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	name := fmt.Sprintf("%s_%s.%s", prefix, e.now().Format("20060102_150405"), format)
	return filepath.Join(e.dir, name), nil
}

func writeCSV(path string, records any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(records, file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return nil
}

func writeXLSX(path, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
		}
	}

	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return nil
}

func writePDF(path, title string, header []string, rows [][]string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(header))

	// Шапка таблицы визуально выделена заливкой
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for _, h := range header {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for _, v := range row {
			pdf.CellFormat(colWidth, 7, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at %s", time.Now().Format("02 Jan 2006 15:04:05")))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return nil
}
