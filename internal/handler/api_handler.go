package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/smart-attendance-api/internal/domain"
	"github.com/smart-attendance-api/internal/dto"
	"github.com/smart-attendance-api/internal/export"
	"github.com/smart-attendance-api/internal/service"
)

type APIHandler struct {
	empService       service.EmployeeService
	attService       service.AttendanceService
	whService        service.WorkHourService
	analyticsService service.AnalyticsService
	exporter         *export.Exporter
	validator        *validator.Validate
	logger           *slog.Logger
}

func NewAPIHandler(
	empService service.EmployeeService,
	attService service.AttendanceService,
	whService service.WorkHourService,
	analyticsService service.AnalyticsService,
	exporter *export.Exporter,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		empService:       empService,
		attService:       attService,
		whService:        whService,
		analyticsService: analyticsService,
		exporter:         exporter,
		validator:        validator.New(),
		logger:           logger,
	}
}

func (h *APIHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	records, err := h.attService.ListToday(r.Context(), now)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	count, err := h.empService.Count(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := dto.DashboardResponse{
		Today:         now.Format(domain.DateLayout),
		EmployeeCount: count,
		Records:       h.toAttendanceResponses(records),
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toEmployeeResponse(emp))
}

func (h *APIHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i, emp := range employees {
		resp[i] = h.toEmployeeResponse(&emp)
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	positions := domain.Positions()

	resp := make([]dto.RoleResponse, 0, len(positions))
	for _, p := range positions {
		salary, _ := domain.BaseSalaryFor(p)
		resp = append(resp, dto.RoleResponse{Position: string(p), BaseSalary: salary})
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	now := time.Now()
	event, status, err := h.attService.Mark(r.Context(), req.Name, now)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := dto.MarkAttendanceResponse{
		Status: string(status),
		Name:   req.Name,
		Date:   now.Format(domain.DateLayout),
	}
	httpStatus := http.StatusOK
	if status == service.MarkStatusMarked {
		resp.Name = event.Name
		resp.Time = event.Time
		httpStatus = http.StatusCreated
	}

	h.respondJSON(w, httpStatus, resp)
}

func (h *APIHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	events, err := h.attService.History(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toAttendanceResponses(events))
}

func (h *APIHandler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	if err := h.attService.DeleteAll(r.Context()); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	events, err := h.attService.History(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	path, err := h.exporter.Attendance(events, format)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.ExportResponse{FilePath: path})
}

func (h *APIHandler) RecordWorkHours(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordWorkHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	entry, status, err := h.whService.Record(r.Context(), req.Name, req.Date, req.Hours, time.Now())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httpStatus := http.StatusOK
	if status == service.RecordStatusInserted {
		httpStatus = http.StatusCreated
	}

	h.respondJSON(w, httpStatus, dto.RecordWorkHoursResponse{
		Status: string(status),
		Name:   entry.Name,
		Date:   entry.Date,
		Hours:  entry.Hours,
	})
}

func (h *APIHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.parseReportQuery(r)
	if err != nil {
		h.handleServiceError(w, domain.ErrInvalidMonth)
		return
	}

	rows, err := h.analyticsService.MonthlyReport(r.Context(), year, month)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, rows)
}

func (h *APIHandler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	rows, err := h.analyticsService.MonthlyReport(r.Context(), req.Year, req.Month)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	path, err := h.exporter.Report(rows, req.Year, req.Month, format)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.ExportResponse{FilePath: path})
}

// parseReportQuery извлекает год и месяц из параметров запроса
func (h *APIHandler) parseReportQuery(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}

	return year, month, nil
}

func (h *APIHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Position:   string(emp.Position),
		BaseSalary: emp.BaseSalary,
		CreatedAt:  emp.CreatedAt,
	}
}

func (h *APIHandler) toAttendanceResponses(events []domain.AttendanceEvent) []dto.AttendanceResponse {
	resp := make([]dto.AttendanceResponse, len(events))
	for i, event := range events {
		resp[i] = dto.AttendanceResponse{
			ID:   event.ID,
			Name: event.Name,
			Date: event.Date,
			Time: event.Time,
		}
	}
	return resp
}

func (h *APIHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee is not registered", "")
	case errors.Is(err, domain.ErrDuplicateEmployee):
		h.respondError(w, http.StatusConflict, "employee with this name already exists", "")
	case errors.Is(err, domain.ErrEmptyName):
		h.respondError(w, http.StatusBadRequest, "name cannot be empty", "")
	case errors.Is(err, domain.ErrUnknownPosition):
		h.respondError(w, http.StatusBadRequest, "invalid position selected", "")
	case errors.Is(err, domain.ErrNegativeHours):
		h.respondError(w, http.StatusBadRequest, "hours cannot be negative", "")
	case errors.Is(err, domain.ErrInvalidDate):
		h.respondError(w, http.StatusBadRequest, "invalid date, expected format YYYY-MM-DD", "")
	case errors.Is(err, domain.ErrInvalidMonth):
		h.respondError(w, http.StatusBadRequest, "invalid month, expected year and month 1-12", "")
	case errors.Is(err, domain.ErrUnsupportedFormat):
		h.respondError(w, http.StatusBadRequest, "unsupported export format, use 'csv', 'xlsx' or 'pdf'", "")
	case errors.Is(err, domain.ErrExportFailed):
		h.logger.Error("export failed", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "failed to write export file", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *APIHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *APIHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
