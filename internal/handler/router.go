package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/smart-attendance-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	apiHandler *APIHandler
}

// NewRouter создаёт новый роутер
func NewRouter(apiHandler *APIHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:        http.NewServeMux(),
		logger:     logger,
		apiHandler: apiHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/attendance/", r.attendanceRouter)
	r.mux.HandleFunc("/work-hours/", r.workHoursRouter)
	r.mux.HandleFunc("/reports/", r.reportsRouter)

	r.mux.HandleFunc("/roles", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.apiHandler.ListRoles(w, req)
	})

	r.mux.HandleFunc("/dashboard", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.apiHandler.Dashboard(w, req)
	})

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	if path != "" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	switch req.Method {
	case http.MethodPost:
		r.apiHandler.CreateEmployee(w, req)
	case http.MethodGet:
		r.apiHandler.ListEmployees(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

// attendanceRouter обрабатывает все запросы к /attendance/
func (r *Router) attendanceRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/attendance")
	path = strings.Trim(path, "/")

	switch path {
	case "":
		switch req.Method {
		case http.MethodPost:
			r.apiHandler.MarkAttendance(w, req)
		case http.MethodGet:
			r.apiHandler.ListAttendance(w, req)
		case http.MethodDelete:
			// Удаление только массовое, поштучного нет
			r.apiHandler.DeleteAttendance(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case "export":
		if req.Method == http.MethodPost {
			r.apiHandler.ExportAttendance(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// workHoursRouter обрабатывает все запросы к /work-hours/
func (r *Router) workHoursRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/work-hours")
	path = strings.Trim(path, "/")

	if path != "" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	if req.Method == http.MethodPost {
		r.apiHandler.RecordWorkHours(w, req)
		return
	}
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

// reportsRouter обрабатывает все запросы к /reports/
func (r *Router) reportsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/reports")
	path = strings.Trim(path, "/")

	switch path {
	case "monthly":
		if req.Method == http.MethodGet {
			r.apiHandler.MonthlyReport(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	case "monthly/export":
		if req.Method == http.MethodPost {
			r.apiHandler.ExportMonthlyReport(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}
