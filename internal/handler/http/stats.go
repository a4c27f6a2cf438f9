package http

import (
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/stats"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	// GetDepartmentStats handles GET /stats/departments
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)
	// GetPositionStats handles GET /stats/positions
	GetPositionStats(w http.ResponseWriter, r *http.Request)
	// GetUserStats handles GET /stats/users
	GetUserStats(w http.ResponseWriter, r *http.Request)
	// GetPayrollStats handles GET /stats/payroll?year=YYYY
	GetPayrollStats(w http.ResponseWriter, r *http.Request)
	// GetReviewStats handles GET /stats/performance-reviews
	GetReviewStats(w http.ResponseWriter, r *http.Request)
	// GetOverview handles GET /metrics/overview?year=YYYY
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

func (h *statsHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetDepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Departments stats.", result)
}

func (h *statsHandlerImpl) GetPositionStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetPositionStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Positions stats.", result)
}

func (h *statsHandlerImpl) GetUserStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetUserStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Users stats.", result)
}

func (h *statsHandlerImpl) GetPayrollStats(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year") // default: current year

	result, err := h.statsService.GetPayrollStats(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll stats.", result)
}

func (h *statsHandlerImpl) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetReviewStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Performance reviews stats.", result)
}

func (h *statsHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year") // default: current year

	result, err := h.statsService.GetOverview(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "App overview metrics.", result)
}
