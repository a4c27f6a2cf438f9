package http

import (
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
)

type ReviewHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{reviewService: reviewService}
}

func (h *reviewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	query := newQueryFilter(r)
	req := review.ListReviewsRequest{
		EmployeeID:      query.Int64("employee_id"),
		HRWorkerID:      query.Int64("hr_worker_id"),
		PayrollRecordID: query.Int64("payroll_record_id"),
		HasSalaryImpact: query.Bool("hasSalaryImpact"),
	}
	if err := query.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.reviewService.List(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Performance reviews list.", response.NewItems(results))
}

func (h *reviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req review.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created.", map[string]interface{}{"performance_review": result})
}

func (h *reviewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.reviewService.Get(r.Context(), p, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Performance review details.", map[string]interface{}{"performance_review": result})
}

func (h *reviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req review.UpdateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.reviewService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Performance review updated.", map[string]interface{}{"performance_review": result})
}

func (h *reviewHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Performance review deleted.", nil)
}
