package http

import (
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	CreatePayrollRecord(w http.ResponseWriter, r *http.Request)
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	UpdatePayrollRecord(w http.ResponseWriter, r *http.Request)
	DeletePayrollRecord(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	query := newQueryFilter(r)
	req := payroll.ListPayrollRecordsRequest{
		EmployeeID:  query.Int64("employee_id"),
		PeriodYear:  query.Int("period_year"),
		PeriodMonth: query.Int("period_month"),
	}
	if status := query.String("status"); status != nil {
		s := payroll.Status(*status)
		req.Status = &s
	}
	if err := query.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.List(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll records list.", response.NewItems(result))
}

func (h *payrollHandlerImpl) CreatePayrollRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created.", map[string]interface{}{"payroll_record": result})
}

func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.Get(r.Context(), p, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll record details.", map[string]interface{}{"payroll_record": result})
}

func (h *payrollHandlerImpl) UpdatePayrollRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req payroll.UpdatePayrollRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.payrollService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll record updated.", map[string]interface{}{"payroll_record": result})
}

func (h *payrollHandlerImpl) DeletePayrollRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll record deleted.", nil)
}
