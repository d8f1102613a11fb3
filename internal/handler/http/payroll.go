package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/payroll"
	"github.com/scon-hq/scon-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetWeekly(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetWeekly implements PayrollHandler.
func (h *PayrollHandlerImpl) GetWeekly(w http.ResponseWriter, r *http.Request) {
	weeklyReq := payroll.WeeklyPayrollRequest{
		StoreID:   chi.URLParam(r, "storeID"),
		WeekStart: r.URL.Query().Get("weekStart"),
	}
	if weeklyReq.WeekStart == "" {
		response.BadRequest(w, "weekStart query parameter is required", nil)
		return
	}

	weeklyResponse, err := h.payrollService.GetWeeklyPayroll(r.Context(), weeklyReq)
	if err != nil {
		slog.Error("Weekly payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, weeklyResponse)
}
