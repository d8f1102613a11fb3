package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeResponse, err := h.employeeService.Create(r.Context(), storeID, createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employeeResponse)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	employeeID := chi.URLParam(r, "employeeID")

	employeeResponse, err := h.employeeService.Get(r.Context(), storeID, employeeID)
	if err != nil {
		slog.Error("Get employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeResponse)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	employeeResponses, err := h.employeeService.List(r.Context(), storeID)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeResponses)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "employeeID")

	employeeResponse, err := h.employeeService.Update(r.Context(), storeID, updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employeeResponse)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Delete(r.Context(), storeID, employeeID); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
