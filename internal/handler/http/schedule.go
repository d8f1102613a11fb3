package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	SaveWeek(w http.ResponseWriter, r *http.Request)
	AutoFill(w http.ResponseWriter, r *http.Request)
	CopyPattern(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	SetShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetMonth implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	yearMonth := r.URL.Query().Get("yearMonth")
	if yearMonth == "" {
		response.BadRequest(w, "yearMonth query parameter is required", nil)
		return
	}

	monthResponse, err := h.scheduleService.GetMonth(r.Context(), storeID, yearMonth)
	if err != nil {
		slog.Error("Get month schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthResponse)
}

// SaveWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SaveWeek(w http.ResponseWriter, r *http.Request) {
	var saveReq schedule.SaveWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save week decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	saveReq.StoreID = chi.URLParam(r, "storeID")

	monthResponse, err := h.scheduleService.SaveWeek(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save week service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved successfully", monthResponse)
}

// AutoFill implements ScheduleHandler.
func (h *ScheduleHandlerImpl) AutoFill(w http.ResponseWriter, r *http.Request) {
	var fillReq schedule.AutoFillRequest
	if err := json.NewDecoder(r.Body).Decode(&fillReq); err != nil {
		slog.Error("Auto-fill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fillReq.StoreID = chi.URLParam(r, "storeID")

	monthResponse, err := h.scheduleService.AutoFill(r.Context(), fillReq)
	if err != nil {
		slog.Error("Auto-fill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule auto-filled successfully", monthResponse)
}

// CopyPattern implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CopyPattern(w http.ResponseWriter, r *http.Request) {
	var copyReq schedule.CopyPatternRequest
	if err := json.NewDecoder(r.Body).Decode(&copyReq); err != nil {
		slog.Error("Copy pattern decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	copyReq.StoreID = chi.URLParam(r, "storeID")

	monthResponse, err := h.scheduleService.CopyPattern(r.Context(), copyReq)
	if err != nil {
		slog.Error("Copy pattern service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week pattern copied successfully", monthResponse)
}

// Send implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var sendReq schedule.SendScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&sendReq); err != nil {
		slog.Error("Send schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	sendReq.StoreID = chi.URLParam(r, "storeID")

	monthResponse, err := h.scheduleService.Send(r.Context(), sendReq)
	if err != nil {
		slog.Error("Send schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule sent successfully", monthResponse)
}

// SetShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetShift(w http.ResponseWriter, r *http.Request) {
	var setReq schedule.SetShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		slog.Error("Set shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	setReq.StoreID = chi.URLParam(r, "storeID")

	monthResponse, err := h.scheduleService.SetShift(r.Context(), setReq)
	if err != nil {
		slog.Error("Set shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift saved successfully", monthResponse)
}

// DeleteShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	deleteReq := schedule.DeleteShiftRequest{
		StoreID:    chi.URLParam(r, "storeID"),
		EmployeeID: chi.URLParam(r, "employeeID"),
		Date:       chi.URLParam(r, "date"),
	}

	monthResponse, err := h.scheduleService.DeleteShift(r.Context(), deleteReq)
	if err != nil {
		slog.Error("Delete shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift removed successfully", monthResponse)
}
