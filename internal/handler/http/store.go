package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/handler/http/response"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// Create implements StoreHandler.
func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq store.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	storeResponse, err := h.storeService.Create(r.Context(), &createReq)
	if err != nil {
		slog.Error("Create store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created successfully", storeResponse)
}

// Get implements StoreHandler.
func (h *StoreHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	storeResponse, err := h.storeService.Get(r.Context(), storeID)
	if err != nil {
		slog.Error("Get store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, storeResponse)
}

// List implements StoreHandler.
func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	storeResponses, err := h.storeService.List(r.Context())
	if err != nil {
		slog.Error("List stores service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, storeResponses)
}

// Update implements StoreHandler.
func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq store.UpdateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "storeID")

	storeResponse, err := h.storeService.Update(r.Context(), &updateReq)
	if err != nil {
		slog.Error("Update store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated successfully", storeResponse)
}

// Delete implements StoreHandler.
func (h *StoreHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	if err := h.storeService.Delete(r.Context(), storeID); err != nil {
		slog.Error("Delete store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted successfully", nil)
}
