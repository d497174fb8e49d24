package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrconsole/hr-console-backend/internal/domain/admin"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/response"
)

type AdminHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	ViewByID(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

// Add implements AdminHandler.
func (h *AdminHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req admin.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.adminService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin created successfully", created)
}

// View implements AdminHandler.
func (h *AdminHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	admins, err := h.adminService.List(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// ViewByID implements AdminHandler.
func (h *AdminHandlerImpl) ViewByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	a, err := h.adminService.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, a)
}

// Edit implements AdminHandler.
func (h *AdminHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req admin.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EditAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.adminService.Update(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin updated successfully", updated)
}

// Delete implements AdminHandler.
func (h *AdminHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.adminService.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}

// DeleteAll implements AdminHandler.
func (h *AdminHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	deleted, err := h.adminService.DeleteAll(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Deleted(w, "All admins deleted successfully", deleted)
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}
