package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/response"
)

type TeamHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	ViewByID(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
	MyTeam(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService team.TeamService
}

// Add implements TeamHandler.
func (h *TeamHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req team.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.teamService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", created)
}

// View implements TeamHandler.
func (h *TeamHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	teams, err := h.teamService.List(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// ViewByID implements TeamHandler.
func (h *TeamHandlerImpl) ViewByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	t, err := h.teamService.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// Edit implements TeamHandler.
func (h *TeamHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EditTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.teamService.Update(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", updated)
}

// Delete implements TeamHandler.
func (h *TeamHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.teamService.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// DeleteAll implements TeamHandler.
func (h *TeamHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	deleted, err := h.teamService.DeleteAll(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Deleted(w, "All teams deleted successfully", deleted)
}

// MyTeam implements TeamHandler.
func (h *TeamHandlerImpl) MyTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	t, err := h.teamService.MyTeam(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService}
}
