package handler

import (
	"encoding/json"
	"net/http"

	"interviewflow/internal/model"
	"interviewflow/internal/service"
)

// TrackerHandler handles application tracker endpoints
type TrackerHandler struct {
	trackerSvc *service.TrackerService
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(trackerSvc *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerSvc: trackerSvc}
}

// Get handles GET /api/tracker
func (h *TrackerHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.trackerSvc.Board(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// Sync handles POST /api/tracker/sync
func (h *TrackerHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var data model.TrackerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.trackerSvc.Update(r.Context(), &data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// AddJob handles POST /api/tracker/job
func (h *TrackerHandler) AddJob(w http.ResponseWriter, r *http.Request) {
	var job model.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := h.trackerSvc.AddJob(r.Context(), job, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, data)
}
