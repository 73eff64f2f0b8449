package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"interviewflow/internal/registry"
	"interviewflow/internal/service"

	"github.com/gorilla/mux"
)

// InterviewHandler handles interview session endpoints
type InterviewHandler struct {
	orchestrator *service.Orchestrator
	history      *service.HistoryService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(orchestrator *service.Orchestrator, history *service.HistoryService) *InterviewHandler {
	return &InterviewHandler{
		orchestrator: orchestrator,
		history:      history,
	}
}

// StartInterviewRequest is the request body for starting an interview
type StartInterviewRequest struct {
	ResumeID       string `json:"resume_id,omitempty"`
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
	NumQuestions   int    `json:"num_questions"`
}

// Start handles POST /api/interview/start
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Role == "" {
		req.Role = "Software Engineer"
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = 5
	}
	if req.NumQuestions < 1 || req.NumQuestions > 20 {
		writeError(w, http.StatusBadRequest, "num_questions must be between 1 and 20")
		return
	}

	session := h.orchestrator.CreateSession(r.Context(), req.ResumeID, req.JobDescription, req.Role, req.NumQuestions)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":       session.ID,
		"current_question": session.Questions[0],
	})
}

// AnswerRequest is the request body for submitting an answer
type AnswerRequest struct {
	AnswerText string `json:"answer_text"`
}

// Answer handles POST /api/interview/{sessionId}/answer
func (h *InterviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.orchestrator.SubmitAnswer(r.Context(), sessionID, req.AnswerText)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Telemetry handles POST /api/interview/{sessionId}/telemetry
func (h *InterviewHandler) Telemetry(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orchestrator.SubmitTelemetry(r.Context(), sessionID, payload); err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// End handles POST /api/interview/{sessionId}/end
func (h *InterviewHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	report, err := h.orchestrator.EndSession(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// History handles GET /api/interview/history
func (h *InterviewHandler) History(w http.ResponseWriter, r *http.Request) {
	items, err := h.history.RecentInterviews(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// DashboardStats handles GET /api/dashboard/stats
func (h *InterviewHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.history.DashboardStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionFinalized):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
