package handler

import (
	"errors"
	"io"
	"net/http"

	"interviewflow/internal/service"
)

const maxResumeSize = 10 << 20 // 10 MiB

// ResumeHandler handles resume endpoints
type ResumeHandler struct {
	resumeSvc *service.ResumeService
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeSvc *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeSvc: resumeSvc}
}

// Upload handles POST /api/resume/upload
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "missing filename")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resume, err := h.resumeSvc.Upload(r.Context(), header.Filename, content)
	if err != nil {
		if errors.Is(err, service.ErrNotPDF) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"resume_id": resume.ID,
		"path":      h.resumeSvc.Path(resume.ID),
	})
}

// List handles GET /api/resume/list
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	resumes, err := h.resumeSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resumes)
}
