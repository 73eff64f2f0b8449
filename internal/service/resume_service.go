package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"interviewflow/internal/model"
	"interviewflow/internal/repository"

	"github.com/google/uuid"
)

var ErrNotPDF = errors.New("only PDF resumes are supported")

// ResumeService stores uploaded resumes: PDF bytes on disk under the
// data directory, metadata in MongoDB.
type ResumeService struct {
	repo    repository.ResumeRepo
	dataDir string
}

// NewResumeService creates a new resume service
func NewResumeService(repo repository.ResumeRepo, dataDir string) *ResumeService {
	return &ResumeService{
		repo:    repo,
		dataDir: dataDir,
	}
}

// Upload validates and stores one resume. The first resume ever
// uploaded becomes the default.
func (s *ResumeService) Upload(ctx context.Context, filename string, content []byte) (*model.Resume, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return nil, ErrNotPDF
	}

	id := uuid.New().String()

	dir := filepath.Join(s.dataDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.Path(id), content, 0o644); err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resume := &model.Resume{
		ID:        id,
		Name:      filename,
		Date:      time.Now().Format("2006-01-02"),
		IsDefault: count == 0,
	}
	if err := s.repo.Insert(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// List returns all stored resume metadata.
func (s *ResumeService) List(ctx context.Context) ([]model.Resume, error) {
	return s.repo.List(ctx)
}

// Path returns where the PDF for a resume id lives on disk.
func (s *ResumeService) Path(id string) string {
	return filepath.Join(s.dataDir, "uploads", id+".pdf")
}
