package service

import (
	"context"

	"interviewflow/internal/model"
)

// The orchestrator depends on three external capabilities. Each one is
// individually replaceable and may fail; the orchestrator recovers
// every failure with a deterministic fallback and never surfaces it to
// the caller.

// QuestionSource produces an ordered question sequence for a role.
type QuestionSource interface {
	GenerateQuestions(ctx context.Context, resumeID, jobDescription, role string, count int) ([]model.Question, error)
}

// AnswerEvaluator scores one answer against its question.
type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, question model.Question, answerText string) (*model.AnswerEvaluation, error)
}

// NarrativeGenerator produces the qualitative report sections from the
// full event history.
type NarrativeGenerator interface {
	GenerateNarrativeReport(ctx context.Context, events []model.Event) (*model.NarrativeReport, error)
}
