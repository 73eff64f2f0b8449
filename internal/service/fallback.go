package service

import (
	"fmt"
	"math"
	"strings"

	"interviewflow/internal/model"

	"github.com/google/uuid"
)

// Deterministic fallbacks for the three external capabilities. These
// always succeed: a degraded evaluation is preferred to a failed
// session.

// fallbackQuestions produces the local question sequence when the
// question source is unavailable. All but the last question are
// technical; the last is a fixed behavioral prompt.
func fallbackQuestions(role, jobDescription string, count int) []model.Question {
	questions := make([]model.Question, 0, count)
	for i := 0; i < count; i++ {
		kind := model.QuestionKindBehavioral
		prompt := "Tell me about a time you faced a difficult deadline. What did you do?"
		if i < max(1, count-1) {
			kind = model.QuestionKindTechnical
			prompt = fmt.Sprintf("(%s) Question %d: Based on the job description, explain a relevant concept and give an example.", role, i+1)
		}

		context := ""
		if jobDescription != "" {
			context = truncate(jobDescription, 500)
		}

		questions = append(questions, model.Question{
			ID:      uuid.New().String(),
			Kind:    kind,
			Prompt:  prompt,
			Context: context,
		})
	}
	return questions
}

// fallbackEvaluation scores an answer by length when the evaluator is
// unavailable.
func fallbackEvaluation(question model.Question, answerText string) *model.AnswerEvaluation {
	score := 0.5
	if len(strings.TrimSpace(answerText)) >= 40 {
		score = 0.65
	}
	if question.Kind != model.QuestionKindTechnical {
		score = 0.6
	}

	wordCount := len(strings.Fields(answerText))

	return &model.AnswerEvaluation{
		TechnicalAccuracy: score,
		Clarity:           clamp01(0.4 + 0.01*float64(wordCount)),
		Notes:             []string{"Error calling evaluator, using fallback scoring."},
	}
}

// fallbackNarrative is the canned qualitative report used when the
// narrative generator is unavailable.
func fallbackNarrative() *model.NarrativeReport {
	return &model.NarrativeReport{
		AreasOfImprovement: []string{"Practice more"},
		Mistakes:           []string{"Could not analyze"},
		Tips:               []string{"Keep trying"},
		AttitudeScore:      0.8,
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func truncate(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}
