package service

import (
	"strings"
	"testing"

	"interviewflow/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions_KindSplit(t *testing.T) {
	questions := fallbackQuestions("Backend Engineer", "", 5)
	require.Len(t, questions, 5)

	for i := 0; i < 4; i++ {
		assert.Equal(t, model.QuestionKindTechnical, questions[i].Kind, "question %d", i)
	}
	assert.Equal(t, model.QuestionKindBehavioral, questions[4].Kind)
	assert.Equal(t, "Tell me about a time you faced a difficult deadline. What did you do?", questions[4].Prompt)
}

func TestFallbackQuestions_SingleQuestionIsTechnical(t *testing.T) {
	questions := fallbackQuestions("SRE", "", 1)
	require.Len(t, questions, 1)
	assert.Equal(t, model.QuestionKindTechnical, questions[0].Kind)
}

func TestFallbackQuestions_ContextTruncated(t *testing.T) {
	jd := strings.Repeat("x", 600)
	questions := fallbackQuestions("SRE", jd, 2)

	for _, q := range questions {
		assert.Equal(t, strings.Repeat("x", 500)+"...", q.Context)
	}
}

func TestFallbackQuestions_UniqueIDs(t *testing.T) {
	questions := fallbackQuestions("SRE", "", 3)
	seen := map[string]bool{}
	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestFallbackEvaluation_ShortTechnicalAnswer(t *testing.T) {
	q := model.Question{Kind: model.QuestionKindTechnical}
	eval := fallbackEvaluation(q, "short answer")

	assert.Equal(t, 0.5, eval.TechnicalAccuracy)
	assert.Equal(t, []string{"Error calling evaluator, using fallback scoring."}, eval.Notes)
}

func TestFallbackEvaluation_LongTechnicalAnswer(t *testing.T) {
	q := model.Question{Kind: model.QuestionKindTechnical}
	eval := fallbackEvaluation(q, strings.Repeat("a", 40))

	assert.Equal(t, 0.65, eval.TechnicalAccuracy)
}

func TestFallbackEvaluation_WhitespacePadding(t *testing.T) {
	q := model.Question{Kind: model.QuestionKindTechnical}
	eval := fallbackEvaluation(q, "   "+strings.Repeat("a", 39)+"   ")

	assert.Equal(t, 0.5, eval.TechnicalAccuracy)
}

func TestFallbackEvaluation_BehavioralOverride(t *testing.T) {
	q := model.Question{Kind: model.QuestionKindBehavioral}
	eval := fallbackEvaluation(q, strings.Repeat("a", 100))

	assert.Equal(t, 0.6, eval.TechnicalAccuracy)
}

func TestFallbackEvaluation_ClarityFromWordCount(t *testing.T) {
	q := model.Question{Kind: model.QuestionKindTechnical}

	eval := fallbackEvaluation(q, "one two three four five")
	assert.InDelta(t, 0.45, eval.Clarity, 1e-9)

	eval = fallbackEvaluation(q, strings.Repeat("word ", 80))
	assert.Equal(t, 1.0, eval.Clarity)
}

func TestFallbackNarrative(t *testing.T) {
	n := fallbackNarrative()

	assert.Equal(t, []string{"Practice more"}, n.AreasOfImprovement)
	assert.Equal(t, []string{"Could not analyze"}, n.Mistakes)
	assert.Equal(t, []string{"Keep trying"}, n.Tips)
	assert.Equal(t, 0.8, n.AttitudeScore)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.3, clamp01(0.3))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc...", truncate("abc", 10))
	assert.Equal(t, "ab...", truncate("abcd", 2))
}
