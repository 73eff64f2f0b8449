package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"interviewflow/internal/config"
	"interviewflow/internal/model"

	"github.com/google/uuid"
)

// ErrAINotConfigured is returned when no API key is set. Callers treat
// it like any other capability failure.
var ErrAINotConfigured = errors.New("groq api key not configured")

// GroqClient talks to the Groq OpenAI-compatible chat API. It
// implements QuestionSource, AnswerEvaluator and NarrativeGenerator.
// It never falls back itself: any transport or parse problem is
// returned as an error and recovered by the orchestrator.
type GroqClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewGroqClient creates a new Groq client. The HTTP client timeout
// bounds every external call.
func NewGroqClient(cfg *config.AIConfig) *GroqClient {
	return &GroqClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateQuestions asks the model for count interview questions.
func (c *GroqClient) GenerateQuestions(ctx context.Context, resumeID, jobDescription, role string, count int) ([]model.Question, error) {
	prompt := buildQuestionPrompt(jobDescription, role, count)
	response, err := c.call(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	var result struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("parsing question list: %w", err)
	}

	questions := make([]model.Question, 0, len(result.Questions))
	for i, text := range result.Questions {
		// Simple kind heuristic: first half technical, rest behavioral
		kind := model.QuestionKindBehavioral
		if strings.Contains(strings.ToLower(text), "technical") || i < count/2 {
			kind = model.QuestionKindTechnical
		}
		questions = append(questions, model.Question{
			ID:      uuid.New().String(),
			Kind:    kind,
			Prompt:  text,
			Context: truncate(jobDescription, 200),
		})
	}
	return questions, nil
}

// EvaluateAnswer scores one answer for technical accuracy and clarity.
func (c *GroqClient) EvaluateAnswer(ctx context.Context, question model.Question, answerText string) (*model.AnswerEvaluation, error) {
	prompt := buildEvaluationPrompt(question, answerText)
	response, err := c.call(ctx, prompt, 0.3)
	if err != nil {
		return nil, err
	}

	var evaluation model.AnswerEvaluation
	if err := json.Unmarshal([]byte(response), &evaluation); err != nil {
		return nil, fmt.Errorf("parsing evaluation: %w", err)
	}
	return &evaluation, nil
}

// GenerateNarrativeReport produces the qualitative report sections from
// the session history.
func (c *GroqClient) GenerateNarrativeReport(ctx context.Context, events []model.Event) (*model.NarrativeReport, error) {
	history, err := json.Marshal(events)
	if err != nil {
		return nil, err
	}

	prompt := buildReportPrompt(string(history))
	response, err := c.call(ctx, prompt, 0.3)
	if err != nil {
		return nil, err
	}

	var report model.NarrativeReport
	if err := json.Unmarshal([]byte(response), &report); err != nil {
		return nil, fmt.Errorf("parsing narrative report: %w", err)
	}
	return &report, nil
}

// call makes a chat-completions request and returns the raw content of
// the first choice.
func (c *GroqClient) call(ctx context.Context, prompt string, temperature float64) (string, error) {
	if !c.config.IsEnabled() {
		return "", ErrAINotConfigured
	}

	reqBody := chatRequest{
		Model:          c.config.Model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// Prompt builders
func buildQuestionPrompt(jobDescription, role string, count int) string {
	return fmt.Sprintf(`You are an expert technical recruiter. Generate %d interview questions for a %s position.

Job Description:
%s

The questions should be a mix of technical and behavioral.

Return ONLY valid JSON matching this schema:
{
  "questions": ["question 1", "question 2"]
}`, count, role, truncate(jobDescription, 2000))
}

func buildEvaluationPrompt(question model.Question, answerText string) string {
	context := question.Context
	if context == "" {
		context = "N/A"
	}

	return fmt.Sprintf(`You are an expert technical interviewer. Evaluate the candidate's answer to the following question.

Question (%s): %s
Context: %s

Candidate Answer: %s

Return ONLY valid JSON with the following keys:
- technical_accuracy: float (0.0 to 1.0)
- clarity: float (0.0 to 1.0)
- notes: list[str] (constructive feedback)`,
		question.Kind, question.Prompt, context, answerText)
}

func buildReportPrompt(history string) string {
	return fmt.Sprintf(`You are an expert interview coach. Review the following interview session history and generate a comprehensive performance report.

Session History:
%s

Return ONLY valid JSON with the following keys:
- areas_of_improvement: list[str] (3-5 key areas to work on)
- mistakes: list[str] (Specific verbal or non-verbal mistakes noticed, e.g. "Used filler words", "Missed edge cases")
- tips: list[str] (Actionable advice for next time)
- attitude_score: float (0.0 to 1.0, based on tone and professionalism)`, history)
}
