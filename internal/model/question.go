package model

// QuestionKind classifies an interview question
type QuestionKind string

const (
	QuestionKindTechnical  QuestionKind = "technical"
	QuestionKindBehavioral QuestionKind = "behavioral"
)

// Question is a single interview question. Immutable once generated.
type Question struct {
	ID      string       `json:"id"`
	Kind    QuestionKind `json:"kind"`
	Prompt  string       `json:"prompt"`
	Context string       `json:"context,omitempty"` // Truncated job description snippet
}
