package model

// Feedback is the per-answer scoring triple plus qualitative notes.
// All numeric fields are clamped to [0,1]. Produced fresh per answer,
// never mutated after creation.
type Feedback struct {
	TechnicalAccuracy float64  `json:"technical_accuracy"`
	Clarity           float64  `json:"clarity"`
	Confidence        float64  `json:"confidence"`
	Notes             []string `json:"notes"`
}

// AnswerEvaluation is the answer evaluator's verdict for one answer.
// Confidence is derived separately from fluency, so it is not part of
// the evaluator contract.
type AnswerEvaluation struct {
	TechnicalAccuracy float64  `json:"technical_accuracy"`
	Clarity           float64  `json:"clarity"`
	Notes             []string `json:"notes"`
}

// SubmitAnswerResult is returned for every accepted answer. NextQuestion
// and Report are mutually exclusive: the final answer of a session
// carries the report instead of a next question.
type SubmitAnswerResult struct {
	Feedback     Feedback  `json:"feedback"`
	NextQuestion *Question `json:"next_question"`
	Report       *Report   `json:"report"`
}
