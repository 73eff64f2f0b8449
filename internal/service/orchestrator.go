package service

import (
	"context"
	"errors"
	"log"
	"time"

	"interviewflow/internal/cache"
	"interviewflow/internal/metrics"
	"interviewflow/internal/model"
	"interviewflow/internal/registry"
)

var ErrSessionFinalized = errors.New("session already finalized")

// Orchestrator owns the interview session lifecycle: question
// sequencing, per-answer evaluation, telemetry ingestion and report
// synthesis. External capability failures are recovered locally; the
// session always makes forward progress.
type Orchestrator struct {
	registry  *registry.Registry
	questions QuestionSource
	evaluator AnswerEvaluator
	narrator  NarrativeGenerator
	history   cache.HistoryStore
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(reg *registry.Registry, questions QuestionSource, evaluator AnswerEvaluator, narrator NarrativeGenerator) *Orchestrator {
	return &Orchestrator{
		registry:  reg,
		questions: questions,
		evaluator: evaluator,
		narrator:  narrator,
	}
}

// SetHistoryStore sets the store finished interviews are summarized to.
// Optional; without it finalized sessions are simply not listed in the
// history view.
func (o *Orchestrator) SetHistoryStore(store cache.HistoryStore) {
	o.history = store
}

// CreateSession generates the question sequence and registers a new
// session. Creation cannot fail: if the question source errors or
// returns nothing, the deterministic local sequence is used.
func (o *Orchestrator) CreateSession(ctx context.Context, resumeID, jobDescription, role string, numQuestions int) *model.Session {
	questions, err := o.questions.GenerateQuestions(ctx, resumeID, jobDescription, role, numQuestions)
	if err != nil || len(questions) == 0 {
		if err != nil {
			log.Printf("question source failed, using fallback: %v", err)
		}
		metrics.CapabilityFallbacks.WithLabelValues("questions").Inc()
		questions = fallbackQuestions(role, jobDescription, numQuestions)
	}

	session := o.registry.Create(role, questions)
	session.Lock()
	session.Events = append(session.Events, model.NewSessionCreated(role))
	session.Unlock()

	metrics.SessionsStarted.Inc()
	return session
}

// CurrentQuestion returns the next unanswered question of a session.
func (o *Orchestrator) CurrentQuestion(sessionID string) (*model.Question, error) {
	session, err := o.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Finalized || session.Exhausted() {
		return nil, ErrSessionFinalized
	}
	question := session.CurrentQuestion()
	return &question, nil
}

// SubmitAnswer scores one answer against the question at the cursor,
// appends the result to the event log and advances the cursor. The
// final answer finalizes the session and returns the report in place
// of a next question.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, sessionID, answerText string) (*model.SubmitAnswerResult, error) {
	session, err := o.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Finalized {
		return nil, ErrSessionFinalized
	}

	question := session.CurrentQuestion()
	started := time.Now()

	stats := AnalyzeFluency(answerText)

	evaluation, err := o.evaluator.EvaluateAnswer(ctx, question, answerText)
	if err != nil {
		log.Printf("evaluator failed for session %s, using fallback: %v", sessionID, err)
		metrics.CapabilityFallbacks.WithLabelValues("evaluator").Inc()
		evaluation = fallbackEvaluation(question, answerText)
	}

	feedback := model.Feedback{
		TechnicalAccuracy: clamp01(evaluation.TechnicalAccuracy),
		Clarity:           clamp01(evaluation.Clarity),
		Confidence:        clamp01(0.5 + 0.5*stats.Fluency),
		Notes:             append(append([]string{}, evaluation.Notes...), stats.Notes...),
	}

	session.Events = append(session.Events, model.NewAnswerSubmitted(time.Now(), question, answerText, feedback))
	session.Idx++

	metrics.AnswersEvaluated.Inc()
	metrics.EvaluationDuration.Observe(time.Since(started).Seconds())

	if session.Exhausted() {
		report := o.finalize(ctx, session)
		return &model.SubmitAnswerResult{Feedback: feedback, Report: report}, nil
	}

	next := session.CurrentQuestion()
	return &model.SubmitAnswerResult{Feedback: feedback, NextQuestion: &next}, nil
}

// SubmitTelemetry records one out-of-band telemetry sample. It does not
// touch the cursor and is never folded into numeric scoring.
func (o *Orchestrator) SubmitTelemetry(ctx context.Context, sessionID string, payload map[string]interface{}) error {
	session, err := o.registry.Get(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()

	derived := AnalyzeTelemetry(payload)
	session.Events = append(session.Events, model.NewTelemetryReceived(payload, derived))

	metrics.TelemetrySamples.Inc()
	return nil
}

// EndSession finalizes a session early (or re-synthesizes the report of
// an already-finalized one) and returns the report.
func (o *Orchestrator) EndSession(ctx context.Context, sessionID string) (*model.Report, error) {
	session, err := o.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	return o.finalize(ctx, session), nil
}

// finalize synthesizes the report from the event log. Must be called
// with the session lock held. Re-running on an already-finalized
// session re-invokes the narrative generator over the frozen log; only
// the first run marks the session finalized and records history.
func (o *Orchestrator) finalize(ctx context.Context, session *model.Session) *model.Report {
	var feedbacks []model.Feedback
	for _, event := range session.Events {
		if answered, ok := event.(model.AnswerSubmitted); ok {
			feedbacks = append(feedbacks, answered.Feedback)
		}
	}

	mean := func(pick func(model.Feedback) float64) float64 {
		if len(feedbacks) == 0 {
			return 0.0
		}
		sum := 0.0
		for _, fb := range feedbacks {
			sum += pick(fb)
		}
		return sum / float64(len(feedbacks))
	}

	averages := map[string]float64{
		"technical_accuracy": mean(func(fb model.Feedback) float64 { return fb.TechnicalAccuracy }),
		"clarity":            mean(func(fb model.Feedback) float64 { return fb.Clarity }),
		"confidence":         mean(func(fb model.Feedback) float64 { return fb.Confidence }),
	}

	narrative, err := o.narrator.GenerateNarrativeReport(ctx, session.Events)
	if err != nil {
		log.Printf("narrative generator failed for session %s, using fallback: %v", session.ID, err)
		metrics.CapabilityFallbacks.WithLabelValues("narrative").Inc()
		narrative = fallbackNarrative()
	}
	averages["attitude"] = clamp01(narrative.AttitudeScore)

	hiringProbability := clamp01(0.5*averages["technical_accuracy"] + 0.2*averages["clarity"] + 0.3*averages["confidence"])

	events := make([]model.Event, len(session.Events))
	copy(events, session.Events)

	report := &model.Report{
		SessionID:          session.ID,
		NumQuestions:       len(session.Questions),
		HiringProbability:  hiringProbability,
		Averages:           averages,
		Events:             events,
		AreasOfImprovement: narrative.AreasOfImprovement,
		Mistakes:           narrative.Mistakes,
		Tips:               narrative.Tips,
	}

	if !session.Finalized {
		session.Finalized = true
		now := time.Now()
		session.EndedAt = &now
		metrics.SessionsCompleted.Inc()
		o.recordHistory(ctx, session, report, len(feedbacks))
	}

	return report
}

func (o *Orchestrator) recordHistory(ctx context.Context, session *model.Session, report *model.Report, answered int) {
	if o.history == nil {
		return
	}

	record := &model.InterviewRecord{
		SessionID:         session.ID,
		Role:              session.Role,
		StartedAt:         session.CreatedAt,
		EndedAt:           *session.EndedAt,
		NumQuestions:      len(session.Questions),
		Answered:          answered,
		HiringProbability: report.HiringProbability,
		Averages:          report.Averages,
		Completed:         session.Exhausted(),
	}
	if err := o.history.Save(ctx, record); err != nil {
		log.Printf("failed to record interview %s in history: %v", session.ID, err)
	}
}
