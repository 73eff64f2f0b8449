package model

import "time"

// EventType tags the variants of the session event log
type EventType string

const (
	EventSessionCreated    EventType = "session_created"
	EventAnswerSubmitted   EventType = "answer_submitted"
	EventTelemetryReceived EventType = "telemetry"
)

// Event is one immutable entry of a session's append-only log. The log
// is the canonical history used for report synthesis; entries are never
// edited or removed.
type Event interface {
	EventType() EventType
}

// SessionCreated is the first event of every session.
type SessionCreated struct {
	Type EventType `json:"type"`
	Role string    `json:"role"`
}

func NewSessionCreated(role string) SessionCreated {
	return SessionCreated{Type: EventSessionCreated, Role: role}
}

func (SessionCreated) EventType() EventType { return EventSessionCreated }

// AnswerSubmitted records one answered question with its feedback. The
// question is snapshotted so the log stays self-contained.
type AnswerSubmitted struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Question  Question  `json:"question"`
	Answer    string    `json:"answer"`
	Feedback  Feedback  `json:"feedback"`
}

func NewAnswerSubmitted(ts time.Time, question Question, answer string, feedback Feedback) AnswerSubmitted {
	return AnswerSubmitted{
		Type:      EventAnswerSubmitted,
		Timestamp: ts,
		Question:  question,
		Answer:    answer,
		Feedback:  feedback,
	}
}

func (AnswerSubmitted) EventType() EventType { return EventAnswerSubmitted }

// TelemetryReceived records one out-of-band telemetry sample in both
// raw and derived form. Telemetry never moves the cursor and is not
// folded into numeric scoring.
type TelemetryReceived struct {
	Type      EventType              `json:"type"`
	Telemetry map[string]interface{} `json:"telemetry"`
	Vision    TelemetrySignals       `json:"vision"`
}

func NewTelemetryReceived(raw map[string]interface{}, derived TelemetrySignals) TelemetryReceived {
	return TelemetryReceived{Type: EventTelemetryReceived, Telemetry: raw, Vision: derived}
}

func (TelemetryReceived) EventType() EventType { return EventTelemetryReceived }
