package model

import (
	"sync"
	"time"
)

// Session is one interview instance: a fixed question sequence, a
// cursor and an append-only event log. Sessions are owned by the
// registry and mutated only by the orchestrator while holding the
// session lock. 0 <= Idx <= len(Questions) at all times; Idx advances
// by exactly one per accepted answer.
type Session struct {
	sync.Mutex

	ID        string
	Role      string
	Questions []Question
	Idx       int
	Events    []Event
	Finalized bool
	CreatedAt time.Time
	EndedAt   *time.Time
}

// CurrentQuestion returns the question at the cursor. Only valid while
// Idx < len(Questions).
func (s *Session) CurrentQuestion() Question {
	return s.Questions[s.Idx]
}

// Exhausted reports whether every question has been answered.
func (s *Session) Exhausted() bool {
	return s.Idx >= len(s.Questions)
}
