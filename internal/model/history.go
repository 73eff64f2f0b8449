package model

import "time"

// InterviewRecord is the summary the history store keeps for a finished
// interview. The full event log is not persisted; only what the history
// and dashboard views need.
type InterviewRecord struct {
	SessionID         string             `json:"sessionId"`
	Role              string             `json:"role"`
	StartedAt         time.Time          `json:"startedAt"`
	EndedAt           time.Time          `json:"endedAt"`
	NumQuestions      int                `json:"numQuestions"`
	Answered          int                `json:"answered"`
	HiringProbability float64            `json:"hiringProbability"`
	Averages          map[string]float64 `json:"averages"`
	Completed         bool               `json:"completed"`
}

// HistoryItem is one row of the interview history view.
type HistoryItem struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
	Score    int    `json:"score"`
	Status   string `json:"status"`
}

// RoundInfo describes one practice round on the dashboard.
type RoundInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RoundLabel     string `json:"round_label"`
	ApplicantsDesc string `json:"applicants_desc"`
	QuestionsDesc  string `json:"questions_desc"`
	Status         string `json:"status"`
	StatusColor    string `json:"status_color"`
}

// SkillMatrixItem is one axis of the dashboard radar chart.
type SkillMatrixItem struct {
	Subject string  `json:"subject"`
	A       float64 `json:"A"`
}

// CriticalAlert is a dashboard callout derived from past performance.
type CriticalAlert struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ActionLabel string `json:"action_label"`
}

// DashboardStats aggregates the dashboard view.
type DashboardStats struct {
	Rounds         []RoundInfo       `json:"rounds"`
	SkillMatrix    []SkillMatrixItem `json:"skill_matrix"`
	CriticalAlerts []CriticalAlert   `json:"critical_alerts"`
	RecentMissions []HistoryItem     `json:"recent_missions"`
}
