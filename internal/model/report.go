package model

// NarrativeReport is the qualitative portion of a report as produced by
// the narrative generator.
type NarrativeReport struct {
	AreasOfImprovement []string `json:"areas_of_improvement"`
	Mistakes           []string `json:"mistakes"`
	Tips               []string `json:"tips"`
	AttitudeScore      float64  `json:"attitude_score"`
}

// Report is the end-of-session synthesis: averaged metrics, hiring
// probability, qualitative guidance and a snapshot of the event log.
type Report struct {
	SessionID          string             `json:"session_id"`
	NumQuestions       int                `json:"num_questions"`
	HiringProbability  float64            `json:"hiring_probability"`
	Averages           map[string]float64 `json:"averages"`
	Events             []Event            `json:"events"`
	AreasOfImprovement []string           `json:"areas_of_improvement"`
	Mistakes           []string           `json:"mistakes"`
	Tips               []string           `json:"tips"`
}
