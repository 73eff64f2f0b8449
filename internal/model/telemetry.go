package model

// TelemetrySignals carries visual/behavioral signals extracted verbatim
// from a client telemetry sample. Missing or wrong-typed fields stay nil.
type TelemetrySignals struct {
	GazeScore    *float64 `json:"gaze_score"`
	PostureScore *float64 `json:"posture_score"`
	Emotion      *string  `json:"emotion"`
}
