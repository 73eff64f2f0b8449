package service

import "interviewflow/internal/model"

// AnalyzeTelemetry passes a client telemetry sample through verbatim.
// There is no validation: missing or wrong-typed fields stay nil.
func AnalyzeTelemetry(payload map[string]interface{}) model.TelemetrySignals {
	var signals model.TelemetrySignals

	if v, ok := payload["gaze_score"].(float64); ok {
		signals.GazeScore = &v
	}
	if v, ok := payload["posture_score"].(float64); ok {
		signals.PostureScore = &v
	}
	if v, ok := payload["emotion"].(string); ok {
		signals.Emotion = &v
	}

	return signals
}
