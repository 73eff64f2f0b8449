package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "interviewflow_sessions_started_total",
		Help: "Total number of interview sessions created",
	})

	SessionsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "interviewflow_sessions_completed_total",
		Help: "Total number of interview sessions finalized",
	})

	AnswersEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "interviewflow_answers_evaluated_total",
		Help: "Total number of answers accepted and scored",
	})

	TelemetrySamples = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "interviewflow_telemetry_samples_total",
		Help: "Total number of telemetry samples ingested",
	})

	CapabilityFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "interviewflow_capability_fallbacks_total",
		Help: "Total number of external capability calls recovered via fallback",
	}, []string{"capability"})

	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "interviewflow_evaluation_duration_seconds",
		Help: "Duration of answer evaluation including external calls",
	})
)

func init() {
	prometheus.MustRegister(
		SessionsStarted,
		SessionsCompleted,
		AnswersEvaluated,
		TelemetrySamples,
		CapabilityFallbacks,
		EvaluationDuration,
	)
}
