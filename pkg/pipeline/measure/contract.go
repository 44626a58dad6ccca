package measure

import "time"

// Measure collects metrics for every step of a pipeline run.
type Measure interface {
	AddMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the timing of a single step. Every step of a sequential
// pipeline runs exactly once, so a metric holds one duration.
type Metric interface {
	SetDuration(elapsed time.Duration)
	Duration() time.Duration
}
