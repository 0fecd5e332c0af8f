package pipeline

import "github.com/prometheus/client_golang/prometheus"

type Registry = *prometheus.Registry

func (Module) Registry() Registry {
	return prometheus.NewRegistry()
}

type Metrics struct {
	Runs     *prometheus.CounterVec
	Tokens   prometheus.Counter
	Lines    prometheus.Counter
	Duration *prometheus.HistogramVec
}

const (
	resultOK      = "ok"
	resultFailure = "failure"
)

func (Module) Metrics(
	registry Registry,
) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jehanni",
			Name:      "transpile_runs_total",
			Help:      "Pipeline runs by result.",
		}, []string{"result"}),
		Tokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jehanni",
			Name:      "tokens_total",
			Help:      "Tokens produced by the lexer.",
		}),
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jehanni",
			Name:      "lines_total",
			Help:      "Lines produced by the parser.",
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jehanni",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}, []string{"stage"}),
	}
	registry.MustRegister(
		m.Runs,
		m.Tokens,
		m.Lines,
		m.Duration,
	)
	return m
}
