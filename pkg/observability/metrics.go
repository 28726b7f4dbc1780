package observability

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "catena"

// Metrics holds the counters fed by the lifecycle hooks.
type Metrics struct {
	registry *prometheus.Registry

	Sources       *prometheus.CounterVec
	BytesRead     prometheus.Counter
	LinesEmitted  prometheus.Counter
	LinesSqueezed prometheus.Counter
	SourceErrors  prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Sources: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sources_total",
				Help:      "Total number of input sources consumed, by copy mode.",
			},
			[]string{"mode"},
		),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_read_total",
			Help:      "Total number of bytes read from input sources.",
		}),
		LinesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_emitted_total",
			Help:      "Total number of lines written by the line path.",
		}),
		LinesSqueezed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_squeezed_total",
			Help:      "Total number of blank lines dropped by squeezing.",
		}),
		SourceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Total number of sources that failed to open or read.",
		}),
	}
	m.registry.MustRegister(m.Sources, m.BytesRead, m.LinesEmitted, m.LinesSqueezed, m.SourceErrors)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSourceClose: func(e *domain.SourceEvent) {
			mode := "lines"
			if e.FastPath {
				mode = "copy"
			}
			m.Sources.WithLabelValues(mode).Inc()
			m.BytesRead.Add(float64(e.BytesRead))
			m.LinesEmitted.Add(float64(e.LinesEmitted))
			m.LinesSqueezed.Add(float64(e.LinesSqueezed))
		},
		OnSourceError: func(e *domain.SourceEvent) {
			m.SourceErrors.Inc()
			m.BytesRead.Add(float64(e.BytesRead))
		},
	}
}

// Log writes every gathered sample to logger at info level, sorted by name.
func (m *Metrics) Log(logger *slog.Logger) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName(), "value", metric.GetCounter().GetValue()}
			if labels := formatLabels(metric.GetLabel()); labels != "" {
				attrs = append(attrs, "labels", labels)
			}
			logger.Info("stats", attrs...)
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
