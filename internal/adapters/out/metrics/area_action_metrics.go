package metrics

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type AreaActionMetrics struct {
	cfg                     config.MetricsContext
	BuildInfo               *prometheus.GaugeVec
	ActionDurationHistogram *prometheus.HistogramVec
	PrincipalActionsTotal   *prometheus.CounterVec
}

// Enforce compile-time conformance to the interface
var _ ports.ActionMetrics = (*AreaActionMetrics)(nil)

func NewAreaActionMetrics(programName, programVersion string, cfg config.MetricsContext, reg prometheus.Registerer) (*AreaActionMetrics, error) {
	constLabels := prometheus.Labels{
		"environment":     cfg.Environment,
		"program_name":    programName,
		"program_version": programVersion,
	}

	var actionLabels = []string{string(ports.MALabelAction), string(ports.MALabelResult)}
	var principalActionLabels = []string{string(ports.MALabelAction), string(ports.MALabelPrincipal), string(ports.MALabelResult)}
	pa := promauto.With(reg)
	m := &AreaActionMetrics{
		cfg: cfg,
		BuildInfo: pa.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   cfg.Namespace,
				Name:        "build_info",
				Help:        "Build information for this binary; constant value 1.",
				ConstLabels: constLabels,
			},
			[]string{}, // no dynamic labels
		),

		ActionDurationHistogram: pa.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Name:        "area_action_duration_seconds",
				Help:        "Distribution of area API action durations in seconds.",
				Buckets:     []float64{0.005, 0.010, 0.050, 0.100, 0.500, 1.0, 3.0},
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			actionLabels,
		),

		PrincipalActionsTotal: pa.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Name:        "area_principal_actions_total",
				Help:        "Total number of area API actions partitioned by action, principal and result.",
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			principalActionLabels,
		),
	}

	m.BuildInfo.With(nil).Set(1)
	return m, nil
}

// OnActionDone updates all metrics for a single finished action.
func (m *AreaActionMetrics) OnActionDone(ma ports.MeasuredAction) {
	mal := ma.Labels()
	labels := prometheus.Labels{
		string(ports.MALabelAction): mal[ports.MALabelAction],
		string(ports.MALabelResult): mal[ports.MALabelResult],
	}
	principalLabels := prometheus.Labels{
		string(ports.MALabelAction):    mal[ports.MALabelAction],
		string(ports.MALabelPrincipal): mal[ports.MALabelPrincipal],
		string(ports.MALabelResult):    mal[ports.MALabelResult],
	}
	m.ActionDurationHistogram.With(labels).Observe(ma.Duration())
	m.PrincipalActionsTotal.With(principalLabels).Inc()
}
