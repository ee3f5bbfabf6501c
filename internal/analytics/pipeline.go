package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"clientpulse/internal/dataload"
)

// Pipeline runs normalization and the six analyzers as one batch
// transformation over an in-memory snapshot. The analyzers read only
// the immutable snapshot and write disjoint report fields, so they run
// concurrently with no coordination.
type Pipeline struct {
	logger     *slog.Logger
	normalizer *Normalizer

	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPipeline creates a pipeline. A nil registerer skips metric
// registration, which keeps tests free of global registry state.
func NewPipeline(logger *slog.Logger, reg prometheus.Registerer) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pipeline{
		logger:     logger.With(slog.String("component", "pipeline")),
		normalizer: NewNormalizer(logger),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clientpulse_pipeline_runs_total",
			Help: "Pipeline runs by outcome.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "clientpulse_pipeline_duration_seconds",
			Help:    "Wall time of a full pipeline run.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(p.runs, p.duration)
	}

	return p
}

// Run normalizes the raw datasets and computes every derived table.
// On a fatal normalization error no partial report is produced.
func (p *Pipeline) Run(ctx context.Context, clients, finance *dataload.Dataset) (*Report, error) {
	start := time.Now()

	snap, err := p.normalizer.Normalize(ctx, clients, finance)
	if err != nil {
		p.runs.WithLabelValues("error").Inc()
		return nil, err
	}

	report := &Report{
		ClientRows:  len(snap.Clients),
		FinanceRows: len(snap.Finance),
		DroppedRows: snap.Dropped,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Activity = ComputeClientActivity(snap)
		return nil
	})
	g.Go(func() error {
		report.Renewals = ComputeRenewalDistribution(snap)
		return nil
	})
	g.Go(func() error {
		report.MarketShare = ComputeMarketShare(snap, false)
		report.FirstShare = ComputeMarketShare(snap, true)
		return nil
	})
	g.Go(func() error {
		report.Churn = ComputeChurnRetention(snap)
		return nil
	})
	g.Go(func() error {
		report.Finance = ComputeFinancialSummary(snap)
		return nil
	})
	g.Go(func() error {
		report.TopClients = ComputeProfitAttribution(snap)
		return nil
	})
	if err := g.Wait(); err != nil {
		p.runs.WithLabelValues("error").Inc()
		return nil, err
	}

	p.runs.WithLabelValues("ok").Inc()
	p.duration.Observe(time.Since(start).Seconds())

	p.logger.InfoContext(ctx, "pipeline complete",
		slog.Duration("duration", time.Since(start)),
		slog.Int("activity_rows", len(report.Activity)),
		slog.Int("renewal_buckets", len(report.Renewals)),
		slog.Int("departments", len(report.MarketShare)),
		slog.Int("churn_rows", len(report.Churn)),
		slog.Int("finance_rows", len(report.Finance)),
		slog.Int("top_client_rows", len(report.TopClients)))

	return report, nil
}
