package reporter

import (
	"context"
	"io"
	"time"

	"github.com/savid/latstats/pkg/report"
	"github.com/savid/latstats/pkg/samples"
	"github.com/savid/latstats/pkg/summary"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MeanMode     summary.MeanMode
	OpenAttempts uint
	OpenDelay    time.Duration
}

func DefaultConfig() Config {
	return Config{
		MeanMode:     summary.MeanScaled,
		OpenAttempts: 1,
		OpenDelay:    500 * time.Millisecond,
	}
}

type Reporter struct {
	cfg Config
	log logrus.FieldLogger
}

func New(cfg Config) *Reporter {
	if cfg.MeanMode == "" {
		cfg.MeanMode = summary.MeanScaled
	}

	return &Reporter{
		cfg: cfg,
		log: logrus.WithField("mean_mode", cfg.MeanMode),
	}
}

// Run loads the samples at path, summarizes them and writes the report to w.
// Nothing is written unless every step succeeds.
func (r *Reporter) Run(ctx context.Context, path string, w io.Writer) error {
	set, err := samples.Load(ctx, path, samples.WithOpenRetry(r.cfg.OpenAttempts, r.cfg.OpenDelay))
	if err != nil {
		return err
	}

	stats, err := summary.Summarize(set, r.cfg.MeanMode)
	if err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"path":   path,
		"count":  stats.Count,
		"min":    stats.Min,
		"max":    stats.Max,
		"mean":   stats.Mean,
		"median": stats.Median,
		"p99":    stats.P99,
	}).Debug("Summarized samples")

	return report.Render(w, stats)
}
