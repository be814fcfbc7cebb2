// Package pipeline drives the full national run: states strictly in
// sequence, each reconciled, summarized, and persisted before the next
// begins, then one national rollup at the end.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/solarcrm/ratesync/internal/aggregate"
	"github.com/solarcrm/ratesync/internal/models"
	"github.com/solarcrm/ratesync/internal/output"
	"github.com/solarcrm/ratesync/internal/reconcile"
	"github.com/solarcrm/ratesync/internal/reference"
)

// Runner owns one end-to-end run. Single logical thread of control: no
// two queries are ever in flight at once.
type Runner struct {
	reconciler *reconcile.Reconciler
	tables     *reference.Tables
	writer     *output.Writer
	logger     *logrus.Logger
	now        func() time.Time
}

func New(reconciler *reconcile.Reconciler, tables *reference.Tables, writer *output.Writer, logger *logrus.Logger) *Runner {
	return &Runner{
		reconciler: reconciler,
		tables:     tables,
		writer:     writer,
		logger:     logger,
		now:        time.Now,
	}
}

// Run processes every covered state in sorted order. Query failures are
// absorbed inside reconciliation; Run only fails on context cancellation
// or an unwritable output destination. A state's file is written only
// after its pass completes, so an interrupted run leaves no partial
// state file.
func (r *Runner) Run(ctx context.Context) (*models.NationalSummary, error) {
	states := r.tables.States()
	summaries := make([]models.StateSummary, 0, len(states))

	for i, state := range states {
		r.logger.WithFields(logrus.Fields{
			"state":    state,
			"position": i + 1,
			"total":    len(states),
		}).Info("processing state")

		utilities, err := r.reconciler.State(ctx, state)
		if err != nil {
			return nil, err
		}

		summary := aggregate.State(state, utilities, r.tables, r.now())
		if err := r.writer.WriteState(summary); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)

		r.logger.WithFields(logrus.Fields{
			"state":     state,
			"utilities": summary.UtilityCount,
			"avg_rate":  summary.AvgResidentialRate,
		}).Info("state complete")
	}

	national := aggregate.National(summaries, r.tables, r.now())
	if err := r.writer.WriteNational(national); err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"total_utilities":   national.TotalUtilities,
		"states_covered":    national.StatesCovered,
		"national_avg_rate": national.NationalAvgRate,
	}).Info("run complete")

	return &national, nil
}
