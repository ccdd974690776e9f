package nightly

import (
	"context"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// Service runs the once-a-day update over a caller's items
type Service interface {
	// RunOnce ticks every item exactly once, in order
	RunOnce(ctx context.Context, items []*item.Item) *domain.NightlyReport
}

type service struct {
	now func() time.Time
}

// NewService creates a new nightly service
func NewService() Service {
	return &service{now: time.Now}
}

// RunOnce ticks every item exactly once, in order. Items are mutated in place.
func (s *service) RunOnce(ctx context.Context, items []*item.Item) *domain.NightlyReport {
	runID := logger.GetRunID(ctx)
	if runID == "" {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "items", len(items))

	start := s.now()
	report := &domain.NightlyReport{
		RunID:     runID,
		ByVariant: make(map[domain.Variant]int),
	}

	for idx, it := range items {
		if it == nil {
			log.Warn(LogMsgNilItemSkipped, "index", idx)
			report.Skipped++
			continue
		}

		before := it.Quality()
		it.Tick()

		variant := it.Variant()
		label := string(variant)
		report.Ticked++
		report.ByVariant[variant]++
		metrics.ItemsTicked.WithLabelValues(label).Inc()

		ref := domain.ItemRef{Index: idx, Name: it.Name()}
		if variant.IsMutable() && it.DaysRemaining() < 0 {
			report.PastSellDate = append(report.PastSellDate, ref)
			metrics.ItemsPastSellDate.WithLabelValues(label).Inc()
		}

		if violatesBounds(it) {
			log.Warn(LogMsgQualityViolation,
				"index", idx, "name", it.Name(), "variant", label,
				"before", before, "after", it.Quality())
			report.Violations = append(report.Violations, domain.QualityViolation{
				ItemRef: ref,
				Variant: variant,
				Before:  before,
				After:   it.Quality(),
			})
			metrics.InvariantViolations.WithLabelValues(label).Inc()
		}
	}

	elapsed := s.now().Sub(start)
	metrics.NightlyRuns.Inc()
	metrics.NightlyRunDuration.Observe(elapsed.Seconds())

	log.Info(LogMsgRunCompleted,
		"ticked", report.Ticked,
		"skipped", report.Skipped,
		"past_sell_date", len(report.PastSellDate),
		"violations", len(report.Violations),
		"duration", elapsed)
	return report
}

// violatesBounds reports quality outside [0, 50] for variants a tick mutates.
// Default and legendary items keep whatever quality they were built with.
func violatesBounds(it *item.Item) bool {
	if !it.Variant().IsMutable() {
		return false
	}
	q := it.Quality()
	return q < domain.MinQuality || q > domain.MaxQuality
}
