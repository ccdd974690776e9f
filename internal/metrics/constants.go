package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameItemsTicked         = "gildedrose_items_ticked_total"
	MetricNameItemsPastSellDate   = "gildedrose_items_past_sell_date_total"
	MetricNameInvariantViolations = "gildedrose_quality_invariant_violations_total"
	MetricNameNightlyRuns         = "gildedrose_nightly_runs_total"
	MetricNameNightlyRunDuration  = "gildedrose_nightly_run_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsTicked         = "Total number of item ticks, by variant"
	HelpTextItemsPastSellDate   = "Total number of ticks that left an item past its sell date, by variant"
	HelpTextInvariantViolations = "Total number of ticks that left quality outside [0, 50], by variant"
	HelpTextNightlyRuns         = "Total number of nightly passes"
	HelpTextNightlyRunDuration  = "Nightly pass duration in seconds"
)

// ============================================================================
// Labels & Buckets
// ============================================================================

const (
	LabelVariant = "variant"
)

// NightlyRunBuckets covers passes from microseconds up to a second
var NightlyRunBuckets = []float64{.00001, .0001, .001, .01, .1, 1}
