package domain

// NightlyReport summarises one nightly pass over a caller's items
type NightlyReport struct {
	RunID        string             `json:"run_id"`
	Ticked       int                `json:"ticked"`
	Skipped      int                `json:"skipped"`
	ByVariant    map[Variant]int    `json:"by_variant"`
	PastSellDate []ItemRef          `json:"past_sell_date"`
	Violations   []QualityViolation `json:"violations"`
}

// ItemRef points at an item by its position in the pass
type ItemRef struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// QualityViolation records a tick that left quality outside [MinQuality, MaxQuality]
type QualityViolation struct {
	ItemRef
	Variant Variant `json:"variant"`
	Before  int     `json:"before"`
	After   int     `json:"after"`
}
