package entities

// Tier is the qualitative bucket a final percentage falls into.
type Tier string

const (
	TierTop    Tier = "top"    // 80% and above
	TierMiddle Tier = "middle" // 60% up to 80%
	TierLow    Tier = "low"    // below 60%
)

// Result is the final outcome of a completed quiz.
type Result struct {
	Topic string // topic of the finished quiz
	Score int    // correct answers
	Total int    // total questions
}

// Percentage returns the score as a percentage of the total.
// Score and Total stay exact integers; rounding is a display concern.
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Score) / float64(r.Total)
}

// Tier classifies the percentage. Thresholds are inclusive on the
// lower bound of each tier.
func (r Result) Tier() Tier {
	p := r.Percentage()
	switch {
	case p >= 80:
		return TierTop
	case p >= 60:
		return TierMiddle
	default:
		return TierLow
	}
}
