package score

import (
	"math"
	"time"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

const (
	// ReporterPoints is awarded when both documents share a reporter.
	ReporterPoints = 20.0

	// LabelsCap scales the label-set Jaccard similarity.
	LabelsCap = 20.0

	recencyCap        = 10.0
	recencyWindowDays = 90.0
	recencyDecayDays  = 30.0
)

// ReporterScore is binary: full points for the same non-empty reporter.
func ReporterScore(query, candidate string) float64 {
	if query != "" && query == candidate {
		return ReporterPoints
	}
	return 0
}

// LabelsScore is the Jaccard similarity of the two label sets scaled to
// [0, LabelsCap]; 0 when both sets are empty.
func LabelsScore(query, candidate []string) float64 {
	return jaccard(stringSet(query), stringSet(candidate)) * LabelsCap
}

// RecencyScore decays exponentially with the absolute difference between
// creation timestamps: 10.0 for the same instant, ~3.68 at 30 days, and a
// hard 0 from day 90 on. Direction is deliberately ignored. The result is
// rounded to two decimals.
func RecencyScore(query, candidate time.Time) float64 {
	days := math.Abs(query.Sub(candidate).Hours()) / 24
	if days >= recencyWindowDays {
		return 0
	}
	return math.Round(math.Exp(-days/recencyDecayDays)*recencyCap*100) / 100
}

// StatusMultiplier slightly favors resolved candidates as likely "true"
// originals: Done keeps 95% of the fused score, In Progress 90%, anything
// else is untouched.
func StatusMultiplier(status string) float64 {
	switch status {
	case core.StatusDone:
		return 0.95
	case core.StatusInProgress:
		return 0.9
	default:
		return 1.0
	}
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
