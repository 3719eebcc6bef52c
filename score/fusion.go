package score

import (
	"math"
	"strings"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

const (
	typeMismatchPenalty      = 15.0
	componentDisjointPenalty = 10.0
	verbMismatchPenalty      = 10.0

	// A pair carried by a single signal is never high confidence.
	summaryOnlyCap  = 65.0
	metadataOnlyCap = 60.0

	// Scores at or above the floor need two corroborating signals and a
	// shared intent object; otherwise they are clamped to the ceiling.
	highConfidenceFloor = 70.0
	gateCeiling         = 69.0

	maxNamedKeywords = 3
)

// MismatchPenalties computes the structural penalties for a pair:
// issue-type mismatch, disjoint component sets, and action-verb mismatch.
// A field missing on either side is no evidence of mismatch and costs
// nothing.
func MismatchPenalties(query, candidate *core.Document) float64 {
	total := 0.0

	if query.IssueType != "" && candidate.IssueType != "" && query.IssueType != candidate.IssueType {
		total += typeMismatchPenalty
	}

	if len(query.Components) > 0 && len(candidate.Components) > 0 {
		if jaccard(stringSet(query.Components), stringSet(candidate.Components)) == 0 {
			total += componentDisjointPenalty
		}
	}

	queryVerbs := ExtractActionVerbs(query.Summary)
	candVerbs := ExtractActionVerbs(candidate.Summary)
	if len(queryVerbs) > 0 && len(candVerbs) > 0 && disjoint(queryVerbs, candVerbs) {
		total += verbMismatchPenalty
	}

	return total
}

func disjoint(a, b []string) bool {
	set := stringSet(a)
	for _, s := range b {
		if _, ok := set[s]; ok {
			return false
		}
	}
	return true
}

// Fuse collapses a SignalBreakdown into the final integer score and its
// reasons. It fills in ActiveSignals and SharedObject as side products.
//
// Order matters: sum, penalties, status multiplier, single-signal cap,
// corroboration gate, round, clamp.
func Fuse(b *core.SignalBreakdown) (int, []string) {
	if b.StatusMultiplier == 0 {
		b.StatusMultiplier = 1.0
	}

	raw := b.SummaryScore + b.DescriptionScore + b.ReporterScore + b.LabelsScore + b.RecencyScore
	raw -= b.Penalties
	raw *= b.StatusMultiplier

	// Recency is ambient, not corroborating; it never counts as a signal.
	active := 0
	for _, s := range []float64{b.SummaryScore, b.DescriptionScore, b.ReporterScore, b.LabelsScore} {
		if s > 0 {
			active++
		}
	}
	b.ActiveSignals = active
	b.SharedObject = len(b.SharedObjects) > 0

	if active == 1 {
		limit := metadataOnlyCap
		if b.SummaryScore > 0 {
			limit = summaryOnlyCap
		}
		if raw > limit {
			raw = limit
		}
	}

	if raw >= highConfidenceFloor && (active < 2 || !b.SharedObject) {
		raw = gateCeiling
	}

	final := int(math.Round(raw))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	return final, reasons(b)
}

// reasons lists the contributing signals in fixed priority order, matching
// the fusion evaluation order.
func reasons(b *core.SignalBreakdown) []string {
	var out []string
	if len(b.SharedKeywords) > 0 {
		named := b.SharedKeywords
		if len(named) > maxNamedKeywords {
			named = named[:maxNamedKeywords]
		}
		out = append(out, "Shared keywords: "+strings.Join(named, ", "))
	}
	if b.PhraseMatch {
		out = append(out, "Matching phrase in summary")
	}
	if b.ReporterScore > 0 {
		out = append(out, "Same reporter")
	}
	if b.LabelsScore > 0 {
		out = append(out, "Shared labels")
	}
	if len(b.SharedObjects) > 0 {
		out = append(out, "Shared intent object: "+strings.Join(b.SharedObjects, ", "))
	}
	return out
}
