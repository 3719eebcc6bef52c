package score

import (
	"sort"
	"strings"
)

// Point scale for the text sub-scores. A shared summary keyword is worth up
// to keywordPoints; a shared bigram is worth its constituent tokens' point
// sum times phraseMultiplier, rewarding phrase-level matches over
// independent single-token hits.
const (
	SummaryCap     = 40.0
	DescriptionCap = 15.0

	keywordPoints    = 10.0
	phraseMultiplier = 2.5
	containmentBonus = 5.0
	shingleWidth     = 3
)

// TextScorer computes the summary and description sub-scores for one
// query/candidate pair, weighting tokens by the supplied corpus statistics.
type TextScorer struct {
	freq *CorpusFrequencies
}

// NewTextScorer creates a TextScorer. freq may be nil, in which case every
// token weighs 1.0.
func NewTextScorer(freq *CorpusFrequencies) *TextScorer {
	return &TextScorer{freq: freq}
}

// SummaryScore scores summary similarity from weighted keyword overlap,
// bigram phrase overlap, and a raw-substring containment bonus, clamped to
// [0, SummaryCap]. It also reports the shared keywords (highest weight
// first, then lexicographic) and whether any bigram matched.
func (s *TextScorer) SummaryScore(queryTokens, candTokens []string, queryRaw, candRaw string) (float64, []string, bool) {
	qSet := tokenSet(queryTokens)
	cSet := tokenSet(candTokens)

	shared := make([]string, 0, len(qSet))
	total := 0.0
	for t := range qSet {
		if _, ok := cSet[t]; ok {
			shared = append(shared, t)
			total += keywordPoints * TokenWeight(t, s.freq)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		wi, wj := TokenWeight(shared[i], s.freq), TokenWeight(shared[j], s.freq)
		if wi != wj {
			return wi > wj
		}
		return shared[i] < shared[j]
	})

	phrase := false
	cBigrams := bigramSet(candTokens)
	for i := 0; i+1 < len(queryTokens); i++ {
		a, b := queryTokens[i], queryTokens[i+1]
		if _, ok := cBigrams[a+" "+b]; ok {
			phrase = true
			total += phraseMultiplier * (keywordPoints*TokenWeight(a, s.freq) + keywordPoints*TokenWeight(b, s.freq))
			delete(cBigrams, a+" "+b) // each distinct bigram counts once
		}
	}

	q := strings.ToLower(strings.TrimSpace(queryRaw))
	c := strings.ToLower(strings.TrimSpace(candRaw))
	if q != "" && c != "" && (strings.Contains(q, c) || strings.Contains(c, q)) {
		total += containmentBonus
	}

	return clamp(total, 0, SummaryCap), shared, phrase
}

// DescriptionScore scores description similarity as the Jaccard similarity
// of the two 3-token shingle sets, scaled to [0, DescriptionCap].
func (s *TextScorer) DescriptionScore(queryTokens, candTokens []string) float64 {
	sim := jaccard(shingleSet(queryTokens), shingleSet(candTokens))
	return clamp(sim*DescriptionCap, 0, DescriptionCap)
}

// jaccard returns |A∩B| / |A∪B|, defined as 0 when both sets are empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func bigramSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+1 < len(tokens); i++ {
		set[tokens[i]+" "+tokens[i+1]] = struct{}{}
	}
	return set
}

// shingleSet builds the set of order-preserving 3-token shingles: a sliding
// window of width 3, step 1, with duplicates collapsed.
func shingleSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+shingleWidth <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+shingleWidth], " ")] = struct{}{}
	}
	return set
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
