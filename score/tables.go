package score

import (
	"sort"
	"strings"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/analyze"
)

// actionVerbs name the failure mode a summary describes. Two summaries that
// both name a verb from this set but not the same one are probably about
// different incidents, which the fusion step penalizes.
var actionVerbs = []string{
	"fail", "crash", "error", "timeout", "slow", "stuck", "broken",
	"freeze", "hang", "reject",
}

// objectTerms name the semantic object a summary acts on. The
// high-confidence gate requires the query and candidate to share at least
// one of these.
var objectTerms = []string{
	"login", "api", "upload", "download", "dashboard", "payment",
	"search", "checkout", "export", "import", "email", "profile",
	"notification", "attachment",
}

var (
	actionVerbStems = stemTable(actionVerbs)
	objectTermStems = stemTable(objectTerms)
)

func stemTable(words []string) map[string]string {
	table := make(map[string]string, len(words))
	for _, w := range words {
		table[analyze.StemWord(w)] = w
	}
	return table
}

// ExtractActionVerbs returns the canonical action verbs named in a raw
// summary, sorted. Detection runs on the raw words, before synonym
// canonicalization: the synonym table folds several of these verbs into a
// shared "failure" token, which would erase exactly the distinction the
// mismatch penalty depends on.
func ExtractActionVerbs(summary string) []string {
	found := make(map[string]struct{})
	for _, word := range splitWords(summary) {
		if verb, ok := actionVerbStems[analyze.StemWord(word)]; ok {
			found[verb] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// SharedObjects returns the canonical intent-object terms present in both
// stemmed summary token sequences, sorted.
func SharedObjects(queryTokens, candTokens []string) []string {
	candSet := tokenSet(candTokens)
	found := make(map[string]struct{})
	for _, t := range queryTokens {
		if _, inCand := candSet[t]; !inCand {
			continue
		}
		if term, ok := objectTermStems[t]; ok {
			found[term] = struct{}{}
		}
	}
	return sortedKeys(found)
}

func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
