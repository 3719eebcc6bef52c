package analyze

// defaultSynonyms canonicalizes near-equivalent issue vocabulary so that
// differently worded reports land on the same tokens. Applied after the
// length filter and before stemming; unmapped tokens pass through unchanged.
var defaultSynonyms = map[string]string{
	"signin": "login",
	"auth":   "login",
	"sign":   "login",

	"fail":   "failure",
	"fails":  "failure",
	"failed": "failure",
	"bug":    "failure",
	"glitch": "failure",
	"crash":  "failure",

	"latency": "performance",
	"lag":     "performance",
	"slow":    "performance",

	"screen": "ui",
	"view":   "ui",
	"modal":  "ui",
}

// defaultStopwords lists words that appear near-ubiquitously in issue text
// and carry no discriminative value: general English function words plus
// tracker-domain noise. Entries are stemmed at Analyzer construction so that
// surface forms ("does", "nothing") match their stems.
var defaultStopwords = []string{
	// articles, determiners, pronouns
	"the", "this", "that", "these", "those",
	"you", "she", "they", "him", "her", "them",
	"your", "his", "its", "our", "their",
	"what", "which", "who", "whom", "whose",
	"any", "some", "all", "each", "every", "both", "few",
	"more", "most", "other", "another", "such",
	"nor", "only", "own", "same", "than", "too", "very", "just",
	"something", "anything", "everything", "nothing",

	// prepositions, conjunctions, adverbs
	"and", "but", "not", "then", "else", "when", "where", "why", "how",
	"for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "from", "out",
	"off", "over", "under", "again", "further", "once", "here", "there",
	"also", "still", "yet", "always", "never", "sometimes",

	// auxiliary verbs
	"was", "were", "been", "being", "are",
	"have", "has", "had", "having",
	"does", "did", "doing", "done",
	"will", "would", "should", "could", "can", "cannot",
	"may", "might", "must", "shall",
	"get", "gets", "getting", "got",
	"seems", "appears", "happens", "occurred", "occurs",

	// tracker-domain noise
	"issue", "issues", "bug", "bugs", "error", "errors",
	"page", "pages", "ticket", "tickets", "problem", "problems",
	"user", "users", "please", "thanks", "team",
	"app", "application", "report", "reported",
}
