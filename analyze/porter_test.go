package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference words drawn from the published Porter algorithm examples, with
// expected output of the full five-step pipeline.
var porterVectors = []struct {
	word string
	stem string
}{
	// step 1
	{"caresses", "caress"},
	{"ponies", "poni"},
	{"ties", "ti"},
	{"cats", "cat"},
	{"feed", "feed"},
	{"agreed", "agre"},
	{"plastered", "plaster"},
	{"bled", "bled"},
	{"motoring", "motor"},
	{"sing", "sing"},
	{"conflated", "conflat"},
	{"troubled", "troubl"},
	{"sized", "size"},
	{"hopping", "hop"},
	{"tanned", "tan"},
	{"falling", "fall"},
	{"hissing", "hiss"},
	{"failing", "fail"},
	{"filing", "file"},
	{"happy", "happi"},
	{"sky", "sky"},
	{"running", "run"},
	{"flies", "fli"},
	// step 2
	{"relational", "relat"},
	{"conditional", "condit"},
	{"rational", "ration"},
	{"valenci", "valenc"},
	{"digitizer", "digit"},
	{"operator", "oper"},
	{"feudalism", "feudal"},
	{"decisiveness", "decis"},
	{"hopefulness", "hope"},
	{"callousness", "callous"},
	{"formaliti", "formal"},
	{"sensitiviti", "sensit"},
	{"sensibiliti", "sensibl"},
	// step 3
	{"triplicate", "triplic"},
	{"formative", "form"},
	{"formalize", "formal"},
	{"electriciti", "electr"},
	{"electrical", "electr"},
	{"hopeful", "hope"},
	{"goodness", "good"},
	// step 4
	{"revival", "reviv"},
	{"allowance", "allow"},
	{"inference", "infer"},
	{"airliner", "airlin"},
	{"gyroscopic", "gyroscop"},
	{"adjustable", "adjust"},
	{"defensible", "defens"},
	{"irritant", "irrit"},
	{"replacement", "replac"},
	{"adjustment", "adjust"},
	{"dependent", "depend"},
	{"adoption", "adopt"},
	{"communism", "commun"},
	{"activate", "activ"},
	{"angulariti", "angular"},
	{"homologous", "homolog"},
	{"effective", "effect"},
	{"bowdlerize", "bowdler"},
	// step 5
	{"probate", "probat"},
	{"rate", "rate"},
	{"cease", "ceas"},
	{"controlling", "control"},
	{"rolling", "roll"},
}

func TestPorterStem_ReferenceVectors(t *testing.T) {
	for _, tt := range porterVectors {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.stem, porterStem(tt.word))
		})
	}
}

func TestPorterStem_ShortTokensUnchanged(t *testing.T) {
	for _, w := range []string{"", "a", "ab", "is", "io"} {
		assert.Equal(t, w, porterStem(w))
	}
}

func TestPorterStem_Idempotent(t *testing.T) {
	// Already-stemmed forms must pass through unchanged.
	stems := []string{
		"run", "fli", "caress", "poni", "hope", "file", "size",
		"depend", "adjust", "effect", "control", "angular", "commun",
		"login", "upload", "dashboard",
	}
	for _, s := range stems {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, porterStem(s))
		})
	}
}

func TestPorterStem_Deterministic(t *testing.T) {
	for _, tt := range porterVectors {
		first := porterStem(tt.word)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, porterStem(tt.word))
		}
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"y", 0},
		{"by", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, measure(tt.word))
		})
	}
}

func TestEndsCVC(t *testing.T) {
	assert.True(t, endsCVC("hop"))
	assert.True(t, endsCVC("fil"))
	// final w, x, y never count as the closing consonant
	assert.False(t, endsCVC("snow"))
	assert.False(t, endsCVC("box"))
	assert.False(t, endsCVC("tray"))
	assert.False(t, endsCVC("fail"))
}
