package correct

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
)

// SuggesterOption is a functional option for configuring a [Suggester].
type SuggesterOption func(*Suggester)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required for a
// phonetically-matched name to be accepted. Default: 0.70.
func WithPhoneticThreshold(threshold float64) SuggesterOption {
	return func(s *Suggester) {
		s.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required when no
// phonetic candidate is found and the suggester falls back to pure string
// similarity. Default: 0.85.
func WithFuzzyThreshold(threshold float64) SuggesterOption {
	return func(s *Suggester) {
		s.fuzzyThreshold = threshold
	}
}

// Suggester proposes the closest-sounding menu item name for a phrase the
// rule table did not cover. It combines Double Metaphone phonetic encoding
// (to shortlist names that sound alike) with Jaro-Winkler similarity (to rank
// the shortlist), so "pepperoni pissa" can still surface "Pepperoni Pizza"
// for a "did you mean" prompt even with no authored rule.
//
// Suggester is read-only after construction and safe for concurrent use.
type Suggester struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
}

// NewSuggester returns a Suggester configured with the supplied options.
func NewSuggester(opts ...SuggesterOption) *Suggester {
	s := &Suggester{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Suggest returns the name from names most phonetically similar to phrase.
// When ok is false, suggestion equals phrase unchanged and confidence is 0.
func (s *Suggester) Suggest(phrase string, names []string) (suggestion string, confidence float64, ok bool) {
	if len(names) == 0 || strings.TrimSpace(phrase) == "" {
		return phrase, 0, false
	}

	phraseLower := strings.ToLower(strings.TrimSpace(phrase))
	phraseTokens := strings.Fields(phraseLower)
	phraseCodes := metaphoneCodes(phraseTokens)

	var (
		bestName     string
		bestScore    float64
		bestPhonetic bool
	)

	for _, name := range names {
		nameLower := strings.ToLower(strings.TrimSpace(name))
		if nameLower == "" {
			continue
		}
		nameTokens := strings.Fields(nameLower)

		score := bestSimilarity(phraseTokens, nameTokens, phraseLower, nameLower)
		phonetic := codesOverlap(phraseCodes, metaphoneCodes(nameTokens))

		switch {
		case phonetic && score >= s.phoneticThreshold:
			if !bestPhonetic || score > bestScore {
				bestName, bestScore, bestPhonetic = name, score, true
			}
		case !phonetic && !bestPhonetic && score >= s.fuzzyThreshold && score > bestScore:
			bestName, bestScore = name, score
		}
	}

	if bestName == "" {
		return phrase, 0, false
	}
	return bestName, bestScore, true
}

// metaphoneCodes returns the union of Double Metaphone codes for tokens.
// Empty codes are excluded.
func metaphoneCodes(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, secondary := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if secondary != "" {
			codes[secondary] = struct{}{}
		}
	}
	return codes
}

// codesOverlap reports whether the two code sets share at least one code.
func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestSimilarity computes the highest Jaro-Winkler score between phrase and
// name across three comparisons: the full strings, the space-stripped strings,
// and the best pairwise token score. The latter two handle spoken phrases
// where word boundaries drift ("pop corn" vs "popcorn").
func bestSimilarity(phraseTokens, nameTokens []string, phraseFull, nameFull string) float64 {
	score := matchr.JaroWinkler(phraseFull, nameFull, false)

	if len(phraseTokens) > 1 || len(nameTokens) > 1 {
		joined1 := strings.Join(phraseTokens, "")
		joined2 := strings.Join(nameTokens, "")
		if s := matchr.JaroWinkler(joined1, joined2, false); s > score {
			score = s
		}
	}

	for _, pt := range phraseTokens {
		for _, nt := range nameTokens {
			if s := matchr.JaroWinkler(pt, nt, false); s > score {
				score = s
			}
		}
	}

	return score
}
