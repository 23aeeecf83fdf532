// Package resolve matches a (corrected) spoken phrase against the menu
// catalog and returns ranked candidate items.
//
// Resolution runs up to three passes in order and stops at the first pass
// that yields at least one candidate; passes are not cumulative:
//
//  1. Exact substring: the query is contained in the item name or vice versa.
//  2. Partial word: every query word occurs somewhere in the item name.
//  3. Fuzzy: Levenshtein-based word similarity with an acceptance threshold.
//
// Items that share a base name and differ only by size ("Regular Fries" /
// "Large Fries") are treated as a size group: a query that names the group
// without a size qualifier resolves to an ambiguous group rather than an
// arbitrary variant, a query with an explicit qualifier is narrowed to the
// matching variant, and a qualifier naming a variant the group does not carry
// falls back to the ambiguous group.
//
// An empty result is a negative answer ("not on the menu"), never an error.
// A Resolver is read-only after construction and safe for concurrent use.
package resolve

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/ordervox/ordervox/pkg/menu"
)

// DefaultThreshold is the minimum normalized word similarity for the fuzzy
// pass to accept an item.
const DefaultThreshold = 0.65

// Pass identifies which matching strategy produced a candidate.
type Pass string

const (
	PassExact       Pass = "exact"
	PassPartialWord Pass = "partial_word"
	PassFuzzy       Pass = "fuzzy"
)

// Candidate is one ranked match for a query.
type Candidate struct {
	// Item is the matched catalog item.
	Item menu.Item

	// Pass is the strategy that produced this candidate.
	Pass Pass

	// Score is the match confidence in [0, 1]. Exact and partial-word
	// candidates score 1.0; fuzzy candidates score the mean best-per-word
	// similarity, always at or above the acceptance threshold.
	Score float64
}

// Result is the outcome of one Resolve call.
type Result struct {
	// Candidates are the matched items ordered by descending score, ties
	// broken by catalog insertion order. Empty when nothing matched or when
	// the query hit an unresolved size group.
	Candidates []Candidate

	// SizeGroup holds all variants of a size group when the query named the
	// group without an explicit size qualifier. The caller must ask the
	// customer which variant they want. Nil when no disambiguation is needed.
	SizeGroup []menu.Item
}

// Found reports whether the result carries at least one resolved candidate.
func (r Result) Found() bool {
	return len(r.Candidates) > 0
}

// Ambiguous reports whether the result requires size disambiguation.
func (r Result) Ambiguous() bool {
	return len(r.SizeGroup) > 0
}

// Best returns the highest-ranked candidate.
func (r Result) Best() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}

// Option is a functional option for configuring a [Resolver].
type Option func(*Resolver)

// WithThreshold overrides the fuzzy-pass acceptance threshold.
// Values outside (0, 1] are ignored.
func WithThreshold(threshold float64) Option {
	return func(r *Resolver) {
		if threshold > 0 && threshold <= 1 {
			r.threshold = threshold
		}
	}
}

// Resolver matches queries against a fixed catalog.
type Resolver struct {
	catalog   *menu.Catalog
	threshold float64
	passes    []passSpec
}

type passSpec struct {
	pass Pass
	run  func(query string) []Candidate
}

// New returns a Resolver over catalog.
func New(catalog *menu.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:   catalog,
		threshold: DefaultThreshold,
	}
	for _, o := range opts {
		o(r)
	}
	r.passes = []passSpec{
		{PassExact, r.exactPass},
		{PassPartialWord, r.partialWordPass},
		{PassFuzzy, r.fuzzyPass},
	}
	return r
}

// Threshold returns the active fuzzy acceptance threshold.
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// Resolve matches query against the catalog and returns ranked candidates,
// or a size group needing disambiguation. Resolve never fails: an
// unrecognisable query yields an empty Result.
func (r *Resolver) Resolve(query string) Result {
	norm := FoldNumberWords(menu.Normalize(query))
	if norm == "" {
		return Result{}
	}

	size, hasSize := menu.SizeQualifier(norm)

	cands := r.runPasses(norm)
	if len(cands) == 0 && hasSize {
		// The qualifier itself may not appear in any item name ("small wings"
		// against a "Wings" group); retry on the base phrase and narrow by
		// size afterwards.
		if base := menu.BaseName(norm); base != norm {
			cands = r.runPasses(base)
		}
	}
	if len(cands) == 0 {
		return Result{}
	}

	if hasSize {
		return r.narrowToSize(cands, size)
	}

	// No explicit size: a best candidate inside a multi-variant group means
	// the customer has not told us which one they want.
	if group := r.catalog.SizeGroup(cands[0].Item.Name); len(group) > 1 {
		return Result{SizeGroup: group}
	}
	return Result{Candidates: cands}
}

// runPasses executes the matching strategies in order and returns the result
// of the first one that produces candidates.
func (r *Resolver) runPasses(query string) []Candidate {
	for _, p := range r.passes {
		if cands := p.run(query); len(cands) > 0 {
			return cands
		}
	}
	return nil
}

// exactPass matches items whose normalized name contains the query or is
// contained in it. All matches score 1.0; catalog order is preserved.
func (r *Resolver) exactPass(query string) []Candidate {
	var out []Candidate
	for _, it := range r.catalog.Items() {
		name := menu.Normalize(it.Name)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			out = append(out, Candidate{Item: it, Pass: PassExact, Score: 1.0})
		}
	}
	return out
}

// partialWordPass matches items whose name contains every query word, in any
// order. Ties are broken by shorter item name
// first (the closest-specificity item wins), then by catalog order.
func (r *Resolver) partialWordPass(query string) []Candidate {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil
	}

	var out []Candidate
	for _, it := range r.catalog.Items() {
		name := menu.Normalize(it.Name)
		matched := 0
		for _, w := range words {
			if strings.Contains(name, w) {
				matched++
			}
		}
		if matched == len(words) {
			out = append(out, Candidate{
				Item:  it,
				Pass:  PassPartialWord,
				Score: float64(matched) / float64(len(words)),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Item.Name) < len(out[j].Item.Name)
	})
	return out
}

// fuzzyPass matches items by Levenshtein word similarity. An item qualifies
// when every query word has at least one item-name word with similarity at or
// above the threshold; its score is the mean of the best per-word
// similarities. Results are ordered by descending score, catalog order on ties.
func (r *Resolver) fuzzyPass(query string) []Candidate {
	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return nil
	}

	var out []Candidate
	for _, it := range r.catalog.Items() {
		nameWords := strings.Fields(menu.Normalize(it.Name))
		if len(nameWords) == 0 {
			continue
		}

		total := 0.0
		qualified := true
		for _, qw := range queryWords {
			best := 0.0
			for _, nw := range nameWords {
				if s := Similarity(qw, nw); s > best {
					best = s
				}
			}
			if best < r.threshold {
				qualified = false
				break
			}
			total += best
		}
		if !qualified {
			continue
		}

		out = append(out, Candidate{
			Item:  it,
			Pass:  PassFuzzy,
			Score: total / float64(len(queryWords)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// narrowToSize applies an explicit size qualifier to the candidates. When the
// top candidate belongs to a multi-variant size group, only that group's
// variants are in play: the matching variant wins, and a size the group does
// not carry ("small fries" against Regular/Large) comes back as the group for
// disambiguation rather than letting a name-superset item win. Outside any
// group the qualifier has nothing to select on, so candidates pass through,
// minus members of other groups that miss the requested size.
func (r *Resolver) narrowToSize(cands []Candidate, size menu.Size) Result {
	group := r.catalog.SizeGroup(cands[0].Item.Name)
	if len(group) <= 1 {
		var out []Candidate
		for _, c := range cands {
			if g := r.catalog.SizeGroup(c.Item.Name); len(g) > 1 && c.Item.Size != size {
				continue
			}
			out = append(out, c)
		}
		return Result{Candidates: out}
	}

	members := make(map[int]bool, len(group))
	for _, it := range group {
		members[it.ID] = true
	}

	var out []Candidate
	for _, c := range cands {
		if members[c.Item.ID] && c.Item.Size == size {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return Result{SizeGroup: group}
	}
	return Result{Candidates: out}
}

// Similarity returns the normalized Levenshtein similarity of two words:
// 1 - distance/max(len). It is symmetric and lands in [0, 1], with 1 meaning
// the words are identical.
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := matchr.Levenshtein(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// numberWords maps spoken counts to the digits used in item names, so
// "six chicken wings" can line up with "6 Chicken Wings".
var numberWords = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
	"eleven": "11", "twelve": "12", "thirteen": "13", "fourteen": "14",
	"fifteen": "15", "sixteen": "16", "seventeen": "17", "eighteen": "18",
	"nineteen": "19", "twenty": "20",
}

// FoldNumberWords replaces whole-word spoken numbers with digits.
// Folding is per token, so words merely containing a number word
// ("stone", "tense") are left alone.
func FoldNumberWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if d, ok := numberWords[w]; ok {
			words[i] = d
		}
	}
	return strings.Join(words, " ")
}
