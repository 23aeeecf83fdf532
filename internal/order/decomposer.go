// Package order decomposes a multi-item spoken utterance into order-line
// proposals: one per mentioned item, each carrying a quantity, the corrected
// phrase, and the resolution outcome.
//
// "one pepperoni pizza, two sprites, and loaded fries" becomes three
// proposals with quantities 1, 2, and 1. Every segment is passed through the
// phonetic corrector and then the fuzzy resolver; segments that fail to
// resolve or hit a size-ambiguous group are kept in the output with their
// state flagged, so the caller can ask a targeted follow-up per segment
// instead of discarding the whole utterance.
//
// A Decomposer is read-only after construction and safe for concurrent use.
package order

import (
	"regexp"
	"strings"

	"github.com/ordervox/ordervox/internal/correct"
	"github.com/ordervox/ordervox/internal/resolve"
	"github.com/ordervox/ordervox/pkg/menu"
)

// DefaultMaxQuantity is the largest per-line quantity accepted before a
// segment is rejected with [StatusQuantityExceeded].
const DefaultMaxQuantity = 20

// Status classifies the outcome of resolving one segment.
type Status string

const (
	// StatusResolved means the segment matched a catalog item.
	StatusResolved Status = "resolved"

	// StatusNotFound means the segment produced no candidate, or its
	// quantity could not be parsed to a positive count.
	StatusNotFound Status = "not_found"

	// StatusAmbiguous means the segment named a size group without a size
	// qualifier; the caller must disambiguate using [LineProposal.SizeGroup].
	StatusAmbiguous Status = "ambiguous"

	// StatusQuantityExceeded means the requested quantity was over the cap.
	// The segment is rejected rather than silently truncated so the caller
	// can tell the customer about the limit.
	StatusQuantityExceeded Status = "quantity_exceeded"
)

// LineProposal is one decomposed order line.
type LineProposal struct {
	// Quantity is the parsed count for this line. Defaults to 1 when the
	// segment names no quantity.
	Quantity int

	// RawSegment is the segment text exactly as split from the utterance.
	RawSegment string

	// Corrected is the item phrase after quantity extraction and phonetic
	// correction. Empty when the quantity was rejected before resolution.
	Corrected string

	// Resolved is the winning candidate, nil unless Status is StatusResolved.
	Resolved *resolve.Candidate

	// SizeGroup holds the variants needing disambiguation when Status is
	// StatusAmbiguous.
	SizeGroup []menu.Item

	// Status classifies this line's outcome.
	Status Status

	// Subtotal is Quantity times the resolved item price, zero otherwise.
	Subtotal int64
}

// Decomposition is the full result of one Decompose call.
type Decomposition struct {
	// Lines are the proposals in the order the items were mentioned, with
	// duplicate resolutions of the same item merged into one line.
	Lines []LineProposal

	// Total is the sum of all resolved line subtotals, in whole rupees.
	Total int64
}

// Option is a functional option for configuring a [Decomposer].
type Option func(*Decomposer)

// WithMaxQuantity overrides the per-line quantity cap. Values below 1 are
// ignored.
func WithMaxQuantity(max int) Option {
	return func(d *Decomposer) {
		if max >= 1 {
			d.maxQuantity = max
		}
	}
}

// Decomposer splits utterances into segments and resolves each one.
type Decomposer struct {
	corrector   *correct.Corrector
	resolver    *resolve.Resolver
	maxQuantity int
}

// New returns a Decomposer using corrector and resolver for per-segment
// resolution.
func New(corrector *correct.Corrector, resolver *resolve.Resolver, opts ...Option) *Decomposer {
	d := &Decomposer{
		corrector:   corrector,
		resolver:    resolver,
		maxQuantity: DefaultMaxQuantity,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// MaxQuantity returns the active per-line quantity cap.
func (d *Decomposer) MaxQuantity() int {
	return d.maxQuantity
}

// segmentSplit separates item-bearing clauses: commas, "and", "plus", and "&"
// all act as separators in spoken orders.
var segmentSplit = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b|\bplus\b)\s*`)

// Decompose splits utterance into quantity+phrase segments, resolves each
// through the corrector and resolver, merges lines that landed on the same
// catalog item, and totals the resolved subtotals. It is total over arbitrary
// input: an unparseable utterance yields an empty Decomposition.
func (d *Decomposer) Decompose(utterance string) Decomposition {
	var out Decomposition

	for _, seg := range segmentSplit.Split(strings.TrimSpace(utterance), -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out.Lines = append(out.Lines, d.resolveSegment(seg))
	}

	out.Lines = mergeDuplicates(out.Lines, d.maxQuantity)

	for _, line := range out.Lines {
		out.Total += line.Subtotal
	}
	return out
}

// resolveSegment parses one segment's quantity and phrase and resolves the
// phrase against the catalog.
func (d *Decomposer) resolveSegment(seg string) LineProposal {
	line := LineProposal{RawSegment: seg, Quantity: 1}

	qty, phrase, explicit := splitQuantity(seg)
	if explicit {
		line.Quantity = qty
	}

	if explicit && qty <= 0 {
		// "zero sprites" is a parse failure for this segment, not an order.
		line.Status = StatusNotFound
		return line
	}
	if qty > d.maxQuantity {
		line.Status = StatusQuantityExceeded
		return line
	}
	if phrase == "" {
		line.Status = StatusNotFound
		return line
	}

	line.Corrected = d.corrector.Correct(phrase)
	res := d.resolver.Resolve(line.Corrected)

	switch {
	case res.Ambiguous():
		line.Status = StatusAmbiguous
		line.SizeGroup = res.SizeGroup
	case res.Found():
		best := res.Candidates[0]
		line.Status = StatusResolved
		line.Resolved = &best
		line.Subtotal = best.Item.Price * int64(line.Quantity)
	default:
		line.Status = StatusNotFound
	}
	return line
}

// mergeDuplicates folds lines that resolved to the same catalog item into the
// earliest mention, summing quantities and subtotals. A merged quantity that
// overruns the cap converts the line into a quantity-exceeded rejection; the
// cap applies to the per-item total, not to how the customer phrased it.
func mergeDuplicates(lines []LineProposal, maxQuantity int) []LineProposal {
	merged := make([]LineProposal, 0, len(lines))
	byItem := make(map[int]int)

	for _, line := range lines {
		if line.Status != StatusResolved {
			merged = append(merged, line)
			continue
		}
		id := line.Resolved.Item.ID
		at, seen := byItem[id]
		if !seen {
			byItem[id] = len(merged)
			merged = append(merged, line)
			continue
		}

		prev := &merged[at]
		prev.Quantity += line.Quantity
		if prev.Status != StatusResolved {
			continue
		}
		prev.Subtotal += line.Subtotal
		if prev.Quantity > maxQuantity {
			prev.Status = StatusQuantityExceeded
			prev.Resolved = nil
			prev.Subtotal = 0
		}
	}
	return merged
}
