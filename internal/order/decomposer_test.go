package order_test

import (
	"testing"

	"github.com/ordervox/ordervox/internal/correct"
	"github.com/ordervox/ordervox/internal/order"
	"github.com/ordervox/ordervox/internal/resolve"
	"github.com/ordervox/ordervox/pkg/menu"
)

func newDecomposer(opts ...order.Option) *order.Decomposer {
	return order.New(correct.Default(), resolve.New(menu.Default()), opts...)
}

func TestDecompose_MultiItemUtterance(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	dec := d.Decompose("one pepperoni pizza, two sprites, and loaded fries")
	if len(dec.Lines) != 3 {
		t.Fatalf("Decompose: %d lines, want 3", len(dec.Lines))
	}

	want := []struct {
		item string
		qty  int
		sub  int64
	}{
		{"Pepperoni Pizza", 1, 1099},
		{"Sprite", 2, 198},
		{"Loaded Fries", 1, 349},
	}
	for i, w := range want {
		line := dec.Lines[i]
		if line.Status != order.StatusResolved {
			t.Errorf("line %d: status=%s, want resolved", i, line.Status)
			continue
		}
		if line.Resolved.Item.Name != w.item || line.Quantity != w.qty || line.Subtotal != w.sub {
			t.Errorf("line %d: %q x%d = %d, want %q x%d = %d",
				i, line.Resolved.Item.Name, line.Quantity, line.Subtotal, w.item, w.qty, w.sub)
		}
	}

	if dec.Total != 1646 {
		t.Errorf("Total=%d, want 1646", dec.Total)
	}
}

func TestDecompose_CorrectionFeedsResolution(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	// "cokes" is corrected to "coca colas" before resolution.
	dec := d.Decompose("2 cokes and a large fries")
	if len(dec.Lines) != 2 {
		t.Fatalf("Decompose: %d lines, want 2", len(dec.Lines))
	}

	first := dec.Lines[0]
	if first.Status != order.StatusResolved || first.Resolved.Item.Name != "Coca Cola" {
		t.Errorf("line 0: status=%s item=%v, want resolved Coca Cola", first.Status, first.Resolved)
	}
	if first.Quantity != 2 || first.Subtotal != 198 {
		t.Errorf("line 0: x%d = %d, want x2 = 198", first.Quantity, first.Subtotal)
	}

	second := dec.Lines[1]
	if second.Status != order.StatusResolved || second.Resolved.Item.Name != "Large Fries" {
		t.Errorf("line 1: status=%s item=%v, want resolved Large Fries", second.Status, second.Resolved)
	}
	if second.Quantity != 1 {
		t.Errorf("line 1: quantity=%d, want 1 from the article", second.Quantity)
	}

	if dec.Total != 397 {
		t.Errorf("Total=%d, want 397", dec.Total)
	}
}

func TestDecompose_QuantityWords(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	cases := []struct {
		utterance string
		qty       int
	}{
		{"a sprite", 1},
		{"an apple pie", 1},
		{"three sprites", 3},
		{"nineteen sprites", 19},
		{"twenty sprites", 20},
		{"7 sprites", 7},
	}
	for _, tc := range cases {
		dec := d.Decompose(tc.utterance)
		if len(dec.Lines) != 1 {
			t.Errorf("Decompose(%q): %d lines, want 1", tc.utterance, len(dec.Lines))
			continue
		}
		line := dec.Lines[0]
		if line.Status != order.StatusResolved {
			t.Errorf("Decompose(%q): status=%s, want resolved", tc.utterance, line.Status)
			continue
		}
		if line.Quantity != tc.qty {
			t.Errorf("Decompose(%q): quantity=%d, want %d", tc.utterance, line.Quantity, tc.qty)
		}
	}
}

func TestDecompose_QuantityExceeded(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	for _, utterance := range []string{"twenty five burgers", "twenty-five burgers", "25 burgers"} {
		dec := d.Decompose(utterance)
		if len(dec.Lines) != 1 {
			t.Fatalf("Decompose(%q): %d lines, want 1", utterance, len(dec.Lines))
		}
		line := dec.Lines[0]
		if line.Status != order.StatusQuantityExceeded {
			t.Errorf("Decompose(%q): status=%s, want quantity_exceeded", utterance, line.Status)
		}
		if line.Quantity != 25 {
			t.Errorf("Decompose(%q): quantity=%d, want the real count 25", utterance, line.Quantity)
		}
		if line.Resolved != nil || line.Subtotal != 0 {
			t.Errorf("Decompose(%q): resolved=%v subtotal=%d, want rejected without resolution",
				utterance, line.Resolved, line.Subtotal)
		}
		if dec.Total != 0 {
			t.Errorf("Decompose(%q): total=%d, want 0", utterance, dec.Total)
		}
	}
}

func TestDecompose_ZeroQuantityIsNotFound(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	dec := d.Decompose("zero burgers")
	if len(dec.Lines) != 1 {
		t.Fatalf("Decompose: %d lines, want 1", len(dec.Lines))
	}
	line := dec.Lines[0]
	if line.Status != order.StatusNotFound || line.Resolved != nil {
		t.Errorf("status=%s resolved=%v, want not_found with no resolution", line.Status, line.Resolved)
	}
}

func TestDecompose_DuplicateLinesMerge(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	dec := d.Decompose("one sprite and one sprite")
	if len(dec.Lines) != 1 {
		t.Fatalf("Decompose: %d lines, want duplicates merged into 1", len(dec.Lines))
	}
	line := dec.Lines[0]
	if line.Quantity != 2 || line.Subtotal != 198 {
		t.Errorf("merged line: x%d = %d, want x2 = 198", line.Quantity, line.Subtotal)
	}
	if dec.Total != 198 {
		t.Errorf("Total=%d, want 198", dec.Total)
	}
}

func TestDecompose_MergedQuantityOverCapIsRejected(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	// Each mention is under the cap; the merged per-item total is not.
	dec := d.Decompose("fifteen sprites and fifteen sprites")
	if len(dec.Lines) != 1 {
		t.Fatalf("Decompose: %d lines, want 1", len(dec.Lines))
	}
	line := dec.Lines[0]
	if line.Status != order.StatusQuantityExceeded {
		t.Errorf("merged line: status=%s, want quantity_exceeded", line.Status)
	}
	if line.Quantity != 30 {
		t.Errorf("merged line: quantity=%d, want 30", line.Quantity)
	}
	if line.Resolved != nil || line.Subtotal != 0 || dec.Total != 0 {
		t.Errorf("merged line: resolved=%v subtotal=%d total=%d, want rejected with no subtotal",
			line.Resolved, line.Subtotal, dec.Total)
	}
}

func TestDecompose_MixedOutcomesKeepUtteranceOrder(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	dec := d.Decompose("two sprites and a flying carpet and fries")
	if len(dec.Lines) != 3 {
		t.Fatalf("Decompose: %d lines, want 3", len(dec.Lines))
	}

	if got := dec.Lines[0].Status; got != order.StatusResolved {
		t.Errorf("line 0: status=%s, want resolved", got)
	}
	if got := dec.Lines[1].Status; got != order.StatusNotFound {
		t.Errorf("line 1: status=%s, want not_found", got)
	}
	last := dec.Lines[2]
	if last.Status != order.StatusAmbiguous {
		t.Errorf("line 2: status=%s, want ambiguous", last.Status)
	}
	if len(last.SizeGroup) != 2 {
		t.Errorf("line 2: size group has %d items, want the two fries variants", len(last.SizeGroup))
	}

	// Only the resolved sprite line contributes to the total.
	if dec.Total != 198 {
		t.Errorf("Total=%d, want 198", dec.Total)
	}
}

func TestDecompose_EmptyUtterance(t *testing.T) {
	t.Parallel()

	d := newDecomposer()

	for _, utterance := range []string{"", "   ", "and, and plus"} {
		dec := d.Decompose(utterance)
		if len(dec.Lines) != 0 || dec.Total != 0 {
			t.Errorf("Decompose(%q): %d lines total=%d, want empty", utterance, len(dec.Lines), dec.Total)
		}
	}
}

func TestDecompose_MaxQuantityOption(t *testing.T) {
	t.Parallel()

	d := newDecomposer(order.WithMaxQuantity(5))
	if got := d.MaxQuantity(); got != 5 {
		t.Fatalf("MaxQuantity()=%d, want 5", got)
	}

	dec := d.Decompose("6 sprites")
	if got := dec.Lines[0].Status; got != order.StatusQuantityExceeded {
		t.Errorf("Decompose at cap 5: status=%s, want quantity_exceeded", got)
	}

	// Values below 1 fall back to the default.
	d = newDecomposer(order.WithMaxQuantity(0))
	if got := d.MaxQuantity(); got != order.DefaultMaxQuantity {
		t.Errorf("MaxQuantity()=%d after invalid option, want default %d", got, order.DefaultMaxQuantity)
	}
}
