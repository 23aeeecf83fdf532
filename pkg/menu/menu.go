// Package menu defines the static menu catalog consumed by the resolution
// engine: items, categories, size variants, and size groups.
//
// A [Catalog] is immutable after construction. All lookup methods are
// read-only and safe for concurrent use. Absence is never an error; lookups
// that find nothing return empty slices or a false second return.
//
// Size groups deserve a note: several items share a base name and differ only
// by a size qualifier ("Regular Fries" / "Large Fries"). The catalog detects
// these at construction time by stripping leading and trailing size qualifiers
// from item names and grouping on the remainder. Resolvers use
// [Catalog.SizeGroup] to ask "does this base name need disambiguation?"
// without carrying any size-specific string handling themselves.
package menu

import "strings"

// Category identifies a menu section.
type Category string

const (
	CategoryPizza        Category = "pizza"
	CategoryBurger       Category = "burger"
	CategorySandwich     Category = "sandwich"
	CategoryFriedChicken Category = "fried_chicken"
	CategoryFries        Category = "fries"
	CategoryDrinks       Category = "drinks"
	CategorySweets       Category = "sweets"
)

// IsValid reports whether c is a recognised category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPizza, CategoryBurger, CategorySandwich, CategoryFriedChicken,
		CategoryFries, CategoryDrinks, CategorySweets:
		return true
	}
	return false
}

// DisplayName returns the category name suitable for text or speech output
// (e.g., "fried_chicken" → "Fried Chicken").
func (c Category) DisplayName() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Size is an item's size variant within a size group.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// IsValid reports whether s is a recognised size.
func (s Size) IsValid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// Item is a single orderable menu entry. Items are plain values and are never
// mutated after the catalog is built.
type Item struct {
	// ID uniquely identifies the item within the catalog.
	ID int `yaml:"id"`

	// Name is the customer-facing item name, e.g. "Pepperoni Pizza".
	Name string `yaml:"name"`

	// Price is the item price in whole rupees.
	Price int64 `yaml:"price"`

	// Category is the menu section this item belongs to.
	Category Category `yaml:"category"`

	// Size is the size variant when the item belongs to a size group.
	// Empty for items without size variants.
	Size Size `yaml:"size,omitempty"`

	// Description is a short human-readable blurb.
	Description string `yaml:"description,omitempty"`
}

// Catalog is the immutable registry of menu items. Construct with [New] or
// use [Default] for the built-in menu.
type Catalog struct {
	items  []Item
	byID   map[int]Item
	groups map[string][]Item
}

// New builds a Catalog from items. Item order is preserved and is significant:
// lookup results and tie-breaks follow insertion order. The caller must not
// modify items after the call.
func New(items []Item) *Catalog {
	c := &Catalog{
		items:  items,
		byID:   make(map[int]Item, len(items)),
		groups: make(map[string][]Item),
	}
	for _, it := range items {
		c.byID[it.ID] = it
		base := BaseName(it.Name)
		c.groups[base] = append(c.groups[base], it)
	}
	return c
}

// Items returns all catalog items in insertion order. The returned slice is a
// copy; callers may modify it freely.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// InCategory returns all items in the given category, in insertion order.
func (c *Catalog) InCategory(cat Category) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// ByID returns the item with the given ID.
func (c *Catalog) ByID(id int) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// SizeGroup returns all items whose normalized base name equals
// BaseName(baseName), in insertion order. A result with more than one item
// means the base name is size-ambiguous and the caller must disambiguate.
func (c *Catalog) SizeGroup(baseName string) []Item {
	group := c.groups[BaseName(baseName)]
	out := make([]Item, len(group))
	copy(out, group)
	return out
}

// sizeQualifiers maps spoken size words to the Size they select.
// "regular" is a spoken alias for the medium variant.
var sizeQualifiers = map[string]Size{
	"small":   SizeSmall,
	"medium":  SizeMedium,
	"regular": SizeMedium,
	"large":   SizeLarge,
}

// Normalize lowercases, trims, and collapses internal whitespace in a name or
// query so that comparisons are insensitive to casing and spacing noise.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// BaseName returns the normalized name with any leading or trailing size
// qualifier removed. "Large Fries" and "Regular Fries" both yield "fries";
// names without a qualifier are returned normalized but otherwise unchanged.
func BaseName(name string) string {
	words := strings.Fields(Normalize(name))
	if len(words) > 1 {
		if _, ok := sizeQualifiers[words[0]]; ok {
			words = words[1:]
		} else if _, ok := sizeQualifiers[words[len(words)-1]]; ok {
			words = words[:len(words)-1]
		}
	}
	return strings.Join(words, " ")
}

// SizeQualifier reports the size variant explicitly named in query, if any.
// It scans every word, so "large wings" and "wings, large please" both
// resolve to [SizeLarge].
func SizeQualifier(query string) (Size, bool) {
	for _, w := range strings.Fields(Normalize(query)) {
		if sz, ok := sizeQualifiers[w]; ok {
			return sz, true
		}
	}
	return "", false
}
