package menu

import (
	"fmt"
	"strings"
)

// categoryOrder fixes the rendering order of menu sections.
var categoryOrder = []Category{
	CategoryPizza,
	CategoryBurger,
	CategorySandwich,
	CategoryFriedChicken,
	CategoryFries,
	CategoryDrinks,
	CategorySweets,
}

// CategoryGroups returns the menu categories organised into coarse ordering
// stages, in the order a server would walk a customer through them.
func CategoryGroups() map[string][]Category {
	return map[string][]Category{
		"main_items": {CategoryPizza, CategoryBurger, CategorySandwich, CategoryFriedChicken},
		"sides":      {CategoryFries},
		"drinks":     {CategoryDrinks},
		"sweets":     {CategorySweets},
	}
}

// Text renders the whole catalog as display text with one bulleted line per
// item, grouped by category.
func (c *Catalog) Text() string {
	var b strings.Builder
	b.WriteString("Our Menu:\n\n")
	for _, cat := range categoryOrder {
		items := c.InCategory(cat)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", cat.DisplayName())
		for _, it := range items {
			fmt.Fprintf(&b, "  - %s - Rs. %d\n", it.Name, it.Price)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SpeechText renders the catalog as TTS-friendly text: no markup, currency
// spelled out.
func (c *Catalog) SpeechText() string {
	var b strings.Builder
	b.WriteString("Our Menu:\n\n")
	for _, cat := range categoryOrder {
		items := c.InCategory(cat)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", cat.DisplayName())
		for _, it := range items {
			fmt.Fprintf(&b, "%s - %d rupees\n", it.Name, it.Price)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CategoryDescription renders the items of one category as TTS-friendly text.
// Unknown or empty categories yield a polite not-available line so the result
// can be spoken verbatim.
func (c *Catalog) CategoryDescription(cat Category) string {
	items := c.InCategory(cat)
	if len(items) == 0 {
		return fmt.Sprintf("I apologize, but we don't have %s available at the moment.", cat.DisplayName())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", cat.DisplayName())
	for _, it := range items {
		fmt.Fprintf(&b, "%s - %d rupees\n", it.Name, it.Price)
	}
	return b.String()
}
