// Package correct rewrites raw speech-to-text phrases using an ordered table
// of known error→correction mappings before any catalog matching happens.
//
// Voice transcripts of menu vocabulary are noisy in predictable ways: "fries"
// arrives as "prize", "zinger" as "singer", "iced tea" as "eyes tea". The
// corrector fixes these learned mishearings with two strategies, first success
// wins:
//
//  1. Exact match: the whole normalized phrase equals a rule pattern.
//  2. Substring match: rules are scanned in authored order and the first
//     pattern found inside the phrase is replaced, first occurrence only.
//
// Rule order is significant and must be preserved exactly as authored:
// overlapping patterns ("prize" vs "loaded prize") rely on the more specific
// rule appearing earlier. This is why rules live in a slice scanned linearly
// and never in a map.
//
// A Corrector is read-only after construction and safe for concurrent use.
package correct

import (
	"strings"

	"github.com/ordervox/ordervox/pkg/menu"
)

// Rule maps one known transcription error to its correction. Patterns and
// replacements are compared case-insensitively with whitespace collapsed.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Corrector applies an ordered rule table to raw phrases.
type Corrector struct {
	rules []Rule
	exact map[string]string
}

// New builds a Corrector from rules, preserving their order. Patterns and
// replacements are normalized (lowercased, whitespace collapsed) once at
// construction.
// When two rules share a pattern, the earlier one wins everywhere.
func New(rules []Rule) *Corrector {
	c := &Corrector{
		rules: make([]Rule, 0, len(rules)),
		exact: make(map[string]string, len(rules)),
	}
	for _, r := range rules {
		norm := Rule{
			Pattern:     normalize(r.Pattern),
			Replacement: normalize(r.Replacement),
		}
		if norm.Pattern == "" {
			continue
		}
		if _, dup := c.exact[norm.Pattern]; dup {
			continue
		}
		c.rules = append(c.rules, norm)
		c.exact[norm.Pattern] = norm.Replacement
	}
	return c
}

// Default returns a Corrector loaded with the built-in menu correction table.
func Default() *Corrector {
	return New(DefaultRules())
}

// Correct returns phrase with at most one correction applied.
//
// The normalized phrase is first tested for exact equality against every rule
// pattern; an exact hit returns the rule's replacement outright, which keeps
// short unambiguous phrases ("sprite") from being mangled by substring rules.
// Otherwise rules are scanned in order and the first pattern occurring inside
// the phrase is replaced at its first occurrence. When nothing matches, the
// normalized phrase is returned unchanged.
func (c *Corrector) Correct(phrase string) string {
	norm := normalize(phrase)
	if norm == "" {
		return norm
	}

	if repl, ok := c.exact[norm]; ok {
		return repl
	}

	for _, r := range c.rules {
		if strings.Contains(norm, r.Pattern) {
			return strings.Replace(norm, r.Pattern, r.Replacement, 1)
		}
	}

	return norm
}

// Rules returns a copy of the normalized rule table in scan order.
func (c *Corrector) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of active rules.
func (c *Corrector) Len() int {
	return len(c.rules)
}

// normalize matches the catalog's query normalization, so corrector output
// and resolver input agree on one canonical form.
func normalize(s string) string {
	return menu.Normalize(s)
}
