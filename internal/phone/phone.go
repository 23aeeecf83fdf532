// Package phone normalizes spoken or typed phone numbers into digit strings.
//
// Customers dictate phone numbers in every imaginable shape: "555-1234",
// "five five five one two three four", "double five triple six", "(042) 35.71".
// Normalize folds all of these into bare digits and reports whether the input
// reduced cleanly. It never panics or errors on malformed input; invalidity
// is a value, and the caller decides whether to re-prompt. Length and format
// policy (country rules, minimum digits) is deliberately left to the caller.
package phone

import "strings"

// Normalized is the result of normalizing one phone utterance.
type Normalized struct {
	// Digits contains only the characters 0-9, in spoken order.
	Digits string

	// Valid is true when the input was non-empty and reduced entirely to
	// digits. Any residual token that maps to no digit marks the whole
	// result invalid.
	Valid bool
}

// wordDigits maps spoken digit words to their character. "oh" and "o" are
// the usual spoken aliases for zero.
var wordDigits = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"oh": "0", "o": "0",
}

// formatting strips the punctuation people use when writing numbers down.
var formatting = strings.NewReplacer("-", " ", "(", "", ")", "", ".", " ")

// Normalize converts text into a digit-only phone number.
//
// Formatting characters (hyphens, parentheses, dots) are stripped first, then
// the remaining words are mapped: digit words become digits, "double X" and
// "triple X" expand to the digit repeated two or three times, and numeric
// runs pass through as-is. Any token that survives none of these mappings
// invalidates the result.
func Normalize(text string) Normalized {
	words := strings.Fields(strings.ToLower(formatting.Replace(text)))

	var b strings.Builder
	clean := true

	for i := 0; i < len(words); i++ {
		w := words[i]

		// Multipliers apply to a single following digit only; "double 55"
		// leaves the run untouched.
		if n := repeatCount(w); n > 0 && i+1 < len(words) {
			if d, ok := digitRun(words[i+1]); ok && len(d) == 1 {
				b.WriteString(strings.Repeat(d, n))
				i++
				continue
			}
		}

		if d, ok := digitRun(w); ok {
			b.WriteString(d)
			continue
		}

		clean = false
	}

	digits := b.String()
	return Normalized{
		Digits: digits,
		Valid:  clean && digits != "",
	}
}

// repeatCount returns how many times a multiplier word repeats the following
// digit, or 0 when w is not a multiplier.
func repeatCount(w string) int {
	switch w {
	case "double":
		return 2
	case "triple":
		return 3
	}
	return 0
}

// digitRun maps w to its digit representation: a spoken digit word or a run
// of numeric characters.
func digitRun(w string) (string, bool) {
	if d, ok := wordDigits[w]; ok {
		return d, true
	}
	for _, r := range w {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return w, w != ""
}
