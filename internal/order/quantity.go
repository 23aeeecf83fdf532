package order

import (
	"strconv"
	"strings"
)

// unitWords are spoken counts below twenty, plus the articles customers use
// for a single item.
var unitWords = map[string]int{
	"a": 1, "an": 1,
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

// tensWords are spoken multiples of ten. Values above the quantity cap still
// parse; the decomposer needs the real number to report "twenty five is too
// many" rather than failing the segment outright.
var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// splitQuantity extracts a leading quantity from a segment and returns the
// quantity, the remaining item phrase, and whether a quantity was explicitly
// present. Without an explicit quantity it returns (1, segment, false).
//
// Accepted forms, always at the start of the segment:
//
//	numerals            "2 sprites", "25 burgers"
//	unit words          "two sprites", "a sprite"
//	tens words          "twenty burgers"
//	tens + unit words   "twenty five burgers"
//	hyphenated compound "twenty-five burgers"
func splitQuantity(seg string) (qty int, phrase string, explicit bool) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(seg)))
	if len(words) == 0 {
		return 1, "", false
	}

	head := words[0]

	// Numeral prefix.
	if n, err := strconv.Atoi(head); err == nil {
		return n, strings.Join(words[1:], " "), true
	}

	// Hyphenated compound ("twenty-five").
	if tens, unit, ok := strings.Cut(head, "-"); ok {
		if t, tok := tensWords[tens]; tok {
			if u, uok := unitWords[unit]; uok && u >= 1 && u <= 9 {
				return t + u, strings.Join(words[1:], " "), true
			}
		}
	}

	// Tens word, optionally followed by a unit word ("twenty five").
	if t, ok := tensWords[head]; ok {
		if len(words) > 1 {
			if u, uok := unitWords[words[1]]; uok && u >= 1 && u <= 9 {
				return t + u, strings.Join(words[2:], " "), true
			}
		}
		return t, strings.Join(words[1:], " "), true
	}

	// Plain unit word.
	if u, ok := unitWords[head]; ok {
		return u, strings.Join(words[1:], " "), true
	}

	return 1, strings.Join(words, " "), false
}
