package collation

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares module specifiers the way a natural-sort collator does:
// runs of digits compare by numeric value, everything else by locale order.
type Collator struct {
	collator *collate.Collator
}

// New creates a Collator. The underlying x/text collator is not safe for
// concurrent use, so each caller owns its own instance.
func New() *Collator {
	return &Collator{
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Compare orders a and b naturally, returning -1, 0, or +1. Both strings are
// segmented into alternating digit and non-digit runs; digit runs compare by
// numeric value (so "file2" sorts before "file10"), other runs by locale
// order, case-insensitively.
func (cl *Collator) Compare(a, b string) int {
	for a != "" && b != "" {
		aRun, aDigits, aRest := nextRun(a)
		bRun, bDigits, bRest := nextRun(b)

		var c int
		if aDigits && bDigits {
			c = compareNumeric(aRun, bRun)
		} else {
			c = cl.collator.CompareString(aRun, bRun)
		}
		if c != 0 {
			return c
		}

		a, b = aRest, bRest
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// CompareLexical orders a and b by plain locale-aware lexicographic
// comparison, with no numeric treatment of digit runs.
func (cl *Collator) CompareLexical(a, b string) int {
	return cl.collator.CompareString(a, b)
}

// nextRun splits off the leading digit or non-digit run of s. s must be
// non-empty.
func nextRun(s string) (run string, digits bool, rest string) {
	digits = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], digits, s[i:]
}

// compareNumeric compares two digit runs by numeric value. Runs with the
// same value but different text ("01" vs "1") fall back to comparing the
// raw runs so the ordering stays total.
func compareNumeric(a, b string) int {
	at := strings.TrimLeft(a, "0")
	bt := strings.TrimLeft(b, "0")
	if len(at) != len(bt) {
		if len(at) < len(bt) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(at, bt); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
