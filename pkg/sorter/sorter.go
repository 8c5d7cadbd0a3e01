package sorter

import (
	"sort"
	"unicode/utf8"

	"github.com/coltonb-mixpanel/import-sorter/pkg/collation"
)

// LengthMode selects ordering by specifier length in place of natural order.
type LengthMode int

const (
	LengthNone LengthMode = iota
	LengthAscending
	LengthDescending
)

// String returns the configuration spelling of the mode.
func (m LengthMode) String() string {
	switch m {
	case LengthAscending:
		return "ascending"
	case LengthDescending:
		return "descending"
	default:
		return "none"
	}
}

// Options describes how to order one group of imports. Options are assumed
// to be validated by the configuration loader before they reach the sorter.
type Options struct {
	Enabled        bool       // when false, input order is the output order
	NamespaceFirst bool       // partition namespace-style imports ahead of the rest
	LengthMode     LengthMode // length-based ordering instead of natural order
}

// Sort returns the records of one group in their final order. The input
// slice and its records are never mutated; the result is a fresh slice
// holding a permutation of the same records. Exact ties keep their relative
// input order.
func Sort(records []Import, opts Options) []Import {
	out := append([]Import(nil), records...)
	if !opts.Enabled || len(out) < 2 {
		return out
	}

	cmp := keyOrder(opts.LengthMode)

	if !opts.NamespaceFirst {
		sortStable(out, cmp)
		return out
	}

	namespace, rest := partitionNamespace(out)
	sortStable(namespace, cmp)
	sortStable(rest, cmp)
	return append(namespace, rest...)
}

// keyOrder selects the base comparison for the active length mode. Each call
// owns its own collator; collators are not safe for concurrent use.
func keyOrder(mode LengthMode) func(a, b Import) int {
	cl := collation.New()
	switch mode {
	case LengthAscending:
		return byLength(cl, 1)
	case LengthDescending:
		return byLength(cl, -1)
	default:
		return func(a, b Import) int {
			return cl.Compare(a.Source, b.Source)
		}
	}
}

// byLength orders by specifier length, counted in runes, in the given
// direction. Equal lengths always tie-break by ascending lexicographic
// order; the tie-break direction does not invert with the primary direction.
func byLength(cl *collation.Collator, direction int) func(a, b Import) int {
	return func(a, b Import) int {
		if d := utf8.RuneCountInString(a.Source) - utf8.RuneCountInString(b.Source); d != 0 {
			return direction * d
		}
		return cl.CompareLexical(a.Source, b.Source)
	}
}

func sortStable(records []Import, cmp func(a, b Import) int) {
	sort.SliceStable(records, func(i, j int) bool {
		return cmp(records[i], records[j]) < 0
	})
}

// partitionNamespace splits records into namespace-style imports and the
// rest, preserving relative input order within each part.
func partitionNamespace(records []Import) (namespace, rest []Import) {
	for _, imp := range records {
		if imp.IsNamespace() {
			namespace = append(namespace, imp)
		} else {
			rest = append(rest, imp)
		}
	}
	return namespace, rest
}
