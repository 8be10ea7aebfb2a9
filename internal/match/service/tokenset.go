package service

import (
	"sort"
	"strings"
)

// tokenSetSimilarity compares the two strings as unordered token sets:
// the shared tokens are joined into a sorted base string and compared
// against base+remainder for each side, taking the best of the three
// pairwise similarities. Word order and duplicates do not matter.
func tokenSetSimilarity(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, onlyA, onlyB []string
	for tok := range ta {
		if tb[tok] {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if !ta[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(inter, " ")
	sa := joinNonEmpty(base, strings.Join(onlyA, " "))
	sb := joinNonEmpty(base, strings.Join(onlyB, " "))

	best := levenshteinSimilarity(base, sa)
	if s := levenshteinSimilarity(base, sb); s > best {
		best = s
	}
	if s := levenshteinSimilarity(sa, sb); s > best {
		best = s
	}
	return best
}

func tokenSet(s string) map[string]bool {
	m := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		m[tok] = true
	}
	return m
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
