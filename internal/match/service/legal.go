package service

import "strings"

// legalTerms maps spelled-out or dotted legal-suffix tokens to one
// standard short form. Keys and values are already in normalized form;
// every value is a fixed point, so the rewrite is idempotent.
var legalTerms = map[string]string{
	"g.m.b.h":            "gmbh",
	"g.m.b.h.":           "gmbh",
	"aktiengesellschaft": "ag",
	"limited":            "ltd",
	"ltd.":               "ltd",
	"incorporated":       "inc",
	"inc.":               "inc",
	"corporation":        "corp",
	"corp.":              "corp",
	"co.":                "co",
}

// standardizeLegalTerms rewrites legal-suffix spelling variants
// ("Incorporated", "Corp.", "G.m.b.H") token by token so that
// semantically identical company forms compare equal.
func standardizeLegalTerms(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	changed := false
	for i, w := range words {
		if std, ok := legalTerms[w]; ok {
			words[i] = std
			changed = true
		}
	}
	if !changed {
		return s
	}
	return strings.Join(words, " ")
}

// preprocess is the comparison form used for scoring: normalized text
// with legal suffixes standardized. Applied symmetrically to canonical
// entities and queries.
func preprocess(s string) string {
	return standardizeLegalTerms(Normalize(s))
}
