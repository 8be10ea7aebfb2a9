package service

import (
	"math"
	"strings"
)

// vectorSpace is a TF-IDF model fit once over the normalized canonical
// corpus. Vocabulary is every whitespace token; idf is smoothed
// (ln((1+n)/(1+df)) + 1) and vectors are l2-normalized, so cosine
// similarity reduces to a dot product. Immutable after fit.
type vectorSpace struct {
	vocab map[string]int // token -> column
	idf   []float64
}

func fitVectorSpace(docs []string) *vectorSpace {
	vs := &vectorSpace{vocab: make(map[string]int)}

	df := make([]int, 0)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range strings.Fields(doc) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			col, ok := vs.vocab[tok]
			if !ok {
				col = len(vs.vocab)
				vs.vocab[tok] = col
				df = append(df, 0)
			}
			df[col]++
		}
	}

	n := float64(len(docs))
	vs.idf = make([]float64, len(df))
	for col, d := range df {
		vs.idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return vs
}

// vector embeds a normalized string into the space. Out-of-vocabulary
// tokens contribute nothing; an all-zero embedding stays all-zero.
func (vs *vectorSpace) vector(s string) []float64 {
	v := make([]float64, len(vs.vocab))
	for _, tok := range strings.Fields(s) {
		if col, ok := vs.vocab[tok]; ok {
			v[col] += vs.idf[col]
		}
	}
	var sq float64
	for _, x := range v {
		sq += x * x
	}
	if sq > 0 {
		inv := 1 / math.Sqrt(sq)
		for i := range v {
			v[i] *= inv
		}
	}
	return v
}

// cosine of two l2-normalized vectors; 0 when either is all-zero.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return clamp01(dot)
}
