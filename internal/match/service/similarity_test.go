package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 0, levenshtein("abc", "abc"))
	assert.Equal(t, 4, levenshtein("", "abcd"))
}

func TestLevenshteinSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, levenshteinSimilarity("", ""))
	assert.Equal(t, 0.0, levenshteinSimilarity("abc", ""))
	assert.Equal(t, 1.0, levenshteinSimilarity("buro ag", "buro ag"))
	assert.InDelta(t, 1-3.0/7.0, levenshteinSimilarity("kitten", "sitting"), 1e-9)
}

func TestTokenSetSimilarity(t *testing.T) {
	// order and duplicates are ignored
	assert.Equal(t, 1.0, tokenSetSimilarity("buro ag", "ag buro"))
	assert.Equal(t, 1.0, tokenSetSimilarity("buro buro ag", "ag buro"))
	// one side a token subset of the other
	assert.Equal(t, 1.0, tokenSetSimilarity("buro", "buro offices berlin"))
	// disjoint
	assert.Equal(t, 0.0, tokenSetSimilarity("abc", "xyz"))
	// both empty
	assert.Equal(t, 1.0, tokenSetSimilarity("", ""))
	assert.Equal(t, 0.0, tokenSetSimilarity("abc", ""))
}

func TestVectorSpace(t *testing.T) {
	vs := fitVectorSpace([]string{"buro ag", "acme corporation"})

	q := vs.vector("buro ag")
	d := vs.vector("buro ag")
	assert.InDelta(t, 1.0, cosine(q, d), 1e-9)

	// out-of-vocabulary query embeds to the zero vector
	zero := vs.vector("unknown tokens only")
	assert.Equal(t, 0.0, cosine(zero, d))

	// no shared tokens, both in-vocabulary
	other := vs.vector("acme corporation")
	assert.Equal(t, 0.0, cosine(other, d))
}

func TestVectorSpaceEmptyCorpus(t *testing.T) {
	vs := fitVectorSpace(nil)
	assert.Equal(t, 0.0, cosine(vs.vector("anything"), vs.vector("else")))
}
