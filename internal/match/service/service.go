package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"match-service/internal/match/model"
)

// ErrEmptyQuery is returned for empty or whitespace-only queries.
var ErrEmptyQuery = errors.New("query must not be empty")

// ErrInvalidTopN is returned when a caller asks for fewer than one match.
var ErrInvalidTopN = errors.New("top_n must be at least 1")

// Weights are the aggregation coefficients for the three similarity
// scores. Each must be non-negative; by convention they sum to 1.0 —
// that convention is validated by the configuration layer, not here.
type Weights struct {
	Tfidf       float64
	Levenshtein float64
	TokenSet    float64
}

type entity struct {
	raw  string
	norm string
	vec  []float64
}

// Engine ranks canonical entities by similarity to a query. All state is
// built at construction and read-only afterwards, so one Engine may be
// shared by any number of concurrent callers.
type Engine struct {
	entities []entity
	space    *vectorSpace
	weights  Weights
}

// NewEngine builds an engine over the given canonical names. Duplicates
// (by exact raw string) are dropped, first occurrence wins, order is
// preserved. An empty list is a valid degenerate engine that matches
// nothing.
func NewEngine(names []string, w Weights) (*Engine, error) {
	for _, v := range []float64{w.Tfidf, w.Levenshtein, w.TokenSet} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("weights must be non-negative numbers, got %+v", w)
		}
	}

	seen := make(map[string]bool, len(names))
	ents := make([]entity, 0, len(names))
	docs := make([]string, 0, len(names))
	for _, raw := range names {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		n := preprocess(raw)
		ents = append(ents, entity{raw: raw, norm: n})
		docs = append(docs, n)
	}

	space := fitVectorSpace(docs)
	for i := range ents {
		ents[i].vec = space.vector(ents[i].norm)
	}

	return &Engine{entities: ents, space: space, weights: w}, nil
}

// Size reports the number of canonical entities.
func (e *Engine) Size() int { return len(e.entities) }

// Match scores the query against every canonical entity and returns the
// best candidate plus up to topN-1 alternatives, sorted by descending
// confidence. Ties keep construction order. topN larger than the
// canonical set is clamped.
func (e *Engine) Match(query string, topN int) (model.MatchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return model.MatchResult{}, ErrEmptyQuery
	}
	if topN < 1 {
		return model.MatchResult{}, ErrInvalidTopN
	}

	res := model.MatchResult{Query: trimmed, Alternatives: []model.Candidate{}}
	if len(e.entities) == 0 {
		return res, nil
	}
	if topN > len(e.entities) {
		topN = len(e.entities)
	}

	qnorm := preprocess(query)
	qvec := e.space.vector(qnorm)

	cands := make([]model.Candidate, len(e.entities))
	for i, ent := range e.entities {
		s := model.ScoreSet{
			Tfidf:       cosine(qvec, ent.vec),
			Levenshtein: levenshteinSimilarity(qnorm, ent.norm),
			TokenSet:    tokenSetSimilarity(qnorm, ent.norm),
		}
		cands[i] = model.Candidate{
			Entity: ent.raw,
			Confidence: clamp01(e.weights.Tfidf*s.Tfidf +
				e.weights.Levenshtein*s.Levenshtein +
				e.weights.TokenSet*s.TokenSet),
			Scores: s,
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Confidence > cands[j].Confidence
	})

	top := cands[0]
	res.TopMatch = &top
	if topN > 1 {
		res.Alternatives = append(res.Alternatives, cands[1:topN]...)
	}
	return res, nil
}

// MatchBatch runs Match independently for every input. Results keep the
// input order; a failing input (e.g. a blank name) yields an item with
// Error set and never aborts the rest.
func (e *Engine) MatchBatch(names []string) []model.BatchItem {
	out := make([]model.BatchItem, 0, len(names))
	for _, name := range names {
		item := model.BatchItem{Input: strings.TrimSpace(name)}

		res, err := e.Match(name, 1)
		switch {
		case err != nil:
			item.Error = err.Error()
		case res.TopMatch != nil:
			m := res.TopMatch.Entity
			item.Match = &m
			item.Confidence = res.TopMatch.Confidence
			item.Scores = res.TopMatch.Scores
		}
		out = append(out, item)
	}
	return out
}
