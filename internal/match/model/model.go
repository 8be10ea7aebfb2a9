package model

// ScoreSet holds the per-algorithm similarity scores for one
// (query, entity) pair. All values are in [0,1].
type ScoreSet struct {
	Tfidf       float64 `json:"tfidf"`
	Levenshtein float64 `json:"levenshtein"`
	TokenSet    float64 `json:"token_set"`
}

// Candidate is one canonical entity scored against a query.
type Candidate struct {
	Entity     string   `json:"entity"`
	Confidence float64  `json:"confidence"`
	Scores     ScoreSet `json:"scores"`
}

// MatchResult is the ranked outcome for a single query. TopMatch is nil
// only when the canonical set is empty.
type MatchResult struct {
	Query        string      `json:"query"`
	TopMatch     *Candidate  `json:"top_match"`
	Alternatives []Candidate `json:"alternatives"`
}

// BatchItem is the per-input outcome of a batch run. Items keep the input
// order; a failed input carries Error and a nil Match instead of aborting
// the rest of the batch.
type BatchItem struct {
	Input      string   `json:"input"`
	Match      *string  `json:"match"`
	Confidence float64  `json:"confidence"`
	Scores     ScoreSet `json:"scores"`
	Error      string   `json:"error,omitempty"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"top_n,omitempty"` // 0 = use the configured default
}
