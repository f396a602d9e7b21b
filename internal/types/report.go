package types

// ScoreReport is the outcome of scoring a resume keyword set against a job
// keyword set. It is derived entirely from the match results and the input
// keyword sets and is never mutated after construction.
type ScoreReport struct {
	// Score is the compatibility score in [0, 100], rounded to one decimal.
	Score float64 `json:"score"`
	// Matches lists the resume keywords that matched a job keyword.
	Matches []string `json:"matches"`
	// MissingKeywords lists job keywords with no match, in lexicographic order.
	MissingKeywords []string `json:"missing_keywords"`
	// Suggestions holds one improvement hint per missing keyword.
	Suggestions []string `json:"suggestions"`
}
