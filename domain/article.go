package domain

import (
	"time"
)

// ArticleImage is a single image collected from an article page.
type ArticleImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Article is the normalized representation of a fetched news article.
// Immutable once constructed; callers decide persistence.
type Article struct {
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Source      string         `json:"source"`
	URL         string         `json:"url"`
	PublishedAt *time.Time     `json:"publish_date,omitempty"`
	Author      string         `json:"author,omitempty"`
	Images      []ArticleImage `json:"images,omitempty"`
	TopImage    string         `json:"top_image,omitempty"`

	// Cached marks an article served from the cache instead of the network.
	// Transient, never persisted.
	Cached bool `json:"-"`
}

// CredibilityLabel is the human-readable classification of a score.
type CredibilityLabel struct {
	Text    string `json:"text"`
	Color   string `json:"color"`
	Details string `json:"details"`
}

// ScoreFactors holds the bounded per-factor scores (0..100) that feed the
// weighted combination.
type ScoreFactors struct {
	SourceScore          float64 `json:"sourceScore"`
	TitleScore           float64 `json:"titleScore"`
	SentimentBalance     float64 `json:"sentimentBalance"`
	ExtremeLanguageScore float64 `json:"extremeLanguageScore"`
	ContentLengthScore   float64 `json:"contentLengthScore"`
}

// AnalysisDetails is the explanation payload returned alongside a score.
// It is informational only and never alters the score post hoc.
type AnalysisDetails struct {
	WordCount             int      `json:"wordCount"`
	UniqueWords           int      `json:"uniqueWords"`
	SensationalWordsFound []string `json:"sensationalWordsFound"`
	ExclamationCount      int      `json:"exclamationCount"`
	QuestionCount         int      `json:"questionCount"`
	CapitalizedWordCount  int      `json:"capitalizedWordCount"`
	LexicalDiversity      float64  `json:"lexicalDiversity"`
}

// CredibilityResult is the outcome of analyzing a single article.
// It is a pure function of its Article input.
type CredibilityResult struct {
	Score   int              `json:"score"`
	Label   CredibilityLabel `json:"label"`
	Factors ScoreFactors     `json:"factors"`
	Details AnalysisDetails  `json:"details"`
}

// ClaimLookupResult is the outcome of a fact-check claim lookup.
type ClaimLookupResult struct {
	ID        string    `json:"id"`
	Claim     string    `json:"claim"`
	Verified  bool      `json:"verified"`
	Verdict   string    `json:"verdict"`
	Message   string    `json:"message"`
	CheckedAt time.Time `json:"checked_at"`
}
