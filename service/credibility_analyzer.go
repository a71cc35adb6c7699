// ABOUTME: Deterministic weighted-factor credibility scoring
// ABOUTME: Pure computation, no I/O; same article always yields the same result
package service

import (
	"log/slog"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"credibility-checker/domain"
)

// Factor weights. They sum to 1.0 so the composite stays on the 0-100 scale.
const (
	weightSource          = 0.35
	weightTitle           = 0.25
	weightSentiment       = 0.15
	weightExtremeLanguage = 0.15
	weightContentLength   = 0.10
)

// neutralSourceScore is used when the source matches no reputation entry.
const neutralSourceScore = 50

var nonWordPattern = regexp.MustCompile(`[^a-z0-9\s]+`)

type credibilityAnalyzer struct {
	lexicon Lexicon
	logger  *slog.Logger

	stopwords   map[string]struct{}
	sensational map[string]struct{}
	positive    map[string]struct{}
	negative    map[string]struct{}
	absolutist  map[string]struct{}

	// Reputation keys sorted so substring lookup order is stable.
	reputationKeys []string
}

// NewCredibilityAnalyzer builds an analyzer over the given lexicon. The
// lexicon is copied into lookup sets at construction, so later mutation of
// the argument has no effect.
func NewCredibilityAnalyzer(lexicon Lexicon, logger *slog.Logger) CredibilityAnalyzer {
	keys := make([]string, 0, len(lexicon.SourceReputation))
	for k := range lexicon.SourceReputation {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &credibilityAnalyzer{
		lexicon:        lexicon,
		logger:         logger,
		stopwords:      toSet(lexicon.Stopwords),
		sensational:    toSet(lexicon.SensationalWords),
		positive:       toSet(lexicon.PositiveWords),
		negative:       toSet(lexicon.NegativeWords),
		absolutist:     toSet(lexicon.AbsolutistWords),
		reputationKeys: keys,
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func (a *credibilityAnalyzer) Analyze(article *domain.Article) *domain.CredibilityResult {
	if article == nil || strings.TrimSpace(article.Content) == "" {
		// Nothing to analyze: neutral score, mixed-signals label.
		return &domain.CredibilityResult{
			Score: neutralSourceScore,
			Label: domain.CredibilityLabel{
				Text:    "Somewhat Reliable",
				Color:   "#FFC107",
				Details: "This content has mixed credibility indicators.",
			},
		}
	}

	tokens := a.dropStopwords(a.tokenize(article.Content))

	factors := domain.ScoreFactors{
		SourceScore:          a.scoreSource(article),
		TitleScore:           a.scoreTitle(article.Title),
		SentimentBalance:     a.scoreSentiment(tokens),
		ExtremeLanguageScore: a.scoreExtremeLanguage(tokens),
		ContentLengthScore:   scoreContentLength(len(tokens)),
	}

	weighted := factors.SourceScore*weightSource +
		factors.TitleScore*weightTitle +
		factors.SentimentBalance*weightSentiment +
		factors.ExtremeLanguageScore*weightExtremeLanguage +
		factors.ContentLengthScore*weightContentLength

	score := clampScore(int(math.Round(weighted)))

	result := &domain.CredibilityResult{
		Score:   score,
		Label:   labelFor(score),
		Factors: factors,
		Details: a.collectDetails(article, tokens),
	}

	a.logger.Debug("credibility analysis complete",
		slog.String("source", article.Source),
		slog.Int("score", score),
		slog.String("label", result.Label.Text))

	return result
}

// tokenize lowercases the text, strips punctuation and splits on whitespace.
func (a *credibilityAnalyzer) tokenize(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

func (a *credibilityAnalyzer) dropStopwords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := a.stopwords[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// scoreSource resolves the article host against the reputation table. Exact
// host match wins; otherwise the first sorted key contained in the host is
// used. Unknown hosts get a neutral score.
func (a *credibilityAnalyzer) scoreSource(article *domain.Article) float64 {
	host := sourceHost(article)
	if host == "" {
		return neutralSourceScore
	}

	if score, ok := a.lexicon.SourceReputation[host]; ok {
		return float64(score)
	}

	for _, key := range a.reputationKeys {
		if strings.Contains(host, key) {
			return float64(a.lexicon.SourceReputation[key])
		}
	}

	return neutralSourceScore
}

func sourceHost(article *domain.Article) string {
	host := strings.ToLower(strings.TrimSpace(article.Source))
	if host == "" && article.URL != "" {
		if u, err := url.Parse(article.URL); err == nil {
			host = strings.ToLower(u.Hostname())
		}
	}
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}

// scoreTitle maps clickbait-phrase density in the title onto 0-100. Five or
// more phrase matches exhaust the factor; a title with no matches, including
// the empty title of raw-text input, scores 100.
func (a *credibilityAnalyzer) scoreTitle(title string) float64 {
	lower := strings.ToLower(title)

	clickbait := 0.0
	for _, phrase := range a.lexicon.ClickbaitPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			clickbait++
		}
	}

	return 100 - math.Min(1, clickbait/5)*100
}

// scoreSentiment measures how one-sided the emotional vocabulary is. Text
// with no sentiment-bearing words is mildly positive for credibility.
func (a *credibilityAnalyzer) scoreSentiment(tokens []string) float64 {
	var pos, neg float64
	for _, t := range tokens {
		if _, ok := a.positive[t]; ok {
			pos++
		}
		if _, ok := a.negative[t]; ok {
			neg++
		}
	}

	if pos+neg == 0 {
		return 70
	}

	balance := pos / (pos + neg)
	return 100 - math.Abs(balance-0.5)*100
}

// scoreExtremeLanguage penalizes absolutist vocabulary in proportion to its
// density among the meaningful tokens. The amplification means even a small
// fraction of absolutist language costs real points.
func (a *credibilityAnalyzer) scoreExtremeLanguage(tokens []string) float64 {
	if len(tokens) == 0 {
		return 100
	}

	var absolutist float64
	for _, t := range tokens {
		if _, ok := a.absolutist[t]; ok {
			absolutist++
		}
	}

	ratio := absolutist / float64(len(tokens))
	return clampFactor(100 - ratio*500)
}

// scoreContentLength rewards substance. Thresholds are in meaningful words,
// after stopword removal.
func scoreContentLength(meaningfulWords int) float64 {
	switch {
	case meaningfulWords < 100:
		return 20
	case meaningfulWords < 300:
		return 40
	case meaningfulWords < 500:
		return 60
	case meaningfulWords < 800:
		return 80
	default:
		return 100
	}
}

// collectDetails derives the explanation payload from the stopword-removed
// token list, so wordCount and lexicalDiversity describe the same population
// the scoring factors saw.
func (a *credibilityAnalyzer) collectDetails(article *domain.Article, tokens []string) domain.AnalysisDetails {
	unique := make(map[string]struct{}, len(tokens))
	var found []string
	seen := make(map[string]struct{})
	for _, t := range tokens {
		unique[t] = struct{}{}
		if _, ok := a.sensational[t]; ok {
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				found = append(found, t)
			}
		}
	}
	sort.Strings(found)

	diversity := 0.0
	if len(tokens) > 0 {
		diversity = float64(len(unique)) / float64(len(tokens))
	}

	return domain.AnalysisDetails{
		WordCount:             len(tokens),
		UniqueWords:           len(unique),
		SensationalWordsFound: found,
		ExclamationCount:      strings.Count(article.Content, "!"),
		QuestionCount:         strings.Count(article.Content, "?"),
		CapitalizedWordCount:  countCapitalizedWords(article.Content),
		LexicalDiversity:      math.Round(diversity*1000) / 1000,
	}
}

// countCapitalizedWords counts words written entirely in upper case, which
// reads as shouting. Single letters like "A" and "I" are ignored.
func countCapitalizedWords(text string) int {
	count := 0
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if len(w) < 2 {
			continue
		}
		if w == strings.ToUpper(w) && w != strings.ToLower(w) {
			count++
		}
	}
	return count
}

func labelFor(score int) domain.CredibilityLabel {
	switch {
	case score >= 80:
		return domain.CredibilityLabel{
			Text:    "Highly Reliable",
			Color:   "#4CAF50",
			Details: "This content shows strong indicators of credibility.",
		}
	case score >= 70:
		return domain.CredibilityLabel{
			Text:    "Reliable",
			Color:   "#8BC34A",
			Details: "This content appears to be generally reliable.",
		}
	case score >= 60:
		return domain.CredibilityLabel{
			Text:    "Somewhat Reliable",
			Color:   "#FFC107",
			Details: "This content has mixed credibility indicators.",
		}
	case score >= 40:
		return domain.CredibilityLabel{
			Text:    "Questionable",
			Color:   "#FF9800",
			Details: "This content shows several signs of potential misinformation.",
		}
	default:
		return domain.CredibilityLabel{
			Text:    "Unreliable",
			Color:   "#FF4842",
			Details: "This content displays strong indicators of misinformation.",
		}
	}
}

func clampFactor(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
