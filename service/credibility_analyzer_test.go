// ABOUTME: Tests for the weighted credibility scoring pipeline
// ABOUTME: Covers determinism, bounds, label bands and known-source scenarios
package service

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credibility-checker/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

func newTestAnalyzer(t *testing.T) CredibilityAnalyzer {
	t.Helper()
	return NewCredibilityAnalyzer(DefaultLexicon(), testLogger())
}

// neutralContent builds sentiment-free prose long enough to pass the given
// meaningful-word threshold.
func neutralContent(repeats int) string {
	sentence := "The committee reviewed the quarterly report and published its findings on Tuesday."
	return strings.TrimSpace(strings.Repeat(sentence+" ", repeats))
}

func TestAnalyze_EmptyContentIsNeutral(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := map[string]*domain.Article{
		"nil article":        nil,
		"empty content":      {Title: "Some headline", Content: ""},
		"whitespace content": {Title: "Some headline", Content: "   \n\t  "},
	}

	for name, article := range tests {
		t.Run(name, func(t *testing.T) {
			result := analyzer.Analyze(article)

			assert.Equal(t, 50, result.Score)
			assert.Equal(t, "Somewhat Reliable", result.Label.Text)
		})
	}
}

func TestAnalyze_IsDeterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	article := &domain.Article{
		Title:   "Officials announce infrastructure plan",
		Content: neutralContent(20) + " The crisis never fully abated, officials said.",
		Source:  "news.nytimes.com",
		URL:     "https://news.nytimes.com/2026/plan",
	}

	first := analyzer.Analyze(article)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, analyzer.Analyze(article))
	}
}

func TestAnalyze_ScoreStaysInBounds(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := map[string]*domain.Article{
		"worst case": {
			Title:   "SHOCKING!!! You won't believe this miracle they don't want you to know!!!",
			Content: "SHOCKING scandal! Deadly crisis EXPOSED! Everything is always a conspiracy, never trust anyone, all of it banned!",
			Source:  "infowars.com",
		},
		"best case": {
			Title:   "Central bank holds rates steady",
			Content: neutralContent(120),
			Source:  "reuters.com",
		},
		"no source": {
			Title:   "Untitled",
			Content: "Short note.",
		},
	}

	for name, article := range tests {
		t.Run(name, func(t *testing.T) {
			result := analyzer.Analyze(article)

			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			for _, f := range []float64{
				result.Factors.SourceScore,
				result.Factors.TitleScore,
				result.Factors.SentimentBalance,
				result.Factors.ExtremeLanguageScore,
				result.Factors.ContentLengthScore,
			} {
				assert.GreaterOrEqual(t, f, 0.0)
				assert.LessOrEqual(t, f, 100.0)
			}
		})
	}
}

func TestAnalyze_ReputableWireServiceScoresHigh(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(&domain.Article{
		Title:   "Central bank holds rates steady amid stable inflation data",
		Content: neutralContent(40),
		Source:  "reuters.com",
		URL:     "https://www.reuters.com/markets/rates",
	})

	assert.GreaterOrEqual(t, result.Score, 70)
	assert.Equal(t, 95.0, result.Factors.SourceScore)
}

func TestAnalyze_KnownMisinformationOutletScoresLow(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(&domain.Article{
		Title:   "SHOCKING: Doctors hate this miracle cure they don't want you to know!",
		Content: "A shocking scandal the government banned. This deadly conspiracy was exposed and the crisis is real. Nobody can deny it, everyone knows the truth they hide.",
		Source:  "infowars.com",
		URL:     "https://www.infowars.com/secret-cure",
	})

	assert.Less(t, result.Score, 40)
	assert.Equal(t, "Unreliable", result.Label.Text)
	assert.Equal(t, 10.0, result.Factors.SourceScore)
}

func TestScoreSource_Lookup(t *testing.T) {
	analyzer := newTestAnalyzer(t).(*credibilityAnalyzer)

	tests := map[string]struct {
		article *domain.Article
		want    float64
	}{
		"exact host": {
			article: &domain.Article{Source: "bbc.com", Content: "x"},
			want:    89,
		},
		"www prefix stripped": {
			article: &domain.Article{Source: "www.apnews.com", Content: "x"},
			want:    95,
		},
		"subdomain substring match": {
			article: &domain.Article{Source: "live.bbc.com", Content: "x"},
			want:    89,
		},
		"host taken from URL when source empty": {
			article: &domain.Article{URL: "https://www.npr.org/sections/politics", Content: "x"},
			want:    84,
		},
		"unknown host is neutral": {
			article: &domain.Article{Source: "smalltownnews.example", Content: "x"},
			want:    50,
		},
		"no source at all is neutral": {
			article: &domain.Article{Content: "x"},
			want:    50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzer.scoreSource(tt.article))
		})
	}
}

func TestScoreTitle(t *testing.T) {
	analyzer := newTestAnalyzer(t).(*credibilityAnalyzer)

	tests := map[string]struct {
		title string
		want  float64
	}{
		"clean headline":                     {"Parliament passes budget after long debate", 100},
		"single clickbait phrase":            {"The secret history of the canal", 80},
		"three phrases":                      {"This amazing secret miracle diet", 40},
		"punctuation alone is not clickbait": {"Markets rally!", 100},
		"shouting alone is not clickbait":    {"BREAKING report on storm damage", 100},
		"empty title scores clean":           {"", 100},
		"five phrases exhaust the factor": {
			"SHOCKING!!! You won't believe this INCREDIBLE miracle - doctors hate this!",
			0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzer.scoreTitle(tt.title))
		})
	}
}

func TestScoreSentiment(t *testing.T) {
	analyzer := newTestAnalyzer(t).(*credibilityAnalyzer)

	tests := map[string]struct {
		tokens []string
		want   float64
	}{
		"no sentiment words": {[]string{"committee", "reviewed", "report"}, 70},
		"perfectly balanced": {[]string{"success", "failure"}, 100},
		"entirely negative":  {[]string{"crisis", "scandal", "deadly"}, 50},
		"entirely positive":  {[]string{"success", "growth", "progress"}, 50},
		"three to one":       {[]string{"success", "growth", "progress", "crisis"}, 75},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.want, analyzer.scoreSentiment(tt.tokens), 0.001)
		})
	}
}

func TestScoreExtremeLanguage(t *testing.T) {
	analyzer := newTestAnalyzer(t).(*credibilityAnalyzer)

	calm := make([]string, 100)
	for i := range calm {
		calm[i] = "word"
	}

	loaded := append([]string{}, calm[:96]...)
	loaded = append(loaded, "shocking", "always", "never", "conspiracy")

	sensationalOnly := append([]string{}, calm[:9]...)
	sensationalOnly = append(sensationalOnly, "shocking")

	tests := map[string]struct {
		tokens []string
		want   float64
	}{
		"no tokens":                  {nil, 100},
		"no absolutist words":        {calm, 100},
		"sensational words ignored":  {sensationalOnly, 100},
		"two percent absolutist":     {loaded, 90},
		"half absolutist floors out": {[]string{"never", "always", "every", "completely"}, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.want, analyzer.scoreExtremeLanguage(tt.tokens), 0.001)
		})
	}
}

func TestScoreContentLength(t *testing.T) {
	tests := map[string]struct {
		words int
		want  float64
	}{
		"tiny":            {30, 20},
		"short":           {150, 40},
		"medium":          {350, 60},
		"substantial":     {600, 80},
		"long":            {1200, 100},
		"boundary at 100": {100, 40},
		"boundary at 800": {800, 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreContentLength(tt.words))
		})
	}
}

func TestLabelFor_Bands(t *testing.T) {
	tests := []struct {
		score int
		text  string
		color string
	}{
		{100, "Highly Reliable", "#4CAF50"},
		{80, "Highly Reliable", "#4CAF50"},
		{79, "Reliable", "#8BC34A"},
		{70, "Reliable", "#8BC34A"},
		{69, "Somewhat Reliable", "#FFC107"},
		{60, "Somewhat Reliable", "#FFC107"},
		{59, "Questionable", "#FF9800"},
		{40, "Questionable", "#FF9800"},
		{39, "Unreliable", "#FF4842"},
		{0, "Unreliable", "#FF4842"},
	}

	for _, tt := range tests {
		label := labelFor(tt.score)
		assert.Equal(t, tt.text, label.Text, "score %d", tt.score)
		assert.Equal(t, tt.color, label.Color, "score %d", tt.score)
		assert.NotEmpty(t, label.Details)
	}
}

func TestAnalyze_DetailsPayload(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(&domain.Article{
		Title:   "City council meeting",
		Content: "The SHOCKING vote was a scandal! Was it avoidable? The shocking outcome surprised many.",
		Source:  "example.com",
	})

	details := result.Details
	assert.Equal(t, 8, details.WordCount)
	assert.Equal(t, 7, details.UniqueWords)
	assert.Equal(t, []string{"scandal", "shocking"}, details.SensationalWordsFound)
	assert.Equal(t, 1, details.ExclamationCount)
	assert.Equal(t, 1, details.QuestionCount)
	assert.Equal(t, 1, details.CapitalizedWordCount)
	assert.InDelta(t, 0.875, details.LexicalDiversity, 0.001)
}

func TestDefaultLexicon_Tables(t *testing.T) {
	lex := DefaultLexicon()

	require.NotEmpty(t, lex.Stopwords)
	require.NotEmpty(t, lex.SensationalWords)
	require.NotEmpty(t, lex.ClickbaitPhrases)
	require.NotEmpty(t, lex.PositiveWords)
	require.NotEmpty(t, lex.NegativeWords)
	require.NotEmpty(t, lex.AbsolutistWords)
	require.NotEmpty(t, lex.SourceReputation)

	for host, score := range lex.SourceReputation {
		assert.GreaterOrEqual(t, score, 0, host)
		assert.LessOrEqual(t, score, 100, host)
	}
}

func TestLoadLexicon(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := t.TempDir() + "/lexicon.yaml"
		body := `
stopwords: [the, a]
sensational_words: [shocking]
clickbait_phrases: ["you won't believe"]
positive_words: [good]
negative_words: [bad]
absolutist_words: [always]
source_reputation:
  example.com: 42
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0600))

		lex, err := LoadLexicon(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"shocking"}, lex.SensationalWords)
		assert.Equal(t, 42, lex.SourceReputation["example.com"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLexicon("/nonexistent/lexicon.yaml")
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := t.TempDir() + "/broken.yaml"
		require.NoError(t, os.WriteFile(path, []byte("stopwords: {"), 0600))

		_, err := LoadLexicon(path)
		assert.Error(t, err)
	})
}
