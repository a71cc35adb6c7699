// ABOUTME: Heuristic tables for the credibility analyzer
// ABOUTME: Immutable after construction; a YAML file can replace the defaults
package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds every fixed table the analyzer scores against. It is
// injected at construction so tests can substitute alternate tables.
type Lexicon struct {
	Stopwords        []string       `yaml:"stopwords"`
	SensationalWords []string       `yaml:"sensational_words"`
	ClickbaitPhrases []string       `yaml:"clickbait_phrases"`
	PositiveWords    []string       `yaml:"positive_words"`
	NegativeWords    []string       `yaml:"negative_words"`
	AbsolutistWords  []string       `yaml:"absolutist_words"`
	SourceReputation map[string]int `yaml:"source_reputation"`
}

// LoadLexicon reads a YAML lexicon file. The file replaces the defaults
// wholesale; there is no per-table merging.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path) // #nosec G304 - operator-supplied config path
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon file failed: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("parse lexicon file failed: %w", err)
	}

	return lex, nil
}

// DefaultLexicon returns the built-in tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Stopwords: []string{
			"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
			"from", "had", "has", "have", "he", "how", "in", "is", "it",
			"its", "of", "on", "that", "the", "they", "this", "to", "was",
			"were", "what", "when", "where", "which", "who", "why", "will",
			"with",
		},
		SensationalWords: []string{
			"shocking", "unbelievable", "breaking", "miracle", "exposed",
			"scandal", "shocker", "horrifying", "destroyed", "epic",
			"crisis", "deadly", "banned", "conspiracy", "secret",
			"revealed", "explosive", "outrageous",
		},
		ClickbaitPhrases: []string{
			"you won't believe",
			"shocking",
			"mind-blowing",
			"incredible",
			"amazing",
			"secret",
			"miracle",
			"doctors hate this",
			"they don't want you to know",
			"what happens next will",
			"this one weird trick",
			"anonymous sources claim",
		},
		PositiveWords: []string{
			"achievement", "advance", "beneficial", "benefit", "breakthrough",
			"effective", "gain", "growth", "hope", "improvement", "optimistic",
			"positive", "praised", "progress", "promising", "recovery",
			"strong", "success", "support", "win",
		},
		NegativeWords: []string{
			"banned", "collapse", "conflict", "conspiracy", "controversial",
			"crisis", "damage", "deadly", "decline", "deficit", "exposed",
			"failure", "fear", "harm", "loss", "risk", "scandal", "shocking",
			"threat", "toxic", "warning",
		},
		AbsolutistWords: []string{
			"absolutely", "all", "always", "completely", "entirely", "every",
			"everyone", "forever", "impossible", "never", "nobody", "none",
			"perfect", "totally", "undeniable",
		},
		SourceReputation: map[string]int{
			// Tier 1: wire services (90-95)
			"reuters.com":   95,
			"apnews.com":    95,
			"bloomberg.com": 92,
			"afp.com":       92,

			// Fact-checking sites (90-95)
			"snopes.com":     93,
			"factcheck.org":  93,
			"politifact.com": 92,

			// Tier 2: broadsheets (85-89)
			"bbc.com":            89,
			"nytimes.com":        88,
			"washingtonpost.com": 88,
			"theguardian.com":    87,
			"wsj.com":            87,
			"economist.com":      87,

			// Tier 3: generally reliable (80-84)
			"npr.org":         84,
			"time.com":        83,
			"theatlantic.com": 82,
			"latimes.com":     82,

			// Tabloids and opinion-heavy outlets (40-65)
			"foxnews.com":     62,
			"buzzfeed.com":    58,
			"nypost.com":      55,
			"dailymail.co.uk": 45,
			"thesun.co.uk":    42,

			// Known misinformation outlets
			"breitbart.com":     35,
			"naturalnews.com":   15,
			"beforeitsnews.com": 12,
			"worldtruth.tv":     12,
			"infowars.com":      10,
		},
	}
}
