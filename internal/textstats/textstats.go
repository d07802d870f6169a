// Package textstats computes lexical and sentiment statistics over entry
// text: tokenization to content-word stems, VADER polarity scores, and
// aggregate counts and ratios feeding downstream visualization.
package textstats

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jonreiter/govader"
	"github.com/kljensen/snowball/english"
	"github.com/neurosnap/sentences"
	sentencetok "github.com/neurosnap/sentences/english"

	"github.com/daybook/daybook/internal/model"
)

var (
	vaderOnce sync.Once
	analyzer  *govader.SentimentIntensityAnalyzer

	punktOnce sync.Once
	punkt     *sentences.DefaultSentenceTokenizer
	punktErr  error
)

// Tokenize lowercases text, strips punctuation, removes English stop-words,
// keeps only alphabetic tokens and reduces each to its snowball stem. Order
// is preserved and duplicates are kept.
func Tokenize(text string) []string {
	// em-dashes and hyphens bind words together; split them first
	text = strings.NewReplacer("—", " ", "-", " ").Replace(text)
	cleaned := stopwords.CleanString(text, "en", false)

	var out []string
	for _, word := range strings.Fields(cleaned) {
		if !alphabetic(word) {
			continue
		}
		out = append(out, english.Stem(word, true))
	}
	return out
}

// Scores holds the four VADER polarity scores. Compound is in [-1, 1].
type Scores struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Sentiment scores text with the lexicon-based VADER polarity model.
func Sentiment(text string) Scores {
	s := vader().PolarityScores(text)
	return Scores{Negative: s.Negative, Neutral: s.Neutral, Positive: s.Positive, Compound: s.Compound}
}

// Stats merges sentiment scores with whole-text counts and ratios for a
// single entry.
type Stats struct {
	Scores
	Sentences               int     `json:"sentences"`
	Tokens                  int     `json:"tokens"`
	ContentWords            int     `json:"content_words"`
	LettersPerToken         float64 `json:"letters_per_token"`
	TokensPerSentence       float64 `json:"tokens_per_sentence"`
	ContentWordsPerSentence float64 `json:"content_words_per_sentence"`
}

// Compute returns the full statistics for one entry's text. Text with zero
// sentences or zero tokens is a precondition violation and fails with
// model.ErrInvalidInput rather than producing NaN ratios.
func Compute(text string) (Stats, error) {
	tokens := strings.Fields(text)
	sentenceCount, err := countSentences(text)
	if err != nil {
		return Stats{}, err
	}
	if sentenceCount == 0 || len(tokens) == 0 {
		return Stats{}, fmt.Errorf("text statistics need at least one sentence and one token: %w", model.ErrInvalidInput)
	}

	letters := 0
	for _, tok := range tokens {
		for _, r := range tok {
			if unicode.IsLetter(r) {
				letters++
			}
		}
	}
	content := Tokenize(text)

	return Stats{
		Scores:                  Sentiment(text),
		Sentences:               sentenceCount,
		Tokens:                  len(tokens),
		ContentWords:            len(content),
		LettersPerToken:         float64(letters) / float64(len(tokens)),
		TokensPerSentence:       float64(len(tokens)) / float64(sentenceCount),
		ContentWordsPerSentence: float64(len(content)) / float64(sentenceCount),
	}, nil
}

func alphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}

func vader() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() { analyzer = govader.NewSentimentIntensityAnalyzer() })
	return analyzer
}

func countSentences(text string) (int, error) {
	punktOnce.Do(func() { punkt, punktErr = sentencetok.NewSentenceTokenizer(nil) })
	if punktErr != nil {
		return 0, fmt.Errorf("sentence tokenizer: %w", punktErr)
	}
	return len(punkt.Tokenize(text)), nil
}
