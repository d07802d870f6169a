package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/daybook/internal/model"
)

func TestTokenizeStripsAndStems(t *testing.T) {
	got := Tokenize("Running quickly through the dark-green forests!")

	assert.Contains(t, got, "run", "inflected words are stemmed")
	assert.Contains(t, got, "forest")
	assert.Contains(t, got, "dark", "hyphenated words are split")
	assert.Contains(t, got, "green")
	assert.NotContains(t, got, "the", "stop-words are removed")
	assert.NotContains(t, got, "through")
	for _, tok := range got {
		assert.NotContains(t, tok, "!", "punctuation is stripped")
	}
}

func TestTokenizeDropsNumbersAndCase(t *testing.T) {
	got := Tokenize("3 May. Left Munich at 8:35")

	assert.NotContains(t, got, "3")
	assert.NotContains(t, got, "8:35")
	assert.Contains(t, got, "munich", "tokens are lowercased")
}

func TestTokenizePreservesOrderAndDuplicates(t *testing.T) {
	got := Tokenize("spam eggs spam")
	assert.Equal(t, []string{"spam", "egg", "spam"}, got)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("the and of"))
}

func TestSentimentPolarity(t *testing.T) {
	pos := Sentiment("I love this wonderful, happy day!")
	neg := Sentiment("This was a horrible, miserable disaster.")
	neu := Sentiment("The ledger has three columns.")

	assert.Greater(t, pos.Compound, 0.0)
	assert.Less(t, neg.Compound, 0.0)
	assert.InDelta(t, 0.0, neu.Compound, 0.3)

	for _, s := range []Scores{pos, neg, neu} {
		assert.GreaterOrEqual(t, s.Compound, -1.0)
		assert.LessOrEqual(t, s.Compound, 1.0)
		assert.InDelta(t, 1.0, s.Negative+s.Neutral+s.Positive, 0.01,
			"polarity proportions sum to one")
	}
}

func TestCompute(t *testing.T) {
	s, err := Compute("I walked to the market. The weather was lovely.")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Sentences)
	assert.Equal(t, 9, s.Tokens)
	assert.Greater(t, s.ContentWords, 0)
	assert.LessOrEqual(t, s.ContentWords, s.Tokens)
	assert.InDelta(t, 4.5, s.TokensPerSentence, 0.001)
	assert.Greater(t, s.LettersPerToken, 0.0)
	assert.Greater(t, s.Compound, 0.0, "lovely weather reads positive")
}

func TestComputeSingleSentenceNoPunctuation(t *testing.T) {
	s, err := Compute("quiet night in")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Sentences)
	assert.Equal(t, 3, s.Tokens)
}

func TestComputeDegenerateInput(t *testing.T) {
	_, err := Compute("")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = Compute("   ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
