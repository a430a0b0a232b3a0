package sentiment

import (
	"github.com/jonreiter/govader"
)

// Scores is the VADER polarity of one text.
// Negative, Neutral and Positive are proportions summing to about 1,
// Compound is the normalized overall polarity in [-1, 1].
type Scores struct {
	Negative float64 `json:"neg" yaml:"neg"`
	Neutral  float64 `json:"neu" yaml:"neu"`
	Positive float64 `json:"pos" yaml:"pos"`
	Compound float64 `json:"compound" yaml:"compound"`
}

// VaderScorer scores English text with the VADER lexicon.
// The analyzer is read-only after construction and safe for concurrent use.
type VaderScorer struct {
	analyzer      *govader.SentimentIntensityAnalyzer
	stripMarkdown bool
}

func NewVaderScorer(stripMarkdown bool) *VaderScorer {
	return &VaderScorer{
		analyzer:      govader.NewSentimentIntensityAnalyzer(),
		stripMarkdown: stripMarkdown,
	}
}

func (s *VaderScorer) Score(text string) Scores {
	if s.stripMarkdown {
		text = MarkdownToText(text)
	}
	polarity := s.analyzer.PolarityScores(text)
	return Scores{
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
		Positive: polarity.Positive,
		Compound: polarity.Compound,
	}
}
