// Package mood turns VADER scores into labels and human readable commentary.
//
// Every classification is an ordered table of (predicate, value, text) rows.
// The first matching row wins and the last row of each table always matches,
// so Classify is total over any float input, NaN included.
package mood

import (
	"math"

	"github.com/tsingjyujing/moodscope/sentiment"
)

// Overall is the coarse three-way label.
type Overall string

const (
	Positive Overall = "Positive"
	Negative Overall = "Negative"
	Neutral  Overall = "Neutral"
)

// Label is the fine five-way label.
type Label string

const (
	VeryPositive     Label = "Very Positive"
	SomewhatPositive Label = "Somewhat Positive"
	NeutralLabel     Label = "Neutral"
	SomewhatNegative Label = "Somewhat Negative"
	VeryNegative     Label = "Very Negative"
)

// Balance describes the share of positive mass among positive and negative mass.
type Balance string

const (
	BalanceOverwhelminglyPositive Balance = "overwhelmingly positive"
	BalanceMorePositive           Balance = "significantly more positive"
	BalanceSlightPositiveEdge     Balance = "fairly balanced, slight positive edge"
	BalanceMoreNegative           Balance = "more negative than positive"
	BalanceOverwhelminglyNegative Balance = "overwhelmingly negative"
)

// Strength describes the magnitude of the compound score.
type Strength string

const (
	StrengthVeryStrong Strength = "very strong"
	StrengthClear      Strength = "clear and noticeable"
	StrengthModerate   Strength = "present but moderate"
	StrengthSubtle     Strength = "subtle or mixed"
)

// RatioEpsilon keeps the positive ratio defined when both masses are zero.
const RatioEpsilon = 0.0001

type Report struct {
	Overall         Overall  `json:"overall" yaml:"overall"`
	Indicator       string   `json:"indicator" yaml:"indicator"`
	Label           Label    `json:"label" yaml:"label"`
	Description     string   `json:"description" yaml:"description"`
	PositiveRatio   float64  `json:"positive_ratio" yaml:"positive_ratio"`
	Balance         Balance  `json:"balance" yaml:"balance"`
	BalanceComment  string   `json:"balance_comment" yaml:"balance_comment"`
	Intensity       float64  `json:"intensity" yaml:"intensity"`
	Strength        Strength `json:"strength" yaml:"strength"`
	StrengthComment string   `json:"strength_comment" yaml:"strength_comment"`
	Takeaway        string   `json:"takeaway" yaml:"takeaway"`
}

type tier[T any] struct {
	matches func(v float64) bool
	value   T
	text    string
}

func always(float64) bool { return true }

// overallTiers is keyed on the compound score, text is the takeaway.
var overallTiers = []tier[Overall]{
	{
		matches: func(c float64) bool { return c >= 0.05 },
		value:   Positive,
		text:    "This text gives off good vibes! The writer seems to be expressing something favorable or feeling upbeat.",
	},
	{
		matches: func(c float64) bool { return c <= -0.05 },
		value:   Negative,
		text:    "This text gives off not-so-good vibes. The writer might be expressing concerns, criticisms, or feeling down.",
	},
	{
		matches: always,
		value:   Neutral,
		text:    "This text doesn't lean strongly positive or negative. The writer might be trying to be objective or is expressing mixed feelings.",
	},
}

var indicators = map[Overall]string{
	Positive: "😊",
	Negative: "😔",
	Neutral:  "😐",
}

// labelTiers uses non-overlapping half-open ranges of the compound score.
var labelTiers = []tier[Label]{
	{
		matches: func(c float64) bool { return c >= 0.5 },
		value:   VeryPositive,
		text:    "The text expresses strong positive emotions or opinions. It might include words of high praise, excitement, or strong agreement.",
	},
	{
		matches: func(c float64) bool { return c >= 0.05 && c < 0.5 },
		value:   SomewhatPositive,
		text:    "The text leans towards positivity. It may express mild approval, satisfaction, or general optimism.",
	},
	{
		matches: func(c float64) bool { return c > -0.05 && c < 0.05 },
		value:   NeutralLabel,
		text:    "The text doesn't show a clear positive or negative bias. It might be stating facts, or balancing positive and negative aspects.",
	},
	{
		matches: func(c float64) bool { return c > -0.5 && c <= -0.05 },
		value:   SomewhatNegative,
		text:    "The text leans towards negativity. It may express mild disapproval, dissatisfaction, or general pessimism.",
	},
	{
		matches: always,
		value:   VeryNegative,
		text:    "The text expresses strong negative emotions or opinions. It might include words of criticism, disappointment, or strong disagreement.",
	},
}

// balanceTiers is keyed on pos / (pos + neg + RatioEpsilon). The neutral mass
// is ignored and the wording is not symmetric around 0.5; both are kept as is.
var balanceTiers = []tier[Balance]{
	{
		matches: func(r float64) bool { return r > 0.8 },
		value:   BalanceOverwhelminglyPositive,
		text:    "👍 The text is overwhelmingly positive.",
	},
	{
		matches: func(r float64) bool { return r > 0.6 },
		value:   BalanceMorePositive,
		text:    "👍 The text contains significantly more positive elements than negative ones.",
	},
	{
		matches: func(r float64) bool { return r > 0.4 },
		value:   BalanceSlightPositiveEdge,
		text:    "⚖️ The text has a fairly balanced mix of positive and negative elements, with a slight positive edge.",
	},
	{
		matches: func(r float64) bool { return r > 0.2 },
		value:   BalanceMoreNegative,
		text:    "👎 The text contains more negative elements than positive ones.",
	},
	{
		matches: always,
		value:   BalanceOverwhelminglyNegative,
		text:    "👎 The text is overwhelmingly negative.",
	},
}

// strengthTiers is keyed on abs(compound), every bound is exclusive.
var strengthTiers = []tier[Strength]{
	{
		matches: func(s float64) bool { return s > 0.75 },
		value:   StrengthVeryStrong,
		text:    "💪 The emotional tone of this text is very strong.",
	},
	{
		matches: func(s float64) bool { return s > 0.5 },
		value:   StrengthClear,
		text:    "🏋️ The text has a clear and noticeable emotional tone.",
	},
	{
		matches: func(s float64) bool { return s > 0.25 },
		value:   StrengthModerate,
		text:    "🤔 The emotional tone is present but moderate.",
	},
	{
		matches: always,
		value:   StrengthSubtle,
		text:    "😐 The emotional tone is quite subtle or mixed.",
	},
}

func lookup[T any](tiers []tier[T], v float64) tier[T] {
	for _, t := range tiers {
		if t.matches(v) {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// PositiveRatio returns pos / (pos + neg + RatioEpsilon).
func PositiveRatio(scores sentiment.Scores) float64 {
	return scores.Positive / (scores.Positive + scores.Negative + RatioEpsilon)
}

// Classify derives the mood report of one set of scores. It is pure.
func Classify(scores sentiment.Scores) Report {
	overall := lookup(overallTiers, scores.Compound)
	label := lookup(labelTiers, scores.Compound)
	ratio := PositiveRatio(scores)
	balance := lookup(balanceTiers, ratio)
	intensity := math.Abs(scores.Compound)
	strength := lookup(strengthTiers, intensity)

	return Report{
		Overall:         overall.value,
		Indicator:       indicators[overall.value],
		Label:           label.value,
		Description:     label.text,
		PositiveRatio:   ratio,
		Balance:         balance.value,
		BalanceComment:  balance.text,
		Intensity:       intensity,
		Strength:        strength.value,
		StrengthComment: strength.text,
		Takeaway:        overall.text,
	}
}
