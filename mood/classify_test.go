package mood

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsingjyujing/moodscope/sentiment"
)

func compound(c float64) sentiment.Scores {
	return sentiment.Scores{Compound: c}
}

func TestClassify_Overall(t *testing.T) {
	tests := []struct {
		compound      float64
		wantOverall   Overall
		wantIndicator string
	}{
		{compound: 1, wantOverall: Positive, wantIndicator: "😊"},
		{compound: 0.05, wantOverall: Positive, wantIndicator: "😊"},
		{compound: 0.049999, wantOverall: Neutral, wantIndicator: "😐"},
		{compound: 0, wantOverall: Neutral, wantIndicator: "😐"},
		{compound: -0.049999, wantOverall: Neutral, wantIndicator: "😐"},
		{compound: -0.05, wantOverall: Negative, wantIndicator: "😔"},
		{compound: -1, wantOverall: Negative, wantIndicator: "😔"},
	}
	for _, tt := range tests {
		got := Classify(compound(tt.compound))
		assert.Equal(t, tt.wantOverall, got.Overall, "compound=%v", tt.compound)
		assert.Equal(t, tt.wantIndicator, got.Indicator, "compound=%v", tt.compound)
	}
}

func TestClassify_Label(t *testing.T) {
	tests := []struct {
		compound float64
		want     Label
	}{
		{compound: 1, want: VeryPositive},
		{compound: 0.5, want: VeryPositive},
		{compound: 0.499999, want: SomewhatPositive},
		{compound: 0.05, want: SomewhatPositive},
		{compound: 0.049999, want: NeutralLabel},
		{compound: 0, want: NeutralLabel},
		{compound: -0.049999, want: NeutralLabel},
		{compound: -0.05, want: SomewhatNegative},
		{compound: -0.499999, want: SomewhatNegative},
		{compound: -0.5, want: VeryNegative},
		{compound: -1, want: VeryNegative},
	}
	for _, tt := range tests {
		got := Classify(compound(tt.compound))
		assert.Equal(t, tt.want, got.Label, "compound=%v", tt.compound)
		assert.NotEmpty(t, got.Description)
	}
}

func TestClassify_LabelAgreesWithOverall(t *testing.T) {
	for c := -1.0; c <= 1.0; c += 0.001 {
		got := Classify(compound(c))
		switch got.Label {
		case VeryPositive, SomewhatPositive:
			assert.Equal(t, Positive, got.Overall, "compound=%v", c)
		case NeutralLabel:
			assert.Equal(t, Neutral, got.Overall, "compound=%v", c)
		default:
			assert.Equal(t, Negative, got.Overall, "compound=%v", c)
		}
	}
}

func TestClassify_Descriptions(t *testing.T) {
	assert.Equal(t,
		"The text expresses strong positive emotions or opinions. It might include words of high praise, excitement, or strong agreement.",
		Classify(compound(0.9)).Description)
	assert.Equal(t,
		"The text doesn't show a clear positive or negative bias. It might be stating facts, or balancing positive and negative aspects.",
		Classify(compound(0)).Description)
	assert.Equal(t,
		"The text expresses strong negative emotions or opinions. It might include words of criticism, disappointment, or strong disagreement.",
		Classify(compound(-0.9)).Description)
}

func TestClassify_Balance(t *testing.T) {
	tests := []struct {
		name     string
		positive float64
		negative float64
		want     Balance
	}{
		{name: "only positive", positive: 0.81, negative: 0, want: BalanceOverwhelminglyPositive},
		{name: "only negative", positive: 0, negative: 0.81, want: BalanceOverwhelminglyNegative},
		{name: "both zero", positive: 0, negative: 0, want: BalanceOverwhelminglyNegative},
		{name: "ratio 0.7", positive: 0.7, negative: 0.3, want: BalanceMorePositive},
		{name: "ratio 0.5", positive: 0.25, negative: 0.25, want: BalanceSlightPositiveEdge},
		{name: "ratio 0.3", positive: 0.3, negative: 0.7, want: BalanceMoreNegative},
		{name: "ratio 0.1", positive: 0.1, negative: 0.9, want: BalanceOverwhelminglyNegative},
		// epsilon pushes an exact 0.8 split just below the bound
		{name: "ratio just under 0.8", positive: 0.4, negative: 0.1, want: BalanceMorePositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(sentiment.Scores{Positive: tt.positive, Negative: tt.negative, Neutral: 1 - tt.positive - tt.negative})
			assert.Equal(t, tt.want, got.Balance)
			assert.NotEmpty(t, got.BalanceComment)
		})
	}
}

func TestPositiveRatio(t *testing.T) {
	assert.InDelta(t, 0.81/0.8101, PositiveRatio(sentiment.Scores{Positive: 0.81}), 1e-12)
	assert.Zero(t, PositiveRatio(sentiment.Scores{}))
	assert.False(t, math.IsNaN(PositiveRatio(sentiment.Scores{})))
}

func TestClassify_Strength(t *testing.T) {
	tests := []struct {
		compound float64
		want     Strength
	}{
		{compound: 0.76, want: StrengthVeryStrong},
		{compound: 0.75, want: StrengthClear},
		{compound: -0.76, want: StrengthVeryStrong},
		{compound: 0.51, want: StrengthClear},
		{compound: 0.5, want: StrengthModerate},
		{compound: -0.3, want: StrengthModerate},
		{compound: 0.25, want: StrengthSubtle},
		{compound: 0, want: StrengthSubtle},
	}
	for _, tt := range tests {
		got := Classify(compound(tt.compound))
		assert.Equal(t, tt.want, got.Strength, "compound=%v", tt.compound)
		assert.InDelta(t, math.Abs(tt.compound), got.Intensity, 1e-12)
	}
}

func TestClassify_Takeaway(t *testing.T) {
	assert.Equal(t,
		"This text gives off good vibes! The writer seems to be expressing something favorable or feeling upbeat.",
		Classify(compound(0.3)).Takeaway)
	assert.Equal(t,
		"This text gives off not-so-good vibes. The writer might be expressing concerns, criticisms, or feeling down.",
		Classify(compound(-0.3)).Takeaway)
	assert.Equal(t,
		"This text doesn't lean strongly positive or negative. The writer might be trying to be objective or is expressing mixed feelings.",
		Classify(compound(0.01)).Takeaway)
}

func TestClassify_Idempotent(t *testing.T) {
	scores := sentiment.Scores{Negative: 0.1, Neutral: 0.6, Positive: 0.3, Compound: 0.42}
	assert.Equal(t, Classify(scores), Classify(scores))
}

func TestClassify_NaNIsTotal(t *testing.T) {
	got := Classify(sentiment.Scores{Compound: math.NaN()})
	assert.Equal(t, Neutral, got.Overall)
	assert.Equal(t, VeryNegative, got.Label)
	assert.Equal(t, StrengthSubtle, got.Strength)
}

func TestClassify_EndToEndScores(t *testing.T) {
	// roughly what VADER yields for "I love this!"
	got := Classify(sentiment.Scores{Negative: 0, Neutral: 0.308, Positive: 0.692, Compound: 0.6696})
	assert.Equal(t, Positive, got.Overall)
	assert.Equal(t, VeryPositive, got.Label)
	assert.Equal(t, "😊", got.Indicator)
	assert.Equal(t, BalanceOverwhelminglyPositive, got.Balance)
	assert.Equal(t, StrengthClear, got.Strength)
}
