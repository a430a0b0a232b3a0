package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsingjyujing/moodscope/metrics"
	"github.com/tsingjyujing/moodscope/models"
	"github.com/tsingjyujing/moodscope/mood"
	"github.com/tsingjyujing/moodscope/sentiment"
	"github.com/tsingjyujing/moodscope/text"
)

type fakeDetector struct {
	detection text.Detection
	calls     int
	mu        sync.Mutex
}

func (d *fakeDetector) Detect(string) text.Detection {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.detection
}

type fakeTranslator struct {
	translated string
	err        error
	calls      int
	mu         sync.Mutex
}

func (t *fakeTranslator) ToEnglish(_ context.Context, input string, sourceLang string) models.Translation {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	if sourceLang == "en" {
		return models.Translation{Text: input}
	}
	if t.err != nil {
		return models.Translation{Text: input, Err: t.err}
	}
	return models.Translation{Text: t.translated, Translated: true}
}

type recordingScorer struct {
	inner  *sentiment.VaderScorer
	inputs []string
	mu     sync.Mutex
}

func (s *recordingScorer) Score(input string) sentiment.Scores {
	s.mu.Lock()
	s.inputs = append(s.inputs, input)
	s.mu.Unlock()
	return s.inner.Score(input)
}

type failingNormalizer struct{}

func (failingNormalizer) Normalize(string) (string, error) {
	return "", errors.New("boom")
}

func newTestAnalyzer(detection text.Detection, translator *fakeTranslator) (*Analyzer, *fakeDetector, *recordingScorer) {
	normalizer, _ := text.NewNormalizer(false)
	detector := &fakeDetector{detection: detection}
	scorer := &recordingScorer{inner: sentiment.NewVaderScorer(false)}
	return NewAnalyzer(normalizer, detector, translator, scorer), detector, scorer
}

func TestAnalyze_EmptyInput(t *testing.T) {
	translator := &fakeTranslator{}
	a, detector, scorer := newTestAnalyzer(text.Detection{Code: "en", Detected: true}, translator)
	before := testutil.ToFloat64(metrics.EmptyInputsTotal)

	for _, input := range []string{"", "   ", "\n\t  \r\n"} {
		report, err := a.Analyze(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Nil(t, report)
	}

	assert.Zero(t, detector.calls)
	assert.Zero(t, translator.calls)
	assert.Empty(t, scorer.inputs)
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.EmptyInputsTotal))
	assert.Equal(t, "please enter some text to analyze", ErrEmptyInput.Error())
}

func TestAnalyze_English(t *testing.T) {
	translator := &fakeTranslator{}
	a, _, scorer := newTestAnalyzer(text.Detection{Code: "en", Detected: true, Confidence: 0.9}, translator)

	report, err := a.Analyze(context.Background(), "  I love this wonderful day!  ")
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, "  I love this wonderful day!  ", report.Text)
	assert.Equal(t, "en", report.Language.Code)
	assert.False(t, report.Translation.Translated)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, []string{"I love this wonderful day!"}, scorer.inputs)
	assert.Equal(t, mood.Positive, report.Mood.Overall)
	assert.Equal(t, mood.Classify(report.Scores), report.Mood)
}

func TestAnalyze_TranslationTextOnlyWhenTranslated(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		err      error
		wantText string
	}{
		{name: "english input", code: "en", wantText: ""},
		{name: "translated", code: "pt", wantText: "What a beautiful day"},
		{name: "translation failed", code: "pt", err: errors.New("down"), wantText: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := &fakeTranslator{translated: "What a beautiful day", err: tt.err}
			a, _, _ := newTestAnalyzer(text.Detection{Code: tt.code, Detected: true}, translator)
			report, err := a.Analyze(context.Background(), "Que dia lindo")
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, report.Translation.Text)

			data, err := json.Marshal(report)
			require.NoError(t, err)
			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &decoded))
			translation := decoded["translation"].(map[string]interface{})
			_, hasText := translation["text"]
			assert.Equal(t, tt.wantText != "", hasText)
		})
	}
}

func TestAnalyze_TranslatesForeignText(t *testing.T) {
	translator := &fakeTranslator{translated: "I am very happy today, this is wonderful!"}
	a, _, scorer := newTestAnalyzer(text.Detection{Code: "fr", Detected: true}, translator)
	before := testutil.ToFloat64(metrics.TranslationsTotal.WithLabelValues("fr", metrics.TranslationSucceeded))

	report, err := a.Analyze(context.Background(), "Je suis très heureux aujourd'hui, c'est merveilleux !")
	require.NoError(t, err)

	assert.True(t, report.Translation.Translated)
	assert.Equal(t, []string{"I am very happy today, this is wonderful!"}, scorer.inputs)
	assert.Equal(t, mood.Positive, report.Mood.Overall)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.TranslationsTotal.WithLabelValues("fr", metrics.TranslationSucceeded)))
}

func TestAnalyze_TranslationFailureIsNotFatal(t *testing.T) {
	translator := &fakeTranslator{err: errors.New("backend unreachable")}
	a, _, scorer := newTestAnalyzer(text.Detection{Code: "de", Detected: true}, translator)

	report, err := a.Analyze(context.Background(), "Das ist ein schöner Tag")
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, WarningTranslationFailed, report.Warnings[0].Code)
	assert.Equal(t, "Translation failed. Proceeding with original text.", report.Warnings[0].Message)
	assert.Contains(t, report.Warnings[0].Detail, "backend unreachable")
	assert.False(t, report.Translation.Translated)
	assert.Equal(t, []string{"Das ist ein schöner Tag"}, scorer.inputs)
}

func TestAnalyze_DetectionFallbackCounted(t *testing.T) {
	translator := &fakeTranslator{}
	a, _, _ := newTestAnalyzer(text.Detection{Code: "en"}, translator)
	before := testutil.ToFloat64(metrics.DetectionFallbacksTotal)

	report, err := a.Analyze(context.Background(), "12345 !!!")
	require.NoError(t, err)

	assert.Equal(t, "en", report.Language.Code)
	assert.False(t, report.Language.Detected)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.DetectionFallbacksTotal))
}

func TestAnalyze_NormalizerErrorUsesRawText(t *testing.T) {
	detector := &fakeDetector{detection: text.Detection{Code: "en", Detected: true}}
	scorer := &recordingScorer{inner: sentiment.NewVaderScorer(false)}
	a := NewAnalyzer(failingNormalizer{}, detector, &fakeTranslator{}, scorer)

	_, err := a.Analyze(context.Background(), " good ")
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, scorer.inputs)
}

func TestAnalyze_Concurrent(t *testing.T) {
	translator := &fakeTranslator{translated: "great"}
	a, _, _ := newTestAnalyzer(text.Detection{Code: "es", Detected: true}, translator)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := a.Analyze(context.Background(), "¡Genial!")
			assert.NoError(t, err)
			assert.NotNil(t, report)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, translator.calls)
}

func TestRender(t *testing.T) {
	color.NoColor = true
	translator := &fakeTranslator{translated: "What a wonderful day!"}
	a, _, _ := newTestAnalyzer(text.Detection{Code: "es", Detected: true}, translator)
	report, err := a.Analyze(context.Background(), "¡Qué día tan maravilloso!")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "Detected language: es\n")
	assert.Contains(t, out, "Translated text (for analysis):\nWhat a wonderful day!\n")
	assert.Contains(t, out, "Overall Mood: "+string(report.Mood.Label)+" "+report.Mood.Indicator)
	assert.Contains(t, out, "What this means: "+report.Mood.Description)
	assert.Contains(t, out, report.Mood.BalanceComment)
	assert.Contains(t, out, report.Mood.StrengthComment)
	assert.Contains(t, out, "Key takeaway:\n"+report.Mood.Takeaway)
	assert.True(t, strings.HasSuffix(out, HowItWorks+"\n"))
	assert.NotContains(t, out, "⚠️")
}

func TestRender_Warnings(t *testing.T) {
	color.NoColor = true
	translator := &fakeTranslator{err: errors.New("timeout")}
	a, _, _ := newTestAnalyzer(text.Detection{Code: "it", Detected: true}, translator)
	report, err := a.Analyze(context.Background(), "Che bella giornata")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "⚠️  Translation failed. Proceeding with original text.\n"))
	assert.NotContains(t, out, "Translated text (for analysis):")
}

func TestRenderEmptyInput(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, RenderEmptyInput(&buf))
	assert.Equal(t, "⚠️  Please enter some text to analyze.\n\nHow it works\n"+HowItWorks+"\n", buf.String())
}

func TestAnalyze_ILoveThis(t *testing.T) {
	translator := &fakeTranslator{}
	a, _, _ := newTestAnalyzer(text.Detection{Code: "en", Detected: true}, translator)

	report, err := a.Analyze(context.Background(), "I love this!")
	require.NoError(t, err)

	assert.Equal(t, "en", report.Language.Code)
	assert.False(t, report.Translation.Translated)
	assert.Equal(t, mood.Positive, report.Mood.Overall)
	assert.Equal(t, mood.VeryPositive, report.Mood.Label)
	assert.Equal(t, "😊", report.Mood.Indicator)
	assert.Equal(t, mood.BalanceOverwhelminglyPositive, report.Mood.Balance)
}
