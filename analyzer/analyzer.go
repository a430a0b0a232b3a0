// Package analyzer runs the mood pipeline: normalize, detect the language,
// translate to English when needed, score with VADER and classify.
package analyzer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/moodscope/metrics"
	"github.com/tsingjyujing/moodscope/models"
	"github.com/tsingjyujing/moodscope/mood"
	"github.com/tsingjyujing/moodscope/sentiment"
	"github.com/tsingjyujing/moodscope/text"
	"github.com/tsingjyujing/moodscope/utils"
)

var logger = utils.Logger

// ErrEmptyInput is returned for blank text; nothing else in the pipeline is fatal.
var ErrEmptyInput = errors.New("please enter some text to analyze")

const (
	WarningEmptyInput        = "empty_input"
	WarningTranslationFailed = "translation_failed"
)

const HowItWorks = "This app uses smart technology to understand the mood of your text in any language. " +
	"It first detects the language, translates it to English if necessary, and then analyzes the emotional tone. " +
	"It's like having a multilingual friend read your text and tell you how it feels!"

type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type Report struct {
	ID          string             `json:"id" yaml:"id"`
	Text        string             `json:"text" yaml:"text"`
	Language    text.Detection     `json:"language" yaml:"language"`
	Translation models.Translation `json:"translation" yaml:"translation"`
	Scores      sentiment.Scores   `json:"scores" yaml:"scores"`
	Mood        mood.Report        `json:"mood" yaml:"mood"`
	Warnings    []Warning          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type Translator interface {
	ToEnglish(ctx context.Context, text string, sourceLang string) models.Translation
}

type Scorer interface {
	Score(text string) sentiment.Scores
}

// Analyzer holds read-only collaborators built once at startup,
// so one instance serves concurrent requests.
type Analyzer struct {
	normalizer text.Normalizer
	detector   text.LanguageDetector
	translator Translator
	scorer     Scorer
}

// NewAnalyzer wires the pipeline. normalizer may be nil.
func NewAnalyzer(normalizer text.Normalizer, detector text.LanguageDetector, translator Translator, scorer Scorer) *Analyzer {
	return &Analyzer{
		normalizer: normalizer,
		detector:   detector,
		translator: translator,
		scorer:     scorer,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, rawText string) (*Report, error) {
	if strings.TrimSpace(rawText) == "" {
		metrics.EmptyInputsTotal.Inc()
		return nil, ErrEmptyInput
	}
	id := uuid.NewString()
	log := logger.WithField("analysis_id", id)

	normalized := a.normalize(rawText, log)
	if normalized == "" {
		metrics.EmptyInputsTotal.Inc()
		return nil, ErrEmptyInput
	}

	detection := a.detector.Detect(normalized)
	if !detection.Detected {
		metrics.DetectionFallbacksTotal.Inc()
	}

	translation := a.translator.ToEnglish(ctx, normalized, detection.Code)
	scores := a.scorer.Score(translation.Text)
	moodReport := mood.Classify(scores)

	report := &Report{
		ID:          id,
		Text:        rawText,
		Language:    detection,
		Translation: reportedTranslation(translation),
		Scores:      scores,
		Mood:        moodReport,
	}
	switch {
	case translation.Err != nil:
		metrics.TranslationsTotal.WithLabelValues(detection.Code, metrics.TranslationFailed).Inc()
		report.Warnings = append(report.Warnings, Warning{
			Code:    WarningTranslationFailed,
			Message: "Translation failed. Proceeding with original text.",
			Detail:  translation.Err.Error(),
		})
	case translation.Translated:
		metrics.TranslationsTotal.WithLabelValues(detection.Code, metrics.TranslationSucceeded).Inc()
	}
	metrics.AnalysesTotal.WithLabelValues(string(moodReport.Overall)).Inc()
	metrics.CompoundScore.Observe(scores.Compound)

	log.WithFields(logrus.Fields{
		"language":   detection.Code,
		"detected":   detection.Detected,
		"translated": translation.Translated,
		"compound":   scores.Compound,
		"overall":    moodReport.Overall,
		"label":      moodReport.Label,
	}).Info("Analyzed text")
	return report, nil
}

// reportedTranslation keeps the English text only when a backend produced it,
// otherwise it would repeat the input.
func reportedTranslation(translation models.Translation) models.Translation {
	if !translation.Translated {
		translation.Text = ""
	}
	return translation
}

func (a *Analyzer) normalize(rawText string, log *logrus.Entry) string {
	if a.normalizer == nil {
		return strings.TrimSpace(rawText)
	}
	normalized, err := a.normalizer.Normalize(rawText)
	if err != nil {
		log.WithError(err).Warn("Failed to normalize text, using it as is")
		return strings.TrimSpace(rawText)
	}
	return normalized
}
