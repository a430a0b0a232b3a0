// Detect language of a given text using github.com/pemistahl/lingua-go
// or github.com/abadojack/whatlanggo
package text

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/moodscope/config"
	"github.com/tsingjyujing/moodscope/utils"
)

var logger = utils.Logger

// Detection is the outcome of language detection.
// Code is never empty: when Detected is false it holds the fallback language.
type Detection struct {
	Code       string  `json:"code" yaml:"code"`
	Detected   bool    `json:"detected" yaml:"detected"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// LanguageDetector detects the language of a given text
type LanguageDetector interface {
	// Detect never fails, undetectable text maps to the fallback language
	Detect(text string) Detection
}

// NewLanguageDetector builds the backend selected by cfg.Backend
func NewLanguageDetector(cfg config.Detector) (LanguageDetector, error) {
	switch cfg.Backend {
	case config.DetectorLingua:
		return NewLinguaDetector(cfg.Languages, cfg.DefaultLanguage, cfg.MinConfidence, cfg.MinimumRelativeDistance)
	case config.DetectorWhatlang:
		return NewWhatlangDetector(cfg.Languages, cfg.DefaultLanguage, cfg.MinConfidence)
	}
	return nil, fmt.Errorf("unknown detector backend: %s", cfg.Backend)
}

func fallbackDetection(fallback string, text string, reason string) Detection {
	logger.WithFields(logrus.Fields{
		"fallback":    fallback,
		"reason":      reason,
		"text_length": len(text),
	}).Debug("Language detection fell back to default")
	return Detection{Code: fallback, Detected: false}
}

// LinguaDetector is the lingua-go backend
type LinguaDetector struct {
	detector      lingua.LanguageDetector
	fallback      string
	minConfidence float64
}

var linguaByIsoCode = lo.KeyBy(lingua.AllLanguages(), func(l lingua.Language) string {
	return isoCode(l)
})

func isoCode(l lingua.Language) string {
	return strings.ToLower(l.IsoCode639_1().String())
}

// NewLinguaDetector creates a lingua detector restricted to the given ISO 639-1 codes.
// An empty list loads every language lingua supports.
func NewLinguaDetector(codes []string, fallback string, minConfidence, minRelativeDistance float64) (*LinguaDetector, error) {
	languages := lingua.AllLanguages()
	if len(codes) > 0 {
		languages = make([]lingua.Language, 0, len(codes))
		for _, code := range lo.Uniq(normalizeCodes(codes)) {
			language, ok := linguaByIsoCode[code]
			if !ok {
				return nil, fmt.Errorf("language %q is not supported by lingua", code)
			}
			languages = append(languages, language)
		}
	}
	// lingua panics with fewer than two candidate languages
	if len(languages) < 2 {
		return nil, fmt.Errorf("lingua needs at least two languages, got %d", len(languages))
	}
	if minRelativeDistance < 0 || minRelativeDistance > 0.99 {
		return nil, fmt.Errorf("minimum relative distance must be in [0, 0.99], got %v", minRelativeDistance)
	}

	builder := lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	if minRelativeDistance > 0 {
		builder = builder.WithMinimumRelativeDistance(minRelativeDistance)
	}
	logger.WithField("languages", len(languages)).Info("Lingua language detector initialized")
	return &LinguaDetector{
		detector:      builder.Build(),
		fallback:      normalizeCode(fallback),
		minConfidence: minConfidence,
	}, nil
}

// Detect detects the language of the given text
func (d *LinguaDetector) Detect(text string) Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackDetection(d.fallback, text, "empty text")
	}

	detectedLang, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return fallbackDetection(d.fallback, text, "no reliable language")
	}
	confidence := d.detector.ComputeLanguageConfidence(text, detectedLang)
	if confidence < d.minConfidence {
		return fallbackDetection(d.fallback, text, "low confidence")
	}
	return Detection{Code: isoCode(detectedLang), Detected: true, Confidence: confidence}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func normalizeCodes(codes []string) []string {
	return lo.Map(codes, func(code string, _ int) string {
		return normalizeCode(code)
	})
}
