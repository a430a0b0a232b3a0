package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/tsingjyujing/moodscope/config"
	"github.com/tsingjyujing/moodscope/utils"
)

var logger = utils.Logger

var (
	ErrNoTranslator     = errors.New("no translation backend configured")
	ErrEmptyTranslation = errors.New("translation backend returned an empty answer")
)

// Translation is the text handed to the scorer.
// When Err is set, Text is the original input and Translated is false.
type Translation struct {
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Translated bool   `json:"translated" yaml:"translated"`
	Err        error  `json:"-" yaml:"-"`
}

// EnglishTranslator degrades gracefully: it never returns an error, only a
// Translation carrying the reason it fell back to the original text.
type EnglishTranslator struct {
	model   TranslationModel
	breaker *gobreaker.CircuitBreaker[string]
	timeout time.Duration
}

// NewEnglishTranslator wraps model, which may be nil when translation is disabled.
func NewEnglishTranslator(model TranslationModel, cfg config.Translator) *EnglishTranslator {
	t := &EnglishTranslator{model: model, timeout: cfg.Timeout}
	if model != nil && cfg.Breaker.Enabled {
		t.breaker = newBreaker(cfg.Breaker)
	}
	return t
}

func newBreaker(cfg config.Breaker) *gobreaker.CircuitBreaker[string] {
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			// the caller giving up says nothing about the backend
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})
}

// ToEnglish returns text unchanged for English input without calling the backend.
func (t *EnglishTranslator) ToEnglish(ctx context.Context, text string, sourceLang string) Translation {
	if strings.EqualFold(strings.TrimSpace(sourceLang), "en") {
		return Translation{Text: text}
	}
	if t.model == nil {
		logger.WithField("source", sourceLang).Info("Translation disabled, proceeding with original text")
		return Translation{Text: text, Err: ErrNoTranslator}
	}

	translated, err := t.call(ctx, text, sourceLang)
	if err != nil {
		logger.WithError(err).WithField("source", sourceLang).Warn("Translation failed, proceeding with original text")
		return Translation{Text: text, Err: fmt.Errorf("translate from %s: %w", sourceLang, err)}
	}
	logger.WithFields(logrus.Fields{
		"source":            sourceLang,
		"original_length":   len(text),
		"translated_length": len(translated),
	}).Debug("Translated text to English")
	return Translation{Text: translated, Translated: true}
}

func (t *EnglishTranslator) call(ctx context.Context, text string, sourceLang string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	run := func() (string, error) {
		out, err := t.model.Translate(ctx, text, sourceLang)
		if err != nil {
			return "", err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return "", ErrEmptyTranslation
		}
		return out, nil
	}
	if t.breaker == nil {
		return run()
	}
	return t.breaker.Execute(run)
}
