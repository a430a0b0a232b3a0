package config

import (
	"fmt"
	"time"
)

const (
	DetectorLingua   = "lingua"
	DetectorWhatlang = "whatlang"

	TranslatorOpenAI = "openai"
	TranslatorOllama = "ollama"
	TranslatorNone   = "none"
)

type Envelope struct {
	Server     Server     `yaml:"server" mapstructure:"server"`
	Detector   Detector   `yaml:"detector" mapstructure:"detector"`
	Translator Translator `yaml:"translator" mapstructure:"translator"`
	Scorer     Scorer     `yaml:"scorer" mapstructure:"scorer"`
}

type Server struct {
	Address string   `yaml:"address" mapstructure:"address"`
	Tokens  []string `yaml:"tokens" mapstructure:"tokens"`
}

// Detector selects the language detection backend.
// Languages is a list of ISO 639-1 codes, empty means every language the backend knows.
type Detector struct {
	Backend                 string   `yaml:"backend" mapstructure:"backend"`
	Languages               []string `yaml:"languages" mapstructure:"languages"`
	DefaultLanguage         string   `yaml:"default_language" mapstructure:"default_language"`
	MinConfidence           float64  `yaml:"min_confidence" mapstructure:"min_confidence"`
	MinimumRelativeDistance float64  `yaml:"minimum_relative_distance" mapstructure:"minimum_relative_distance"`
	ChineseT2S              bool     `yaml:"chinese_t2s" mapstructure:"chinese_t2s"`
}

type Translator struct {
	Type    string                 `yaml:"type" mapstructure:"type"`
	Config  map[string]interface{} `yaml:"config" mapstructure:"config"`
	Timeout time.Duration          `yaml:"timeout" mapstructure:"timeout"`
	Breaker Breaker                `yaml:"breaker" mapstructure:"breaker"`
}

type Breaker struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	MinRequests  uint32        `yaml:"min_requests" mapstructure:"min_requests"`
	FailureRatio float64       `yaml:"failure_ratio" mapstructure:"failure_ratio"`
	OpenTimeout  time.Duration `yaml:"open_timeout" mapstructure:"open_timeout"`
}

type Scorer struct {
	StripMarkdown bool `yaml:"strip_markdown" mapstructure:"strip_markdown"`
}

// Default returns the configuration used when no config file is present.
func Default() Envelope {
	return Envelope{
		Server: Server{
			Address: ":8080",
		},
		Detector: Detector{
			Backend:         DetectorLingua,
			Languages:       []string{"en", "es", "fr", "de", "it", "pt", "nl", "ru", "zh", "ja", "ko", "ar", "hi", "tr", "pl"},
			DefaultLanguage: "en",
		},
		Translator: Translator{
			Type:    TranslatorNone,
			Timeout: 30 * time.Second,
			Breaker: Breaker{
				Enabled:      true,
				MinRequests:  5,
				FailureRatio: 0.6,
				OpenTimeout:  30 * time.Second,
			},
		},
	}
}

// Validate checks the settings that cannot be corrected silently.
func (e *Envelope) Validate() error {
	switch e.Detector.Backend {
	case DetectorLingua, DetectorWhatlang:
	default:
		return fmt.Errorf("unknown detector backend: %s", e.Detector.Backend)
	}
	if e.Detector.DefaultLanguage == "" {
		return fmt.Errorf("detector.default_language must not be empty")
	}
	if e.Detector.MinConfidence < 0 || e.Detector.MinConfidence > 1 {
		return fmt.Errorf("detector.min_confidence must be in [0, 1], got %v", e.Detector.MinConfidence)
	}
	switch e.Translator.Type {
	case TranslatorOpenAI, TranslatorOllama, TranslatorNone:
	default:
		return fmt.Errorf("unknown translator type: %s", e.Translator.Type)
	}
	if e.Translator.Timeout < 0 {
		return fmt.Errorf("translator.timeout must not be negative")
	}
	if b := e.Translator.Breaker; b.Enabled && (b.FailureRatio <= 0 || b.FailureRatio > 1) {
		return fmt.Errorf("translator.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}
