package text

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// WhatlangDetector is the whatlanggo backend. It is lighter than lingua but
// weaker on short text, so unreliable results fall back to the default.
type WhatlangDetector struct {
	options       whatlanggo.Options
	fallback      string
	minConfidence float64
}

var whatlangByIsoCode = func() map[string]whatlanggo.Lang {
	langs := make(map[string]whatlanggo.Lang, len(whatlanggo.Langs))
	for lang := range whatlanggo.Langs {
		if code := lang.Iso6391(); code != "" {
			langs[code] = lang
		}
	}
	return langs
}()

func NewWhatlangDetector(codes []string, fallback string, minConfidence float64) (*WhatlangDetector, error) {
	options := whatlanggo.Options{}
	if len(codes) > 0 {
		options.Whitelist = make(map[whatlanggo.Lang]bool, len(codes))
		for _, code := range normalizeCodes(codes) {
			lang, ok := whatlangByIsoCode[code]
			if !ok {
				return nil, fmt.Errorf("language %q is not supported by whatlang", code)
			}
			options.Whitelist[lang] = true
		}
	}
	logger.WithField("languages", len(options.Whitelist)).Info("Whatlang language detector initialized")
	return &WhatlangDetector{
		options:       options,
		fallback:      normalizeCode(fallback),
		minConfidence: minConfidence,
	}, nil
}

func (d *WhatlangDetector) Detect(text string) Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackDetection(d.fallback, text, "empty text")
	}

	info := whatlanggo.DetectWithOptions(text, d.options)
	if info.Script == nil {
		return fallbackDetection(d.fallback, text, "no script detected")
	}
	if !info.IsReliable() {
		return fallbackDetection(d.fallback, text, "unreliable detection")
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return fallbackDetection(d.fallback, text, "no ISO 639-1 code")
	}
	if info.Confidence < d.minConfidence {
		return fallbackDetection(d.fallback, text, "low confidence")
	}
	return Detection{Code: code, Detected: true, Confidence: info.Confidence}
}
