package text

import (
	"strings"

	"github.com/longbridgeapp/opencc"
	"golang.org/x/text/unicode/norm"
)

type Normalizer interface {
	Normalize(text string) (string, error)
}

// UnicodeNormalizer prepares raw input for detection and scoring.
// Case is preserved because VADER treats capitalised words as emphasis.
type UnicodeNormalizer struct {
	t2s *opencc.OpenCC
}

// NewNormalizer creates a normalizer.
// It performs the following normalization steps:
// 1. Unicode NFKC normalization (full-width forms, compatibility characters)
// 2. Traditional Chinese -> Simplified Chinese, only when useT2s is set
// 3. Trim surrounding whitespace
func NewNormalizer(useT2s bool) (Normalizer, error) {
	var t2s *opencc.OpenCC
	if useT2s {
		var err error
		t2s, err = opencc.New("t2s")
		if err != nil {
			return nil, err
		}
	}
	return &UnicodeNormalizer{t2s: t2s}, nil
}

func (n *UnicodeNormalizer) Normalize(text string) (string, error) {
	s := norm.NFKC.String(text)
	if n.t2s != nil {
		var err error
		s, err = n.t2s.Convert(s)
		if err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(s), nil
}
