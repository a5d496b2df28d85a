// Package language defines the closed set of languages the pipeline can
// detect and translate between.
package language

import (
	"errors"
	"fmt"
	"strings"

	textlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnsupportedLanguage is returned for codes outside the supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is one of the supported languages. The zero value is invalid.
type Language int

const (
	_ Language = iota
	English
	Spanish
	French
	Vietnamese
)

type info struct {
	code      string
	tesseract string
}

// Adding a language means adding a constant above and a row here.
var table = map[Language]info{
	English:    {code: "en", tesseract: "eng"},
	Spanish:    {code: "es", tesseract: "spa"},
	French:     {code: "fr", tesseract: "fra"},
	Vietnamese: {code: "vi", tesseract: "vie"},
}

// All returns the supported languages in declaration order.
func All() []Language {
	return []Language{English, Spanish, French, Vietnamese}
}

// Parse maps an ISO 639-1 code (case-insensitive) to a Language.
func Parse(code string) (Language, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for _, l := range All() {
		if table[l].code == c {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := table[l]
	return ok
}

// Code is the ISO 639-1 code.
func (l Language) Code() string {
	return table[l].code
}

// TesseractCode is the traineddata name used by tesseract.
func (l Language) TesseractCode() string {
	return table[l].tesseract
}

// Tag is the BCP 47 tag for the language.
func (l Language) Tag() textlang.Tag {
	if !l.Valid() {
		return textlang.Und
	}
	return textlang.Make(l.Code())
}

// Name is the English display name, e.g. "Spanish".
func (l Language) Name() string {
	if !l.Valid() {
		return "unknown"
	}
	return display.English.Languages().Name(l.Tag())
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return l.Code()
}

// Pair is a source/target language setting.
type Pair struct {
	Source Language
	Target Language
}

// ParsePair parses both codes, failing on the first unsupported one.
func ParsePair(src, dst string) (Pair, error) {
	s, err := Parse(src)
	if err != nil {
		return Pair{}, fmt.Errorf("source: %w", err)
	}
	d, err := Parse(dst)
	if err != nil {
		return Pair{}, fmt.Errorf("target: %w", err)
	}
	return Pair{Source: s, Target: d}, nil
}

// Validate fails with ErrUnsupportedLanguage if either side is not supported.
func (p Pair) Validate() error {
	if !p.Source.Valid() {
		return fmt.Errorf("source: %w: %v", ErrUnsupportedLanguage, p.Source)
	}
	if !p.Target.Valid() {
		return fmt.Errorf("target: %w: %v", ErrUnsupportedLanguage, p.Target)
	}
	return nil
}

func (p Pair) String() string {
	return p.Source.String() + "->" + p.Target.String()
}
