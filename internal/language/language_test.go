package language

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code    string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"ES", Spanish, false},
		{" fr ", French, false},
		{"vi", Vietnamese, false},
		{"de", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Parse(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedLanguage) {
				t.Errorf("Parse(%q) error = %v, want ErrUnsupportedLanguage", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		lang      Language
		tesseract string
		name      string
	}{
		{English, "eng", "English"},
		{Spanish, "spa", "Spanish"},
		{French, "fra", "French"},
		{Vietnamese, "vie", "Vietnamese"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.Code(), func(t *testing.T) {
			if got := tt.lang.TesseractCode(); got != tt.tesseract {
				t.Errorf("TesseractCode() = %q, want %q", got, tt.tesseract)
			}
			if got := tt.lang.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestPairValidate(t *testing.T) {
	if err := (Pair{Source: Spanish, Target: English}).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := (Pair{Source: Spanish}).Validate(); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Validate() = %v, want ErrUnsupportedLanguage", err)
	}
	if _, err := ParsePair("es", "xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("ParsePair() = %v, want ErrUnsupportedLanguage", err)
	}
}
