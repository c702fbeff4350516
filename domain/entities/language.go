package entities

import "fmt"

// Language is one side of the bilingual pair. Every message carries exactly one
// source language; the target is always the complement.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// ParseLanguage validates a wire-format language code.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case English, Vietnamese:
		return Language(code), nil
	}
	return "", fmt.Errorf("unsupported language %q", code)
}

// Complement returns the other half of the en/vi pair.
func (l Language) Complement() Language {
	if l == English {
		return Vietnamese
	}
	return English
}

// Name returns the human-readable name used in translation instructions.
func (l Language) Name() string {
	if l == Vietnamese {
		return "Vietnamese"
	}
	return "English"
}

func (l Language) String() string {
	return string(l)
}
