package protein_classifier

import (
	"strings"
	"unicode"
)

// NonStandardCodes are ambiguous or rare residue codes removed before prediction.
const NonStandardCodes = "XUZOB"

var stripNonStandard = strings.NewReplacer("X", "", "U", "", "Z", "", "O", "", "B", "")

// Normalize upper-cases seq and removes every non-standard code.
// The result may be empty.
func Normalize(seq string) string {
	return stripNonStandard.Replace(strings.ToUpper(seq))
}

// IsAlphabetic reports whether s is non-empty and made of letters only.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ValidateFreeText checks user-typed input and returns it with surrounding
// whitespace trimmed.
func ValidateFreeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptySequence
	}
	if !IsAlphabetic(text) {
		return "", ErrNotAlphabetic
	}
	return text, nil
}
