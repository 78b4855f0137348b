package protein_classifier

import "errors"

var (
	// ErrArtifact marks a missing, unreadable or inconsistent model artifact.
	// It is a startup failure; nothing recovers from it per request.
	ErrArtifact = errors.New("invalid model artifact")

	// ErrNotAlphabetic rejects free text containing digits or other symbols.
	ErrNotAlphabetic = errors.New("sequence is not alphabetic")

	// ErrEmptySequence rejects input with no residues left after normalization.
	ErrEmptySequence = errors.New("sequence is empty")

	ErrUnknownPreset = errors.New("unknown preset sequence")
	ErrUnknownClass  = errors.New("unknown class")
)

// UserMessage is the text shown on the form in place of a prediction.
// It returns "" for errors that are not input problems.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotAlphabetic):
		return "Please enter alphabetic protein sequence."
	case errors.Is(err, ErrEmptySequence):
		return "Please enter a protein sequence containing standard amino-acid codes."
	case errors.Is(err, ErrUnknownPreset):
		return "Please select one of the listed protein sequences."
	}
	return ""
}

// IsInputError reports whether err was caused by the request rather than the model.
func IsInputError(err error) bool {
	return UserMessage(err) != ""
}
