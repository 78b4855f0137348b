package protein_classifier

import "fmt"

// Source says which input control a request came from.
type Source int

const (
	SourceFreeText Source = iota
	SourcePreset
)

func (s Source) String() string {
	switch s {
	case SourceFreeText:
		return "free_text"
	case SourcePreset:
		return "preset"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Request is one user action: either typed text or a preset choice.
// Both go through the same pipeline.
type Request struct {
	Source Source
	Text   string // SourceFreeText
	Preset int    // SourcePreset
}

// FreeText builds a request from a typed sequence.
func FreeText(text string) Request {
	return Request{Source: SourceFreeText, Text: text}
}

// PresetChoice builds a request from a dropdown index.
func PresetChoice(index int) Request {
	return Request{Source: SourcePreset, Preset: index}
}

// Resolve returns the raw sequence the request refers to. Free text must be
// alphabetic; presets are trusted and skip that check.
func (r Request) Resolve() (string, error) {
	switch r.Source {
	case SourceFreeText:
		return ValidateFreeText(r.Text)
	case SourcePreset:
		return Preset(r.Preset)
	}
	return "", fmt.Errorf("unknown request source %v", r.Source)
}
