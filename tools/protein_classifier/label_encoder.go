package protein_classifier

import (
	"fmt"
)

// LabelEncoderSpec is the serialized label encoder: class names by index.
type LabelEncoderSpec struct {
	Classes []string `json:"classes"`
}

// LabelEncoder maps class indices to class names.
type LabelEncoder struct {
	classes []string
}

// NewLabelEncoder rejects empty, blank and duplicate class names.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("label encoder has no classes")
	}
	seen := make(map[string]bool, len(classes))
	for i, c := range classes {
		if c == "" {
			return nil, fmt.Errorf("class %d has an empty name", i)
		}
		if seen[c] {
			return nil, fmt.Errorf("class %q listed twice", c)
		}
		seen[c] = true
	}
	return &LabelEncoder{classes: append([]string(nil), classes...)}, nil
}

func (le *LabelEncoder) Len() int { return len(le.classes) }

// InverseTransform decodes a class index into its label.
func (le *LabelEncoder) InverseTransform(idx int) (string, error) {
	if idx < 0 || idx >= len(le.classes) {
		return "", fmt.Errorf("%w: index %d outside [0, %d)", ErrUnknownClass, idx, len(le.classes))
	}
	return le.classes[idx], nil
}

// Classes returns a copy of the class names in index order.
func (le *LabelEncoder) Classes() []string {
	return append([]string(nil), le.classes...)
}
