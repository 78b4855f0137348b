package protein_classifier

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"mehtiav", "MEHTIAV"},
		{"MXEUHZTOIBAV", "MEHTIAV"},
		{"xuzob", ""},
		{"", ""},
		{"ACDEFGHIKLMNPQRSTVWY", "ACDEFGHIKLMNPQRSTVWY"},
		{"jJ", "JJ"}, // J is not in the removed set
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func randomLetters(r *rand.Rand, n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

func TestNormalizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		s := randomLetters(r, r.Intn(80))
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q then %q", s, once, twice)
		}
		if strings.ContainsAny(once, NonStandardCodes) {
			t.Fatalf("Normalize(%q) = %q still has non-standard codes", s, once)
		}
		if once != strings.ToUpper(once) {
			t.Fatalf("Normalize(%q) = %q is not upper case", s, once)
		}
	}
}

func TestValidateFreeText(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"MKV", "MKV", nil},
		{"  mkv\n", "mkv", nil},
		{"12345", "", ErrNotAlphabetic},
		{"MKV1", "", ErrNotAlphabetic},
		{"MK V", "", ErrNotAlphabetic},
		{"MK-V", "", ErrNotAlphabetic},
		{"", "", ErrEmptySequence},
		{" \t", "", ErrEmptySequence},
	}
	for _, tc := range cases {
		got, err := ValidateFreeText(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ValidateFreeText(%q) err = %v, want %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ValidateFreeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	if msg := UserMessage(ErrNotAlphabetic); msg != "Please enter alphabetic protein sequence." {
		t.Fatalf("unexpected message %q", msg)
	}
	if !IsInputError(ErrEmptySequence) || !IsInputError(ErrUnknownPreset) {
		t.Fatal("validation errors should be input errors")
	}
	if IsInputError(ErrArtifact) || IsInputError(errors.New("boom")) {
		t.Fatal("model errors are not input errors")
	}
}
