package mnemonic

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateProducesValidPhrases(t *testing.T) {
	for i := 0; i < 16; i++ {
		phrase, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if got := len(strings.Fields(phrase)); got != WordCount {
			t.Fatalf("word count = %d, want %d (phrase %q)", got, WordCount, phrase)
		}

		if !Validate(phrase) {
			t.Errorf("Validate(Generate()) = false for %q", phrase)
		}
	}
}

func TestGenerateWithFixedEntropy(t *testing.T) {
	// All-zero entropy is the first BIP-39 reference vector.
	prev := entropySource
	defer func() { entropySource = prev }()
	entropySource = bytes.NewReader(make([]byte, 16))

	phrase, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if phrase != want {
		t.Errorf("phrase = %q, want %q", phrase, want)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		phrase string
		want   bool
	}{
		{
			name:   "reference vector",
			phrase: "legal winner thank year wave sausage worth useful legal winner thank yellow",
			want:   true,
		},
		{
			name:   "all ff entropy vector",
			phrase: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
			want:   true,
		},
		{
			name:   "mixed case and extra whitespace",
			phrase: "  Legal WINNER thank year wave   sausage worth useful legal winner thank yellow \n",
			want:   true,
		},
		{
			name:   "checksum mismatch",
			phrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			want:   false,
		},
		{
			name:   "word outside dictionary",
			phrase: "legal winner thank year wave sausage worth useful legal winner thank xylophone",
			want:   false,
		},
		{
			name:   "too few words",
			phrase: "legal winner thank year wave sausage worth useful legal winner thank",
			want:   false,
		},
		{
			name:   "twenty four words rejected",
			phrase: strings.Repeat("zoo ", 23) + "vote",
			want:   false,
		},
		{
			name:   "empty",
			phrase: "",
			want:   false,
		},
		{
			name:   "garbage",
			phrase: "not a mnemonic at all",
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.phrase); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.phrase, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  Legal WINNER\tthank ")
	if got != "legal winner thank" {
		t.Errorf("Normalize = %q", got)
	}
}
