package i18n

import "testing"

func TestLocalesDefaultFirst(t *testing.T) {
	got := Locales()
	if len(got) != 6 {
		t.Fatalf("Locales() returned %d codes, want 6", len(got))
	}
	if got[0] != DefaultLocale {
		t.Errorf("Locales()[0] = %q, want %q", got[0], DefaultLocale)
	}

	// Mutating the returned slice must not affect the package state.
	got[0] = "xx"
	if fresh := Locales(); fresh[0] != DefaultLocale {
		t.Error("Locales() returned a shared backing array")
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"en", true},
		{"de", true},
		{"fr", true},
		{"zh", true},
		{"ar", true},
		{"es", true},
		{"ru", false},
		{"EN", false},
		{"de-AT", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsSupported(tt.code); got != tt.expected {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"exact match", "en", "en", true},
		{"region subtag", "de-AT", "de", true},
		{"script subtag", "zh-Hant", "zh", true},
		{"uppercase", "FR", "fr", true},
		{"unsupported language", "ru", "", false},
		{"unparseable", "not a tag", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
