package license

import "testing"

func TestKindAbbr(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Zero, "CC0"},
		{By, "CC BY"},
		{ByNc, "CC BY-NC"},
		{ByNcNd, "CC BY-NC-ND"},
		{ByNcSa, "CC BY-NC-SA"},
		{ByNd, "CC BY-ND"},
		{BySa, "CC BY-SA"},
	}

	for _, tt := range tests {
		if got := tt.kind.Abbr(); got != tt.want {
			t.Errorf("Abbr() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindFullText(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Zero, "CC0"},
		{By, "Attribution"},
		{ByNc, "Attribution-NonCommercial"},
		{ByNcNd, "Attribution-NonCommercial-NoDerivatives"},
		{ByNcSa, "Attribution-NonCommercial-ShareAlike"},
		{ByNd, "Attribution-NoDerivatives"},
		{BySa, "Attribution-ShareAlike"},
	}

	for _, tt := range tests {
		if got := tt.kind.FullText(); got != tt.want {
			t.Errorf("FullText() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindTablesCoverEveryCode(t *testing.T) {
	for code, kind := range kindByCode {
		if kind.Abbr() == "" {
			t.Errorf("code %q maps to a Kind without an abbreviation", code)
		}
		if kind.FullText() == "" {
			t.Errorf("code %q maps to a Kind without a full rights phrase", code)
		}
	}
}
