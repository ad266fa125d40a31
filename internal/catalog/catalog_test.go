package catalog

import "testing"

func TestCatalogDisplayName(t *testing.T) {
	c := New()
	c.Update(&Config{
		Jurisdictions: []JurisdictionProps{
			{Slug: "us", Name: "United States"},
			{Slug: "Scotland", Name: "UK Scotland"},
		},
	})

	tests := []struct {
		name   string
		slug   string
		want   string
		wantOK bool
	}{
		{name: "known slug", slug: "us", want: "United States", wantOK: true},
		{name: "lookup is case-insensitive", slug: "US", want: "United States", wantOK: true},
		{name: "slug stored mixed-case", slug: "scotland", want: "UK Scotland", wantOK: true},
		{name: "unknown slug", slug: "atlantis", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.DisplayName(tt.slug)
			if ok != tt.wantOK {
				t.Fatalf("DisplayName(%q) ok = %v, want %v", tt.slug, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}

func TestCatalogUpdateReplaces(t *testing.T) {
	c := New()
	c.Update(&Config{Jurisdictions: []JurisdictionProps{{Slug: "us", Name: "United States"}}})
	c.Update(&Config{Jurisdictions: []JurisdictionProps{{Slug: "de", Name: "Germany"}}})

	if _, ok := c.DisplayName("us"); ok {
		t.Error("DisplayName(us) still known after replacing catalog")
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
	if c.LastReload().IsZero() {
		t.Error("LastReload() is zero after update")
	}
}
