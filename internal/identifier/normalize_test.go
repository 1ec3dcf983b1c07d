package identifier

import (
	"errors"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"scheme www path query", "https://www.Example.com/page?x=1", "example.com", false},
		{"trailing dot", "example.com.", "example.com", false},
		{"bare host", "example.com", "example.com", false},
		{"http scheme", "http://acme.io", "acme.io", false},
		{"port stripped", "example.com:8080", "example.com", false},
		{"path without scheme", "example.com/about/team", "example.com", false},
		{"fragment without scheme", "example.com#top", "example.com", false},
		{"uppercase host", "EXAMPLE.COM", "example.com", false},
		{"subdomain kept", "shop.example.co.uk", "shop.example.co.uk", false},
		{"surrounding whitespace", "  example.com  ", "example.com", false},
		{"scheme only", "https://", "", true},
		{"www only", "www.", "", true},
		{"empty", "", "", true},
		{"embedded whitespace", "exa mple.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDomain(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDomain(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("error %v does not wrap ErrInvalid", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDomainEquivalenceClasses(t *testing.T) {
	variants := []string{
		"example.com",
		"EXAMPLE.COM",
		"example.com.",
		"www.example.com",
		"http://example.com",
		"https://example.com/",
		"https://www.Example.com/page?x=1",
		"example.com:443",
		"example.com#section",
	}
	for _, v := range variants {
		got, err := NormalizeDomain(v)
		if err != nil {
			t.Fatalf("NormalizeDomain(%q) unexpected error: %v", v, err)
		}
		if got != "example.com" {
			t.Errorf("NormalizeDomain(%q) = %q, want example.com", v, got)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"mixed case with padding", " User@Example.COM ", "user@example.com", false},
		{"minimal", "a@b", "a@b", false},
		{"plus tag", "dev+tag@example.com", "dev+tag@example.com", false},
		{"no at", "not-an-email", "", true},
		{"empty local part", "@example.com", "", true},
		{"empty domain part", "user@", "", true},
		{"two ats", "a@b@c", "", true},
		{"embedded whitespace", "a b@c.com", "", true},
		{"only whitespace", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEmail(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeEmail(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeLinkedin(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full company url", "https://www.linkedin.com/company/acme/", "company/acme", false},
		{"no scheme", "linkedin.com/company/acme", "company/acme", false},
		{"bare slug", "company/acme", "company/acme", false},
		{"personal profile", "https://linkedin.com/in/jane-doe-123", "in/jane-doe-123", false},
		{"country subdomain", "https://de.linkedin.com/company/acme", "company/acme", false},
		{"deep path trimmed", "linkedin.com/company/acme/about/", "company/acme", false},
		{"uppercase", "LinkedIn.com/Company/Acme", "company/acme", false},
		{"school profile", "linkedin.com/school/mit", "school/mit", false},
		{"query stripped", "linkedin.com/company/acme?trk=feed", "company/acme", false},
		{"foreign host", "facebook.com/company/acme", "", true},
		{"host only", "linkedin.com", "", true},
		{"unknown prefix", "linkedin.com/jobs/view/123", "", true},
		{"slug only", "acme", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLinkedin(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeLinkedin(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("NormalizeLinkedin(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeLinkedinIsIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.linkedin.com/company/acme/",
		"linkedin.com/in/jane-doe-123",
		"showcase/acme-cloud",
	}
	for _, raw := range inputs {
		once, err := NormalizeLinkedin(raw)
		if err != nil {
			t.Fatalf("NormalizeLinkedin(%q) unexpected error: %v", raw, err)
		}
		twice, err := NormalizeLinkedin(once)
		if err != nil {
			t.Fatalf("NormalizeLinkedin(%q) unexpected error: %v", once, err)
		}
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", raw, once, twice)
		}
	}
}

func TestNormalizeOpaquePreservesCase(t *testing.T) {
	got, err := NormalizeOpaque("  ChIJN1t_tDeuEmsRUsoyG83frY4 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ChIJN1t_tDeuEmsRUsoyG83frY4" {
		t.Errorf("NormalizeOpaque trimmed more than whitespace: %q", got)
	}

	if _, err := NormalizeOpaque("   "); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank opaque identifier should be invalid, got %v", err)
	}
}

func TestNormalizeTagsTheResult(t *testing.T) {
	c, err := Normalize(KindGoogleID, " 0x89c259af336b3341:0xa4969e07ce3108de ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != KindGoogleID {
		t.Errorf("Kind = %q, want %q", c.Kind, KindGoogleID)
	}
	if c.Value != "0x89c259af336b3341:0xa4969e07ce3108de" {
		t.Errorf("Value = %q", c.Value)
	}

	if _, err := Normalize(Kind("bogus"), "x"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown kind should be invalid, got %v", err)
	}

	if _, err := Normalize(KindEmail, "nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("malformed email should wrap ErrInvalid, got %v", err)
	}
}
