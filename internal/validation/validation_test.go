package validation

import (
	"strings"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n\r ", true},
		{"text", "work", false},
		{"padded text", "  work  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.in); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tr", "tr"},
		{"en", "en"},
		{"EN", "en"},
		{" tr ", "tr"},
		{"de", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"request wins", []string{"en", "tr"}, "en"},
		{"falls through unknown", []string{"fr", "en"}, "en"},
		{"session value", []string{"", "en"}, "en"},
		{"default", []string{"", ""}, DefaultLanguage},
		{"no candidates", nil, DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLanguage(tt.candidates...); got != tt.want {
				t.Errorf("ResolveLanguage(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		valid   bool
		wantMsg string
	}{
		{"ok", "hello", true, ""},
		{"empty", "", false, "Prompt is required"},
		{"whitespace", "   ", false, "Prompt is required"},
		{"long text", strings.Repeat("ş", 5000), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateSubject("Prompt", tt.text)
			if valid != tt.valid {
				t.Errorf("ValidateSubject(%q) valid = %v, want %v", tt.name, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateSubject(%q) msg = %q, want %q", tt.name, msg, tt.wantMsg)
			}
		})
	}
}
