package validation

import (
	"strings"
)

// Supported language tags.
const (
	LangTR = "tr"
	LangEN = "en"

	// DefaultLanguage is used when neither the request nor the session names one.
	DefaultLanguage = LangTR
)

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsLanguage reports whether tag is a supported language tag.
func IsLanguage(tag string) bool {
	return tag == LangTR || tag == LangEN
}

// NormalizeLanguage lowercases and trims a language tag. Unknown tags
// come back empty so callers can fall through to their default.
func NormalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if !IsLanguage(tag) {
		return ""
	}
	return tag
}

// ResolveLanguage returns the first supported tag among candidates,
// or DefaultLanguage when none is.
func ResolveLanguage(candidates ...string) string {
	for _, c := range candidates {
		if tag := NormalizeLanguage(c); tag != "" {
			return tag
		}
	}
	return DefaultLanguage
}

// ValidateSubject checks user text that a feature requires.
// Returns false with a message when the text is blank. Length is not
// bounded; the provider enforces its own limits.
func ValidateSubject(field, text string) (bool, string) {
	if IsBlank(text) {
		return false, field + " is required"
	}
	return true, ""
}
