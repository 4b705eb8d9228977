package generation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/prompts"
)

// Feature describes one generative module.
type Feature struct {
	Name string

	// Required subject text; blank input is rejected with SubjectField in the message.
	Required     bool
	SubjectField string

	// Template renders the instruction. Raw features send the trimmed subject as is.
	Template prompts.Template
	Raw      bool

	// Catalog names the fallback list, empty when the feature has none.
	Catalog catalog.Feature
	// NullFallback reports a failure as an empty fallback instead of an error.
	NullFallback bool

	// Clean post-processes provider text after trimming.
	Clean func(string) string

	// EmptyMessage replaces the generic message when the provider answers
	// without text.
	EmptyMessage string
}

// Message returns the text a caller sees for a failed generation of f.
func (f Feature) Message(err error) string {
	if f.EmptyMessage != "" && errors.Is(err, ErrEmptyCandidate) {
		return f.EmptyMessage
	}
	return PublicMessage(err)
}

// Render builds the instruction for subject in lang.
func (f Feature) Render(lang, subject string) string {
	if f.Raw {
		return strings.TrimSpace(subject)
	}
	return f.Template.Render(lang, subject)
}

// The generative features.
var (
	Excuse = Feature{
		Name:     "excuse",
		Template: prompts.Excuse,
		Catalog:  catalog.Excuse,
	}
	Fortune = Feature{
		Name:     "fortune",
		Template: prompts.Fortune,
		Catalog:  catalog.Fortune,
	}
	Tweet = Feature{
		Name:         "tweet",
		Required:     true,
		SubjectField: "Topic",
		Template:     prompts.Tweet,
		Clean:        StripQuotes,
		EmptyMessage: "No tweet generated",
	}
	Liar = Feature{
		Name:         "liar-bot",
		Required:     true,
		SubjectField: "Message",
		Template:     prompts.Liar,
	}
	FreeForm = Feature{
		Name:         "gemini-test",
		Required:     true,
		SubjectField: "Prompt",
		Raw:          true,
	}
	WeatherComment = Feature{
		Name:         "weather-comment",
		NullFallback: true,
	}
)

var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'“':  '”',
	'‘':  '’',
	'«':  '»',
}

// StripQuotes removes one matching pair of surrounding quote characters.
func StripQuotes(s string) string {
	if utf8.RuneCountInString(s) < 2 {
		return s
	}
	first, fsize := utf8.DecodeRuneInString(s)
	last, lsize := utf8.DecodeLastRuneInString(s)
	closing, ok := quotePairs[first]
	if !ok || closing != last {
		return s
	}
	return s[fsize : len(s)-lsize]
}
