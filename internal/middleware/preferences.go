package middleware

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"curcunapanel/internal/models"
	"curcunapanel/internal/validation"
)

const (
	languageKey = "language"
	historyKey  = "history"
)

// Preferences keeps the visitor's language and recent results in the
// session. Without a session every read returns the default and writes
// are dropped.
type Preferences struct {
	historySize int
	now         func() time.Time
}

// NewPreferences creates a Preferences keeping at most historySize results.
func NewPreferences(historySize int) *Preferences {
	if historySize <= 0 {
		historySize = 10
	}
	return &Preferences{historySize: historySize, now: time.Now}
}

// Language returns the session language, or the default when none is stored.
func (p *Preferences) Language(c fiber.Ctx) string {
	return validation.ResolveLanguage(p.stored(c))
}

// Resolve picks the language for a request: the requested tag if
// supported, then the session value, then the default.
func (p *Preferences) Resolve(c fiber.Ctx, requested string) string {
	return validation.ResolveLanguage(requested, p.stored(c))
}

// SetLanguage writes lang through to the session.
func (p *Preferences) SetLanguage(c fiber.Ctx, lang string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set(languageKey, lang)
	}
}

func (p *Preferences) stored(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	lang, _ := sess.Get(languageKey).(string)
	return lang
}

// Record prepends a result to the session history, dropping the oldest
// beyond the configured size. Empty texts are not kept.
func (p *Preferences) Record(c fiber.Ctx, feature, text, source string) {
	if text == "" {
		return
	}
	sess := session.FromContext(c)
	if sess == nil {
		return
	}

	entries := append([]models.HistoryEntry{{
		Feature: feature,
		Text:    text,
		Source:  source,
		At:      p.now().UTC(),
	}}, p.History(c)...)
	if len(entries) > p.historySize {
		entries = entries[:p.historySize]
	}

	// Stored as a JSON string so any session storage can hold it.
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	sess.Set(historyKey, string(raw))
}

// History returns the session history, newest first.
func (p *Preferences) History(c fiber.Ctx) []models.HistoryEntry {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	raw, _ := sess.Get(historyKey).(string)
	if raw == "" {
		return nil
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}

// ClearHistory drops the session history.
func (p *Preferences) ClearHistory(c fiber.Ctx) {
	if sess := session.FromContext(c); sess != nil {
		sess.Delete(historyKey)
	}
}
