package models

import "time"

// TopicRequest is the body of the excuse, fortune and tweet endpoints.
type TopicRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

// MessageRequest is the body of the liar-bot endpoint.
type MessageRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// PromptRequest is the body of the free-form test endpoint.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// WeatherCommentRequest is the body of the weather-comment endpoint.
type WeatherCommentRequest struct {
	WeatherData *WeatherData `json:"weatherData"`
	Mood        string       `json:"mood"`
	Language    string       `json:"language"`
}

// ExcuseResponse answers the excuse endpoint.
type ExcuseResponse struct {
	Excuse string `json:"excuse"`
	Source string `json:"source"`
}

// FortuneResponse answers the fortune endpoint.
type FortuneResponse struct {
	Fortune string `json:"fortune"`
	Source  string `json:"source"`
}

// TweetResponse answers the tweet endpoint. Exactly one of Tweet and Error is set.
type TweetResponse struct {
	Tweet *string `json:"tweet"`
	Error *string `json:"error"`
}

// LiarResponse answers the liar-bot endpoint. Exactly one of Response and Error is set.
type LiarResponse struct {
	Response *string `json:"response"`
	Error    *string `json:"error"`
}

// FreeFormResponse answers the free-form test endpoint.
type FreeFormResponse struct {
	Response *string `json:"response"`
	Source   string  `json:"source"`
	Error    *string `json:"error"`
	Status   int     `json:"status,omitempty"`
}

// WeatherCommentResponse answers the weather-comment endpoint.
type WeatherCommentResponse struct {
	Comment *string `json:"comment"`
	Source  string  `json:"source"`
}

// CalculatorRequest is the body of the calculator endpoint.
type CalculatorRequest struct {
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	Op       string  `json:"op"`
	Language string  `json:"language"`
}

// CalculatorResponse answers the calculator endpoint.
type CalculatorResponse struct {
	Result   float64 `json:"result"`
	Glitched bool    `json:"glitched"`
	Apology  string  `json:"apology,omitempty"`
	Comment  string  `json:"comment,omitempty"`
}

// NotepadRequest is the body of the notepad endpoint.
type NotepadRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// NotepadResponse answers the notepad endpoint.
type NotepadResponse struct {
	Text     string `json:"text"`
	Glitched bool   `json:"glitched"`
}

// LanguageRequest sets the session language.
type LanguageRequest struct {
	Language string `json:"language"`
}

// LanguageResponse reports the session language.
type LanguageResponse struct {
	Language string `json:"language"`
}

// HistoryEntry is one recent result kept in the visitor's session.
type HistoryEntry struct {
	Feature string    `json:"feature"`
	Text    string    `json:"text"`
	Source  string    `json:"source"`
	At      time.Time `json:"at"`
}

// HistoryResponse lists recent results, newest first.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
