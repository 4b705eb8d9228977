// Package handlers serves the HTML pages and the health probes.
package handlers

// Module is one card on the index page.
type Module struct {
	Icon        string
	Title       string
	Description string
	Endpoint    string
	Generative  bool
}

var modules = map[string][]Module{
	"tr": {
		{"🔢", "Hesap Makinesi", "Bazen yanlış hesaplar, özür diler.", "POST /api/calculator", false},
		{"🌦️", "Hava Durumu", "Ruh haline göre hava yorumu.", "GET /api/weather", false},
		{"📝", "Not Defteri", "Yazdıklarını sabote eder.", "POST /api/notepad", false},
		{"🔮", "Fal", "Tek cümlelik mistik kehanet.", "POST /api/fortune", true},
		{"🤥", "Bahane Üretici", "Açıkça uydurma bahaneler.", "POST /api/excuses", true},
		{"🐦", "Tweet Üretici", "Konu ver, tweet al.", "POST /api/tweet-generator", true},
		{"🤖", "Yalancı Bot", "Her soruya kendinden emin bir yalan.", "POST /api/liar-bot", true},
		{"🧪", "Gemini Test", "Serbest istem, ham yanıt.", "POST /api/gemini-test", true},
	},
	"en": {
		{"🔢", "Calculator", "Sometimes wrong, always sorry.", "POST /api/calculator", false},
		{"🌦️", "Weather", "Weather commentary for your mood.", "GET /api/weather", false},
		{"📝", "Notepad", "Sabotages what you write.", "POST /api/notepad", false},
		{"🔮", "Fortune", "A one-sentence mystical fortune.", "POST /api/fortune", true},
		{"🤥", "Excuse Generator", "Obviously fake excuses.", "POST /api/excuses", true},
		{"🐦", "Tweet Generator", "Give a topic, get a tweet.", "POST /api/tweet-generator", true},
		{"🤖", "Liar Bot", "A confident lie for every question.", "POST /api/liar-bot", true},
		{"🧪", "Gemini Test", "Free-form prompt, raw answer.", "POST /api/gemini-test", true},
	},
}

// Modules returns the index cards for lang, English for anything but "tr".
func Modules(lang string) []Module {
	if lang == "tr" {
		return modules["tr"]
	}
	return modules["en"]
}
