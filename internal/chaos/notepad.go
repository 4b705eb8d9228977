package chaos

import (
	"strings"
	"unicode/utf8"
)

// Notepad mischief probabilities and the text lengths they need.
const (
	SwapProbability  = 0.3
	EmojiProbability = 0.1
	GhostProbability = 0.05

	swapMinLength  = 10
	emojiMinLength = 5
	ghostMinLength = 20
)

// Swap replaces every occurrence of From with To.
type Swap struct {
	From string
	To   string
}

var swaps = map[string][]Swap{
	"tr": {
		{"sen", "ben"},
		{"ben", "sen"},
		{"evet", "hayır"},
		{"hayır", "evet"},
		{"güzel", "çirkin"},
		{"iyi", "kötü"},
		{"mutlu", "üzgün"},
		{"büyük", "küçük"},
		{"hızlı", "yavaş"},
		{"sıcak", "soğuk"},
	},
	"en": {
		{"you", "me"},
		{"me", "you"},
		{"yes", "no"},
		{"no", "yes"},
		{"good", "bad"},
		{"bad", "good"},
		{"happy", "sad"},
		{"big", "small"},
		{"fast", "slow"},
		{"hot", "cold"},
	},
}

var emojis = []string{"👻", "💀", "👽", "🤖", "🎃", "🦇", "🕷️", "🐉", "🔥", "⚡"}

const asciiGhost = `
    .-.
   (o o)
   | O |
    \_/
`

// Swaps returns the word swaps for lang, English for anything but "tr".
func Swaps(lang string) []Swap {
	if lang == "tr" {
		return swaps["tr"]
	}
	return swaps["en"]
}

// Sabotage returns text as the notepad shows it back. It may swap one
// word pair, append an emoji, or append an ASCII ghost. The bool reports
// whether a swap happened.
func Sabotage(d Dice, text, lang string) (string, bool) {
	n := utf8.RuneCountInString(text)
	out := text
	swapped := false

	if chance(d, SwapProbability) && n > swapMinLength {
		list := Swaps(lang)
		s := list[d.IntN(len(list))]
		out = strings.ReplaceAll(out, s.From, s.To)
		swapped = true
	}

	if chance(d, EmojiProbability) && n > emojiMinLength {
		out += " " + emojis[d.IntN(len(emojis))]
	}

	if chance(d, GhostProbability) && n > ghostMinLength {
		out += "\n\n" + asciiGhost
	}

	return out, swapped
}
