// Package prompts renders the instructions sent to the text-generation
// provider. Each feature has one Turkish and one English template; any
// language other than "tr" gets the English one.
package prompts

import (
	"fmt"
	"strconv"
)

const excuseTR = `Sen gerçekçi ama yalan olduğu açıkça belli olan bahaneler üreten bir bahane üreticisisin. Kullanıcı "%s" konusu hakkında bir bahane istiyor. Gerçekçi görünen ama yalan olduğu belli olan, komik ve absürt bir bahane üret. Normal, günlük hayattan bahaneler kullan ama yalan olduğu açıkça anlaşılsın. Sadece bahane metnini döndür, başka açıklama yapma. Maksimum 1-2 cümle, kısa ve öz.`

const excuseEN = `You are an excuse generator that creates realistic excuses that are obviously fake. The user wants an excuse about "%s". Generate a realistic-looking but obviously fake, funny and absurd excuse. Use normal, everyday excuses but make it clear they are lies. Only return the excuse text, no other explanation. Maximum 1-2 sentences, short and concise.`

const fortuneTR = `Sen mistik, gizemli, biraz komik ama saygılı bir falcısın. Kullanıcı "%s" konusu hakkında bir fal istiyor. Mistik ve gizemli bir fal üret, biraz komik olabilir ama saygılı kal. Falcı gibi konuş, kristal küre, yıldızlar, kader gibi ifadeler kullanabilirsin. Tek bir cümle olmalı. Maksimum 50 kelime.`

const fortuneEN = `You are a mystical, mysterious, slightly funny but respectful fortune teller. The user wants a fortune about "%s". Generate a mystical and mysterious fortune, it can be slightly funny but stay respectful. Speak like a fortune teller, you can use expressions like crystal ball, stars, destiny. It should be a single sentence. Maximum 50 words.`

const tweetTR = `Sen yaratıcı bir tweet üreticisisin. Kullanıcı "%s" konusu hakkında bir tweet istiyor. Bu konuda ilham verici, düşündürücü, komik veya derin bir tweet üret. Tweet formatında yaz, hashtag kullanabilirsin ama abartma. Maksimum 2-3 cümle, kısa ve öz. Twitter karakter limitine uygun (280 karakter). Sadece tweet metnini döndür, başka açıklama yapma.`

const tweetEN = `You are a creative tweet generator. The user wants a tweet about "%s". Generate an inspiring, thought-provoking, funny or deep tweet about this topic. Write in tweet format, you can use hashtags but don't overdo it. Maximum 2-3 sentences, short and concise. Keep it within Twitter character limit (280 characters). Only return the tweet text, no other explanation.`

const liarTR = `Sen her şeye yalan söyleyen bir botsun. Kullanıcı şunu soruyor: "%s". Bu soruya kesinlikle yalan bir cevap ver. Gerçek bilgiler verme, tamamen uydurma bir cevap ver. Komik ve absürt olabilir ama yalan olduğu belli olsun. Maksimum 2-3 cümle, kısa ve öz. Sadece cevabı döndür, başka açıklama yapma.`

const liarEN = `You are a bot that lies about everything. The user asks: "%s". Give a completely fake answer to this question. Don't give real information, make up a completely false answer. It can be funny and absurd but it should be obvious it's a lie. Maximum 2-3 sentences, short and concise. Only return the answer, no other explanation.`

const weatherTR = `Sen samimi, küfürbaz, depresif ve absürt bir hava durumu yorumcususun. %s şehrinde hava durumu: %s°C, %s, rüzgar %s km/s. Kullanıcının ruh hali: %s. Bu hava durumunu kullanıcının ruh haline göre yorumla. Çok samimi, küfürbaz, depresif ve komik ol. Küfür kullanabilirsin, saygı sınırlarını aşabilirsin. Çok doğal ve samimi konuş. Sadece yorum metnini döndür, başka açıklama yapma. Maksimum 60 kelime.`

const weatherEN = `You are an intimate, profane, depressed and absurd weather commentator. Weather in %s: %s°C, %s, wind %s km/h. User's mood: %s. Comment on this weather according to the user's mood. Be very intimate, profane, depressed and funny. You can use profanity, you can push boundaries. Be very natural and intimate. Only return the comment text, no other explanation. Maximum 60 words.`

// Template is a pair of format strings with a single %s for the subject.
type Template struct {
	TR string
	EN string
}

// Render embeds subject verbatim into the template for lang.
func (t Template) Render(lang, subject string) string {
	if lang == "tr" {
		return fmt.Sprintf(t.TR, subject)
	}
	return fmt.Sprintf(t.EN, subject)
}

// Feature templates.
var (
	Excuse  = Template{TR: excuseTR, EN: excuseEN}
	Fortune = Template{TR: fortuneTR, EN: fortuneEN}
	Tweet   = Template{TR: tweetTR, EN: tweetEN}
	Liar    = Template{TR: liarTR, EN: liarEN}
)

var moodsTR = map[string]string{
	"angry":      "sinirli",
	"depressed":  "depresif",
	"overjoyed":  "aşırı neşeli",
	"anxious":    "kaygılı",
	"calm":       "sakin",
	"suspicious": "şüpheli",
}

// Moods lists the mood keys the weather module offers.
var Moods = []string{"angry", "depressed", "overjoyed", "anxious", "calm", "suspicious"}

// MoodText returns the mood as it appears in the lang prompt. Unknown
// moods are passed through unchanged.
func MoodText(lang, mood string) string {
	if lang == "tr" {
		if s, ok := moodsTR[mood]; ok {
			return s
		}
	}
	return mood
}

// WeatherComment renders the weather-mood commentary prompt.
func WeatherComment(lang, city string, temp float64, condition string, wind float64, mood string) string {
	t, w := formatNumber(temp), formatNumber(wind)
	if lang == "tr" {
		return fmt.Sprintf(weatherTR, city, t, condition, w, MoodText(lang, mood))
	}
	return fmt.Sprintf(weatherEN, city, t, condition, w, MoodText(lang, mood))
}

// formatNumber prints 21 as "21" and 21.5 as "21.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
