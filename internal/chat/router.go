// Package chat implements the keyword-routed assistant: an intent router
// over fixed multilingual keyword sets and an in-memory session store for
// the conversation history.
package chat

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"
)

// Intent is the category a user utterance is routed to.
type Intent string

const (
	IntentSoil    Intent = "soil"
	IntentWeather Intent = "weather"
	IntentPest    Intent = "pest"
	IntentMarket  Intent = "market"
	IntentCrop    Intent = "crop"
	IntentGeneral Intent = "general"
)

type rule struct {
	intent   Intent
	keywords map[string]bool
	replies  []string
}

func keywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// The routing table. Order is the priority chain: rules are tested in
// sequence and the first matching set wins, so soil beats weather beats
// pest and so on. Keyword sets mix English, Hindi and Punjabi terms.
var rules = []rule{
	{
		intent: IntentSoil,
		keywords: keywordSet(
			"soil", "ph", "fertilizer", "fertiliser", "khad", "mitti",
			"मिट्टी", "खाद", "ਮਿੱਟੀ", "ਖਾਦ",
		),
		replies: []string{
			"For healthy soil, get a soil test done every season and apply NPK as per the report. Avoid repeated urea-only doses.",
			"Mix well-decomposed farmyard manure before sowing; it improves soil structure and water holding.",
			"If your soil pH is below 5.5 add lime, above 7.8 add sulfur slowly. Most crops do best between 6 and 7.5.",
		},
	},
	{
		intent: IntentWeather,
		keywords: keywordSet(
			"weather", "rain", "rainfall", "heat", "frost", "mausam", "barish",
			"मौसम", "बारिश", "ਮੌਸਮ", "ਮੀਂਹ",
		),
		replies: []string{
			"No severe weather is expected in your area for the next few days. Plan irrigation normally.",
			"Light rain is possible this week; hold off on spraying until the sky clears.",
			"Nights may turn cold soon. Keep frost protection ready for young seedlings.",
		},
	},
	{
		intent: IntentPest,
		keywords: keywordSet(
			"pest", "disease", "insect", "fungus", "keeda", "rog",
			"कीट", "रोग", "कीड़ा", "ਕੀੜਾ", "ਰੋਗ",
		),
		replies: []string{
			"Upload a clear photo of the affected leaf in the pest detection section and I will suggest a treatment.",
			"For most sucking pests, a neem oil spray in the evening works well and is safe for beneficial insects.",
			"Remove and destroy visibly infected plants first, then treat the surrounding area to stop the spread.",
		},
	},
	{
		intent: IntentMarket,
		keywords: keywordSet(
			"price", "market", "mandi", "rate", "bhav", "sell",
			"मंडी", "भाव", "कीमत", "ਮੰਡੀ", "ਭਾਅ",
		),
		replies: []string{
			"Today's approximate mandi rate for %s is ₹%d per quintal. Confirm at your nearest mandi before selling.",
			"%s is trading around ₹%d per quintal nearby. Rates at the top mandi may be slightly higher.",
			"Recent arrivals put %s near ₹%d per quintal. Check the market price table for other commodities.",
		},
	},
	{
		intent: IntentCrop,
		keywords: keywordSet(
			"crop", "wheat", "paddy", "rice", "maize", "mustard", "sowing", "fasal",
			"फसल", "गेहूं", "धान", "ਫਸਲ", "ਕਣਕ", "ਝੋਨਾ",
		),
		replies: []string{
			"Choose your crop based on the soil test and water availability; wheat and mustard need far less water than paddy.",
			"For timely sowing, prepare the field right after the previous harvest and use certified seed.",
			"Rotate cereals with a legume like moong or gram to restore soil nitrogen naturally.",
		},
	},
}

var fallbackReplies = []string{
	"I can help with soil, weather, pests, mandi prices and crop planning. What would you like to know?",
	"Sorry, I did not catch that. Try asking about soil health, weather, pests or market rates.",
	"Please ask me about your crop, soil, the weather or mandi prices and I will do my best.",
}

// Commodities used to fill the market reply template.
var marketCommodities = []string{"wheat", "paddy", "maize", "mustard"}

const (
	marketPriceMin = 1500
	marketPriceMax = 2500
)

// Router maps a free-text utterance to an intent and a canned reply.
type Router struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRouter() *Router {
	return NewRouterWithSource(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewRouterWithSource builds a router with an explicit random source so
// tests can seed reply selection.
func NewRouterWithSource(rng *rand.Rand) *Router {
	return &Router{rng: rng}
}

func (r *Router) randIndex(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// tokenize lowercases the utterance and splits it on anything that is not
// a letter or digit, so "Soil pH?" yields ["soil", "ph"].
func tokenize(utterance string) []string {
	return strings.FieldsFunc(strings.ToLower(utterance), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
}

// Route classifies the utterance and returns the chosen intent with one of
// that intent's canned replies. Every input produces a reply; unrecognized
// utterances fall through to the general replies.
func (r *Router) Route(utterance string) (Intent, string) {
	tokens := tokenize(utterance)

	for _, rl := range rules {
		if !matchesAny(rl.keywords, tokens) {
			continue
		}
		reply := rl.replies[r.randIndex(len(rl.replies))]
		if rl.intent == IntentMarket {
			commodity := marketCommodities[r.randIndex(len(marketCommodities))]
			price := marketPriceMin + r.randIndex(marketPriceMax-marketPriceMin+1)
			reply = fmt.Sprintf(reply, commodity, price)
		}
		return rl.intent, reply
	}

	return IntentGeneral, fallbackReplies[r.randIndex(len(fallbackReplies))]
}

func matchesAny(keywords map[string]bool, tokens []string) bool {
	for _, tok := range tokens {
		if keywords[tok] {
			return true
		}
	}
	return false
}
