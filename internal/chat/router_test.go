package chat

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRouter(t *testing.T) *Router {
	t.Helper()
	return NewRouterWithSource(rand.New(rand.NewPCG(1, 2)))
}

func TestRouteIntents(t *testing.T) {
	router := seededRouter(t)

	tests := []struct {
		utterance string
		want      Intent
	}{
		{"my soil looks tired", IntentSoil},
		{"what is the right PH for tomatoes", IntentSoil},
		{"kitni khad daalun", IntentSoil},
		{"will it rain tomorrow", IntentWeather},
		{"mausam kaisa rahega", IntentWeather},
		{"there is an insect on my leaves", IntentPest},
		{"मेरी फसल में रोग है", IntentPest},
		{"what is the mandi rate", IntentMarket},
		{"aaj ka bhav batao", IntentMarket},
		{"which crop should I sow", IntentCrop},
		{"ਕਣਕ ਕਦੋਂ ਬੀਜਾਂ", IntentCrop},
		{"hello there", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			intent, reply := router.Route(tt.utterance)
			assert.Equal(t, tt.want, intent)
			assert.NotEmpty(t, reply)
		})
	}
}

func TestRoutePriorityOrder(t *testing.T) {
	router := seededRouter(t)

	// Soil is checked before weather, weather before market.
	intent, _ := router.Route("soil ph and rain")
	assert.Equal(t, IntentSoil, intent)

	intent, _ = router.Route("rain and mandi price")
	assert.Equal(t, IntentWeather, intent)

	intent, _ = router.Route("mandi price for wheat")
	assert.Equal(t, IntentMarket, intent)
}

func TestRouteKeywordsMatchWholeTokensOnly(t *testing.T) {
	router := seededRouter(t)

	// "phone" must not match the "ph" keyword.
	intent, _ := router.Route("call me on my phone")
	assert.Equal(t, IntentGeneral, intent)
}

func TestRouteFallbackReplies(t *testing.T) {
	router := seededRouter(t)

	valid := make(map[string]bool, len(fallbackReplies))
	for _, r := range fallbackReplies {
		valid[r] = true
	}

	for range 100 {
		intent, reply := router.Route("good morning ji")
		require.Equal(t, IntentGeneral, intent)
		assert.True(t, valid[reply], "unexpected fallback reply %q", reply)
	}
}

var marketPriceRe = regexp.MustCompile(`₹(\d+)`)

func TestRouteMarketReplyTemplate(t *testing.T) {
	router := seededRouter(t)

	for range 200 {
		intent, reply := router.Route("what is the market price today")
		require.Equal(t, IntentMarket, intent)

		m := marketPriceRe.FindStringSubmatch(reply)
		require.NotNil(t, m, "no price in reply %q", reply)
		price, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, price, marketPriceMin)
		assert.LessOrEqual(t, price, marketPriceMax)

		var hasCommodity bool
		for _, c := range marketCommodities {
			if strings.Contains(reply, c) {
				hasCommodity = true
				break
			}
		}
		assert.True(t, hasCommodity, "no commodity in reply %q", reply)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"soil", "ph"}, tokenize("Soil pH?"))
	assert.Equal(t, []string{"मेरी", "फसल"}, tokenize("मेरी फसल!"))
	assert.Empty(t, tokenize("  ...  "))
}
