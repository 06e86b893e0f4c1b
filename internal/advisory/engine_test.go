package advisory

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEngine(t *testing.T) *Engine {
	t.Helper()
	return NewWithSource(rand.New(rand.NewPCG(1, 2)), time.Now)
}

func TestWeatherAlertFrequencies(t *testing.T) {
	engine := seededEngine(t)

	const draws = 20000
	counts := make(map[string]int)
	for range draws {
		alert := engine.WeatherAlert("Ludhiana")
		counts[alert.Tag]++
	}

	want := map[string]float64{
		"rain": 0.15,
		"heat": 0.15,
		"ok":   0.50,
		"cold": 0.20,
	}
	require.Len(t, counts, len(want))
	for tag, weight := range want {
		freq := float64(counts[tag]) / draws
		assert.InDelta(t, weight, freq, 0.02, "tag %q", tag)
	}
}

func TestWeatherAlertIsFromCatalog(t *testing.T) {
	engine := seededEngine(t)

	valid := map[string]string{
		"rain": "Heavy rainfall expected in next 24 hours. Delay irrigation.",
		"heat": "Heatwave warning: protect seedlings and increase mulching.",
		"ok":   "No critical weather alerts for next 5 days.",
		"cold": "Cold night expected; take frost protection measures.",
	}
	for range 100 {
		alert := engine.WeatherAlert("anywhere")
		msg, ok := valid[alert.Tag]
		require.True(t, ok, "unknown tag %q", alert.Tag)
		assert.Equal(t, msg, alert.Message)
	}
}

func TestWeatherAlertIgnoresLocation(t *testing.T) {
	// Identical seeds must yield identical draws regardless of location.
	a := NewWithSource(rand.New(rand.NewPCG(7, 7)), time.Now)
	b := NewWithSource(rand.New(rand.NewPCG(7, 7)), time.Now)

	for range 50 {
		assert.Equal(t, a.WeatherAlert("Ludhiana"), b.WeatherAlert("Amritsar"))
	}
}

func TestDetectPestReturnsCatalogEntries(t *testing.T) {
	engine := seededEngine(t)

	confidenceByLabel := map[string]float64{
		"Brown spot (fungal)":    0.86,
		"Leaf blast (rice)":      0.79,
		"Aphids infestation":     0.72,
		"No major pest detected": 0.92,
	}

	seen := make(map[string]bool)
	for range 1000 {
		finding := engine.DetectPest([]byte{0x01, 0x02})
		want, ok := confidenceByLabel[finding.Label]
		require.True(t, ok, "unknown label %q", finding.Label)
		assert.Equal(t, want, finding.Confidence)
		assert.NotEmpty(t, finding.Advice)
		seen[finding.Label] = true
	}
	// A uniform pick over 1000 draws should hit all four entries.
	assert.Len(t, seen, 4)
}

func TestDetectPestIgnoresImageContent(t *testing.T) {
	a := NewWithSource(rand.New(rand.NewPCG(3, 3)), time.Now)
	b := NewWithSource(rand.New(rand.NewPCG(3, 3)), time.Now)

	for i := range 50 {
		assert.Equal(t, a.DetectPest(nil), b.DetectPest(make([]byte, i*100)))
	}
}

func TestMarketPrices(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	engine := NewWithSource(rand.New(rand.NewPCG(1, 2)), func() time.Time { return fixed })

	rows := engine.MarketPrices()
	require.Len(t, rows, 4)

	wantCommodities := []string{
		"Wheat (Per Quintal)",
		"Paddy (Per Quintal)",
		"Maize (Per Quintal)",
		"Mustard (Per Quintal)",
	}
	for i, row := range rows {
		assert.Equal(t, wantCommodities[i], row.Commodity)
		assert.Equal(t, "2026-03-14", row.Date)
	}

	assert.Equal(t, 2150, rows[0].TopMandi)
	assert.Equal(t, 2100, rows[0].NearbyAvg)
	assert.Equal(t, 4600, rows[3].TopMandi)
	assert.Equal(t, 4500, rows[3].NearbyAvg)
}

func TestMarketPricesCopyIsIndependent(t *testing.T) {
	engine := seededEngine(t)

	rows := engine.MarketPrices()
	rows[0].TopMandi = 9999

	assert.Equal(t, 2150, engine.MarketPrices()[0].TopMandi)
}
