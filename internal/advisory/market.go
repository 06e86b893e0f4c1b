package advisory

// MarketPriceRow is one commodity row in the sample mandi price table.
// Prices are rupees per quintal.
type MarketPriceRow struct {
	Commodity string `json:"commodity"`
	TopMandi  int    `json:"top_mandi"`
	NearbyAvg int    `json:"nearby_avg"`
	Date      string `json:"date"`
}

var marketRows = []MarketPriceRow{
	{Commodity: "Wheat (Per Quintal)", TopMandi: 2150, NearbyAvg: 2100},
	{Commodity: "Paddy (Per Quintal)", TopMandi: 1900, NearbyAvg: 1850},
	{Commodity: "Maize (Per Quintal)", TopMandi: 1700, NearbyAvg: 1680},
	{Commodity: "Mustard (Per Quintal)", TopMandi: 4600, NearbyAvg: 4500},
}

// MarketPrices returns the four sample commodity rows, each stamped with
// the current calendar date.
func (e *Engine) MarketPrices() []MarketPriceRow {
	today := e.now().Format("2006-01-02")

	rows := make([]MarketPriceRow, len(marketRows))
	copy(rows, marketRows)
	for i := range rows {
		rows[i].Date = today
	}
	return rows
}
