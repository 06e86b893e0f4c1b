package advisory

// Alert is one mock weather event with its display tag.
type Alert struct {
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

type weightedAlert struct {
	alert  Alert
	weight float64
}

// The fixed alert catalog. Weights deliberately favor the "ok" outcome.
var weatherEvents = []weightedAlert{
	{Alert{"Heavy rainfall expected in next 24 hours. Delay irrigation.", "rain"}, 0.15},
	{Alert{"Heatwave warning: protect seedlings and increase mulching.", "heat"}, 0.15},
	{Alert{"No critical weather alerts for next 5 days.", "ok"}, 0.50},
	{Alert{"Cold night expected; take frost protection measures.", "cold"}, 0.20},
}

// Cumulative weight table, so selection is a single uniform draw followed
// by a linear scan.
var (
	weatherCumulative []float64
	weatherTotal      float64
)

func init() {
	weatherCumulative = make([]float64, len(weatherEvents))
	for i, e := range weatherEvents {
		weatherTotal += e.weight
		weatherCumulative[i] = weatherTotal
	}
}

// WeatherAlert returns one weighted-random alert. The location is accepted
// for API compatibility but does not vary the outcome; this is a stand-in
// until a real weather provider is integrated.
func (e *Engine) WeatherAlert(location string) Alert {
	_ = location

	u := e.randFloat() * weatherTotal
	for i, c := range weatherCumulative {
		if u < c {
			return weatherEvents[i].alert
		}
	}
	// Unreachable unless floating point rounding puts u at the total.
	return weatherEvents[len(weatherEvents)-1].alert
}
