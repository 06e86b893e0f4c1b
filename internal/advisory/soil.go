package advisory

import "strings"

const (
	AdviceRaisePH  = "Add lime (calcium carbonate) to raise pH."
	AdviceLowerPH  = "Consider sulfur to lower pH slowly."
	AdvicePHOk     = "pH looks suitable for most crops."
	AdviceWheatNPK = "Apply N:P:K -> 100:50:30 kg/ha as baseline (adjust per soil test)."
	AdvicePaddyNPK = "Apply N:P:K -> 120:60:40 kg/ha baseline; split nitrogen into 3 doses."
	AdviceBasicNPK = "Apply balanced NPK; consult soil test for exact doses."
)

// Crop name synonym sets, matched case-insensitively. Terms cover the
// English, Hindi and Punjabi names farmers enter in the form.
var (
	wheatNames = map[string]bool{
		"wheat": true,
		"गेहूँ":  true,
		"गेहूं":  true,
		"ਕਣਕ":   true,
		"ਗੰਙੂ":   true,
	}
	paddyNames = map[string]bool{
		"paddy": true,
		"rice":  true,
		"धान":   true,
		"ਧਾਨ":   true,
		"ਝੋਨਾ":   true,
	}
)

// SoilAdvice returns two recommendation lines for the given soil pH and
// crop: a pH band message followed by a crop fertilizer baseline. Unknown
// crops get the generic balanced-NPK line; the function never fails.
//
// The UI constrains pH to [3.0, 9.0] but values outside that range are
// accepted as-is here.
func SoilAdvice(ph float64, crop string) []string {
	rec := make([]string, 0, 2)

	switch {
	case ph < 5.5:
		rec = append(rec, AdviceRaisePH)
	case ph > 7.8:
		rec = append(rec, AdviceLowerPH)
	default:
		rec = append(rec, AdvicePHOk)
	}

	name := strings.ToLower(strings.TrimSpace(crop))
	switch {
	case wheatNames[name]:
		rec = append(rec, AdviceWheatNPK)
	case paddyNames[name]:
		rec = append(rec, AdvicePaddyNPK)
	default:
		rec = append(rec, AdviceBasicNPK)
	}

	return rec
}
