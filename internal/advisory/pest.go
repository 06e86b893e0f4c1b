package advisory

// PestFinding is one entry from the fixed detection catalog.
type PestFinding struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Advice     string  `json:"advice"`
}

var pestCatalog = []PestFinding{
	{"Brown spot (fungal)", 0.86, "Use recommended fungicide; remove infected leaves."},
	{"Leaf blast (rice)", 0.79, "Isolate field area; apply blast-specific fungicide."},
	{"Aphids infestation", 0.72, "Use neem oil spray or introduce ladybird beetles."},
	{"No major pest detected", 0.92, "Looks healthy; monitor for 7 days."},
}

// DetectPest returns a uniform-random finding from the fixed catalog. The
// image bytes are accepted but not inspected; this is a stand-in until a
// trained crop-disease model replaces it.
func (e *Engine) DetectPest(image []byte) PestFinding {
	_ = image
	return pestCatalog[e.randIndex(len(pestCatalog))]
}
