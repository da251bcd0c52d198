package bodyfat

import "math"

// Weighting of the fused estimate. The AI estimate carries more weight because
// multi-angle photos give a more comprehensive view than a single
// circumference formula.
const (
	aiWeight     = 0.6
	manualWeight = 0.4
)

// Combine fuses an AI-derived body-fat percentage with the manual estimate
// from m. When m is nil or its neck/waist values are non-positive there is no
// manual contribution and the AI value passes through. The result is rounded
// to one decimal place; intermediate math keeps full precision.
func Combine(aiPct float64, m *Measurements) (float64, error) {
	if m == nil || m.NeckCm <= 0 || m.WaistCm <= 0 {
		return Round1(aiPct), nil
	}
	manual, err := Estimate(*m)
	if err != nil {
		return 0, err
	}
	return Round1(aiWeight*aiPct + manualWeight*manual), nil
}

// Round1 rounds to one decimal place for presentation.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
