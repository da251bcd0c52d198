package vision

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Analysis is the structured result recovered from a model response.
type Analysis struct {
	BodyFatPercentage float64
	Confidence        float64
	Reasoning         string
}

// DefaultConfidence is assumed when the model omits a confidence value; it is
// relatively high because analyses are based on multiple angles.
const DefaultConfidence = 0.8

// FallbackReasoning is used when the model omits its reasoning text.
const FallbackReasoning = "Analysis based on multiple photo angles and anatomical landmarks"

// Parsing errors. A present-but-malformed field fails loudly because it marks
// the whole response as untrustworthy; absent optional fields are defaulted.
var (
	ErrNoJSON            = errors.New("no JSON object with a bodyFatPercentage field found in response")
	ErrInvalidBodyFat    = errors.New("bodyFatPercentage must be a number between 0 and 100")
	ErrInvalidConfidence = errors.New("confidence must be a number between 0 and 1")
	ErrInvalidReasoning  = errors.New("reasoning must be a non-empty string")
)

// ParseAnalysis extracts and validates the analysis payload embedded in raw
// model output. It never panics on malformed input; every failure mode maps
// to one of the package error values.
func ParseAnalysis(raw string) (*Analysis, error) {
	payload, ok := ExtractJSON(raw, "bodyFatPercentage")
	if !ok {
		return nil, ErrNoJSON
	}

	var fields struct {
		BodyFatPercentage json.RawMessage `json:"bodyFatPercentage"`
		Confidence        json.RawMessage `json:"confidence"`
		Reasoning         json.RawMessage `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		// ExtractJSON only returns parseable objects; reaching here means the
		// payload is an object but a field has an incompatible shape.
		return nil, ErrInvalidBodyFat
	}

	var pct float64
	if err := json.Unmarshal(fields.BodyFatPercentage, &pct); err != nil || pct < 0 || pct > 100 {
		return nil, ErrInvalidBodyFat
	}

	analysis := &Analysis{
		BodyFatPercentage: pct,
		Confidence:        DefaultConfidence,
		Reasoning:         FallbackReasoning,
	}

	if fields.Confidence != nil {
		conf, err := coerceFloat(fields.Confidence)
		if err != nil || !isFinite(conf) || conf < 0 || conf > 1 {
			return nil, ErrInvalidConfidence
		}
		analysis.Confidence = conf
	}

	if fields.Reasoning != nil {
		var reasoning string
		if err := json.Unmarshal(fields.Reasoning, &reasoning); err != nil || strings.TrimSpace(reasoning) == "" {
			return nil, ErrInvalidReasoning
		}
		analysis.Reasoning = reasoning
	}

	return analysis, nil
}

// coerceFloat accepts a JSON number or a numeric string.
func coerceFloat(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
