package service

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/bodyfat"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/vision"
)

// stubAnalyzer records the prompt and images it receives and returns a canned
// response or error.
type stubAnalyzer struct {
	response string
	err      error

	prompt string
	images []vision.Image
	calls  int
}

func (s *stubAnalyzer) Generate(_ context.Context, prompt string, images []vision.Image) (string, error) {
	s.calls++
	s.prompt = prompt
	s.images = images
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func validRequest() AnalyzeRequest {
	return AnalyzeRequest{
		Photos: []Photo{
			{Angle: domain.AngleFrontal, DataURI: dataURI("image/jpeg", []byte{0xFF, 0xD8, 0x01})},
			{Angle: domain.AngleLateral, DataURI: dataURI("image/png", []byte{0x89, 0x50, 0x02})},
		},
		Age:      30,
		HeightCm: 175,
		WeightKg: 75,
		Gender:   domain.GenderMale,
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	stub := &stubAnalyzer{response: `Here is my assessment of the physique.
` + "```json" + `
{"bodyFatPercentage": 22.0, "confidence": 0.85, "reasoning": "ok"}
` + "```"}
	svc := NewBodyFatService(stub, testLogger())

	req := validRequest()
	req.Manual = &ManualMeasurements{NeckCm: 38, WaistCm: 85}

	result, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 22.0, result.BodyFatPercentage)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "ok", result.Reasoning)
	assert.Equal(t, MethodCombined, result.Method)

	manual, err := bodyfat.Estimate(bodyfat.Measurements{
		Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 38, WaistCm: 85,
	})
	require.NoError(t, err)
	want := math.Round((0.6*22.0+0.4*manual)*10) / 10
	assert.Equal(t, want, result.CombinedEstimate)
	assert.Equal(t, bodyfat.Classify(want, domain.GenderMale), result.Category)

	// The declared MIME types and decoded payloads reach the analyzer.
	require.Len(t, stub.images, 2)
	assert.Equal(t, "image/jpeg", stub.images[0].MimeType)
	assert.Equal(t, []byte{0xFF, 0xD8, 0x01}, stub.images[0].Data)
	assert.Equal(t, "image/png", stub.images[1].MimeType)
	assert.Contains(t, stub.prompt, "BMI: 24.5")
	assert.Contains(t, stub.prompt, "frontal, lateral")
}

func TestAnalyzeWithoutMeasurements(t *testing.T) {
	stub := &stubAnalyzer{response: `{"bodyFatPercentage": 22.0}`}
	svc := NewBodyFatService(stub, testLogger())

	result, err := svc.Analyze(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 22.0, result.BodyFatPercentage)
	assert.Equal(t, 22.0, result.CombinedEstimate)
	assert.Equal(t, vision.DefaultConfidence, result.Confidence)
	assert.Equal(t, vision.FallbackReasoning, result.Reasoning)
	assert.Equal(t, MethodAI, result.Method)
	assert.Equal(t, "Average", result.Category.Label)
}

func TestAnalyzeInsufficientInput(t *testing.T) {
	frontal := Photo{Angle: domain.AngleFrontal, DataURI: dataURI("image/jpeg", []byte{1})}
	lateral := Photo{Angle: domain.AngleLateral, DataURI: dataURI("image/jpeg", []byte{2})}
	back := Photo{Angle: domain.AngleBack, DataURI: dataURI("image/jpeg", []byte{3})}

	tests := []struct {
		name   string
		mutate func(*AnalyzeRequest)
	}{
		{"no photos", func(r *AnalyzeRequest) { r.Photos = nil }},
		{"single photo", func(r *AnalyzeRequest) { r.Photos = []Photo{frontal} }},
		{"missing frontal", func(r *AnalyzeRequest) { r.Photos = []Photo{lateral, back} }},
		{"missing lateral", func(r *AnalyzeRequest) { r.Photos = []Photo{frontal, back} }},
		{"zero age", func(r *AnalyzeRequest) { r.Age = 0 }},
		{"zero height", func(r *AnalyzeRequest) { r.HeightCm = 0 }},
		{"negative weight", func(r *AnalyzeRequest) { r.WeightKg = -1 }},
		{"invalid gender", func(r *AnalyzeRequest) { r.Gender = "other" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAnalyzer{response: `{"bodyFatPercentage": 20}`}
			svc := NewBodyFatService(stub, testLogger())

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Analyze(context.Background(), req)
			var analysisErr *AnalysisError
			require.ErrorAs(t, err, &analysisErr)
			assert.Equal(t, KindInsufficientInput, analysisErr.Kind)
			assert.Zero(t, stub.calls, "no AI call should be made for invalid input")
		})
	}
}

func TestAnalyzeUndecodablePhoto(t *testing.T) {
	stub := &stubAnalyzer{response: `{"bodyFatPercentage": 20}`}
	svc := NewBodyFatService(stub, testLogger())

	req := validRequest()
	req.Photos[1].DataURI = "not a data uri"

	_, err := svc.Analyze(context.Background(), req)
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindInsufficientInput, analysisErr.Kind)
	assert.Zero(t, stub.calls)
}

func TestAnalyzeExtractionFailure(t *testing.T) {
	stub := &stubAnalyzer{response: "I cannot tell from these photos."}
	svc := NewBodyFatService(stub, testLogger())

	_, err := svc.Analyze(context.Background(), validRequest())
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindExtractionFailure, analysisErr.Kind)
}

func TestAnalyzeValidationFailure(t *testing.T) {
	stub := &stubAnalyzer{response: `{"bodyFatPercentage": 150}`}
	svc := NewBodyFatService(stub, testLogger())

	_, err := svc.Analyze(context.Background(), validRequest())
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindValidationFailure, analysisErr.Kind)
}

func TestAnalyzeAIFailureWithManualFallback(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("service unavailable")}
	svc := NewBodyFatService(stub, testLogger())

	req := validRequest()
	req.Manual = &ManualMeasurements{NeckCm: 38, WaistCm: 85}

	result, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	manual, err := bodyfat.Estimate(bodyfat.Measurements{
		Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 38, WaistCm: 85,
	})
	require.NoError(t, err)
	want := math.Round(manual*10) / 10

	assert.Equal(t, want, result.BodyFatPercentage)
	assert.Equal(t, want, result.CombinedEstimate)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, MethodManual, result.Method)
	assert.Equal(t, bodyfat.Classify(want, domain.GenderMale), result.Category)
}

func TestAnalyzeAIFailureWithoutMeasurements(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("service unavailable")}
	svc := NewBodyFatService(stub, testLogger())

	_, err := svc.Analyze(context.Background(), validRequest())
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindAIFailure, analysisErr.Kind)
}

func TestAnalyzeAIFailureWithUnusableMeasurements(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("service unavailable")}
	svc := NewBodyFatService(stub, testLogger())

	req := validRequest()
	// Waist below neck: the male navy formula rejects these, so no fallback.
	req.Manual = &ManualMeasurements{NeckCm: 90, WaistCm: 85}

	_, err := svc.Analyze(context.Background(), req)
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindAIFailure, analysisErr.Kind)
}

func TestAnalyzeInvalidManualKeepsAIResult(t *testing.T) {
	stub := &stubAnalyzer{response: `{"bodyFatPercentage": 21.0}`}
	svc := NewBodyFatService(stub, testLogger())

	req := validRequest()
	req.Manual = &ManualMeasurements{NeckCm: 90, WaistCm: 85}

	result, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 21.0, result.BodyFatPercentage)
	assert.Equal(t, 21.0, result.CombinedEstimate)
	assert.Equal(t, MethodAI, result.Method)
}

func TestDecodeDataURI(t *testing.T) {
	img, err := decodeDataURI(dataURI("image/webp", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.MimeType)
	assert.Equal(t, []byte("hello"), img.Data)

	_, err = decodeDataURI("data:image/jpeg;base64,!!!not-base64!!!")
	assert.Error(t, err)

	_, err = decodeDataURI("plain text")
	assert.Error(t, err)

	_, err = decodeDataURI("data:;base64," + base64.StdEncoding.EncodeToString([]byte("x")))
	assert.Error(t, err)
}
