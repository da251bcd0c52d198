package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/bodyfat"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/vision"
)

// ErrorKind classifies terminal analysis failures. Every failure after input
// validation ends the request; nothing is retried.
type ErrorKind string

const (
	KindInsufficientInput ErrorKind = "insufficient_input"
	KindAIFailure         ErrorKind = "ai_failure"
	KindExtractionFailure ErrorKind = "extraction_failure"
	KindValidationFailure ErrorKind = "validation_failure"
)

// AnalysisError carries a caller-facing message and the failure kind. The
// underlying cause is logged, never shown verbatim to the end user.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *AnalysisError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error { return e.cause }

// Photo is one uploaded body photo, still in its data-URI wire form.
type Photo struct {
	Angle   domain.PhotoAngle
	DataURI string
}

// ManualMeasurements are the optional circumference values used to calibrate
// the AI estimate.
type ManualMeasurements struct {
	NeckCm  float64
	WaistCm float64
}

// AnalyzeRequest is the inbound contract of the analysis pipeline.
type AnalyzeRequest struct {
	Photos   []Photo
	Age      int
	HeightCm float64
	WeightKg float64
	Gender   domain.Gender
	Manual   *ManualMeasurements
}

// Analysis methods reported in results.
const (
	MethodAI       = "ai"
	MethodCombined = "ai+manual"
	MethodManual   = "manual"
)

// AnalyzeResult is the outcome of a successful (or degraded) analysis. The
// category classifies the combined estimate.
type AnalyzeResult struct {
	BodyFatPercentage float64
	Confidence        float64
	Reasoning         string
	CombinedEstimate  float64
	Method            string
	Category          bodyfat.Category
}

// manualFallbackReasoning explains a degraded, measurement-only result.
const manualFallbackReasoning = "AI analysis unavailable; estimate computed from neck and waist measurements (Deurenberg + US Navy)"

// BodyFatService orchestrates the analysis pipeline: validate input, build
// the prompt, call the vision model, parse its response, and fuse the result
// with the manual estimate. The analyzer is injected so the AI boundary can
// be stubbed in tests.
type BodyFatService struct {
	analyzer vision.Analyzer
	logger   *slog.Logger
}

func NewBodyFatService(analyzer vision.Analyzer, logger *slog.Logger) *BodyFatService {
	return &BodyFatService{analyzer: analyzer, logger: logger}
}

// Analyze runs one analysis request end to end. Failures are returned as
// *AnalysisError with a distinct kind and human-readable message. When the AI
// call itself fails and valid measurements are present, a manual-only result
// is returned instead of an error.
func (s *BodyFatService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	images, angles, err := decodePhotos(req.Photos)
	if err != nil {
		return nil, &AnalysisError{
			Kind:    KindInsufficientInput,
			Message: "one or more photos could not be decoded",
			cause:   err,
		}
	}

	manual := req.measurements()
	bmi := bodyfat.BMI(req.WeightKg, req.HeightCm)

	prompt := vision.BuildPrompt(vision.PromptData{
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		BMI:      bmi,
		Gender:   req.Gender,
		Angles:   angles,
	})

	s.logger.Info("body fat analysis started", "photos", len(images), "gender", req.Gender, "has_measurements", manual != nil)

	raw, err := s.analyzer.Generate(ctx, prompt, images)
	if err != nil {
		s.logger.Error("vision model call failed", "error", err)
		if result := s.manualFallback(manual); result != nil {
			s.logger.Info("falling back to manual estimate", "combined", result.CombinedEstimate)
			return result, nil
		}
		return nil, &AnalysisError{
			Kind:    KindAIFailure,
			Message: "failed to analyze the photos",
			cause:   err,
		}
	}

	analysis, err := vision.ParseAnalysis(raw)
	if err != nil {
		s.logger.Error("could not parse vision response", "error", err, "response_len", len(raw))
		if errors.Is(err, vision.ErrNoJSON) {
			return nil, &AnalysisError{
				Kind:    KindExtractionFailure,
				Message: "the AI response was in an invalid format, please try again",
				cause:   err,
			}
		}
		return nil, &AnalysisError{
			Kind:    KindValidationFailure,
			Message: "could not process the AI response, please try again",
			cause:   err,
		}
	}

	result := &AnalyzeResult{
		BodyFatPercentage: analysis.BodyFatPercentage,
		Confidence:        analysis.Confidence,
		Reasoning:         analysis.Reasoning,
		Method:            MethodAI,
	}

	combined, err := bodyfat.Combine(analysis.BodyFatPercentage, manual)
	if err != nil {
		// Measurements present but unusable (waist not above neck); keep the
		// AI-only result rather than failing a successful analysis.
		s.logger.Warn("manual calibration skipped", "error", err)
		combined, _ = bodyfat.Combine(analysis.BodyFatPercentage, nil)
	} else if manual != nil {
		result.Method = MethodCombined
	}
	result.CombinedEstimate = combined
	result.Category = bodyfat.Classify(combined, req.Gender)

	s.logger.Info("body fat analysis complete",
		"ai_pct", analysis.BodyFatPercentage,
		"combined", combined,
		"confidence", analysis.Confidence,
		"method", result.Method,
	)
	return result, nil
}

// measurements assembles the full measurement set when the caller supplied
// positive neck and waist values, or nil when there is no manual leg.
func (req AnalyzeRequest) measurements() *bodyfat.Measurements {
	if req.Manual == nil || req.Manual.NeckCm <= 0 || req.Manual.WaistCm <= 0 {
		return nil
	}
	return &bodyfat.Measurements{
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Gender:   req.Gender,
		NeckCm:   req.Manual.NeckCm,
		WaistCm:  req.Manual.WaistCm,
	}
}

// manualFallback builds a measurement-only result, or nil when there are no
// usable measurements.
func (s *BodyFatService) manualFallback(manual *bodyfat.Measurements) *AnalyzeResult {
	if manual == nil {
		return nil
	}
	estimate, err := bodyfat.Estimate(*manual)
	if err != nil {
		s.logger.Warn("manual fallback unavailable", "error", err)
		return nil
	}
	rounded := bodyfat.Round1(estimate)
	return &AnalyzeResult{
		BodyFatPercentage: rounded,
		Confidence:        0,
		Reasoning:         manualFallbackReasoning,
		CombinedEstimate:  rounded,
		Method:            MethodManual,
		Category:          bodyfat.Classify(rounded, manual.Gender),
	}
}

func validateRequest(req AnalyzeRequest) *AnalysisError {
	insufficient := func(msg string) *AnalysisError {
		return &AnalysisError{Kind: KindInsufficientInput, Message: msg}
	}

	if len(req.Photos) < 2 {
		return insufficient("at least 2 photos are required (frontal and lateral)")
	}
	provided := make(map[domain.PhotoAngle]bool, len(req.Photos))
	for _, p := range req.Photos {
		provided[p.Angle] = true
	}
	if !provided[domain.AngleFrontal] || !provided[domain.AngleLateral] {
		return insufficient("photos must include the frontal and lateral angles")
	}
	if req.Age <= 0 || req.HeightCm <= 0 || req.WeightKg <= 0 {
		return insufficient("age, height and weight must all be provided and positive")
	}
	if !req.Gender.Valid() {
		return insufficient("gender must be male or female")
	}
	return nil
}

// decodePhotos splits each data URI into its declared MIME type and raw
// payload.
func decodePhotos(photos []Photo) ([]vision.Image, []domain.PhotoAngle, error) {
	images := make([]vision.Image, 0, len(photos))
	angles := make([]domain.PhotoAngle, 0, len(photos))
	for i, p := range photos {
		img, err := decodeDataURI(p.DataURI)
		if err != nil {
			return nil, nil, fmt.Errorf("photo %d (%s): %w", i+1, p.Angle, err)
		}
		images = append(images, img)
		angles = append(angles, p.Angle)
	}
	return images, angles, nil
}

// decodeDataURI parses a "data:<mime>;base64,<payload>" string.
func decodeDataURI(uri string) (vision.Image, error) {
	head, payload, found := strings.Cut(uri, ",")
	if !found {
		return vision.Image{}, fmt.Errorf("not a data URI")
	}
	meta := strings.TrimPrefix(head, "data:")
	mimeType, _, _ := strings.Cut(meta, ";")
	if mimeType == "" {
		return vision.Image{}, fmt.Errorf("missing MIME type")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return vision.Image{}, fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return vision.Image{}, fmt.Errorf("empty image payload")
	}
	return vision.Image{MimeType: mimeType, Data: data}, nil
}
