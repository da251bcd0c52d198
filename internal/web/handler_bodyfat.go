package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/service"
)

// maxAnalyzeBody caps the request size; three base64 photos fit comfortably.
const maxAnalyzeBody = 50 * 1024 * 1024

// flexFloat accepts a JSON number or a numeric string; web clients send
// measurement form fields as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(n)
	return nil
}

type analyzeRequest struct {
	Images []struct {
		Angle string `json:"angle"`
		Data  string `json:"data"`
	} `json:"images"`
	Age                int     `json:"age"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	Gender             string  `json:"gender"`
	ManualMeasurements *struct {
		Neck  flexFloat `json:"neck"`
		Waist flexFloat `json:"waist"`
	} `json:"manualMeasurements"`
}

type analyzeResponse struct {
	BodyFatPercentage float64 `json:"bodyFatPercentage"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
	CombinedEstimate  float64 `json:"combinedEstimate"`
	Method            string  `json:"method"`
	Category          string  `json:"category"`
	Severity          string  `json:"severity"`
}

func (s *Server) handleAnalyzeBodyFat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBody)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svcReq := service.AnalyzeRequest{
		Age:      req.Age,
		HeightCm: req.Height,
		WeightKg: req.Weight,
		Gender:   domain.Gender(req.Gender),
	}
	for _, img := range req.Images {
		svcReq.Photos = append(svcReq.Photos, service.Photo{
			Angle:   domain.PhotoAngle(img.Angle),
			DataURI: img.Data,
		})
	}
	if req.ManualMeasurements != nil {
		svcReq.Manual = &service.ManualMeasurements{
			NeckCm:  float64(req.ManualMeasurements.Neck),
			WaistCm: float64(req.ManualMeasurements.Waist),
		}
	}

	result, err := s.bodyFat.Analyze(r.Context(), svcReq)
	if err != nil {
		var analysisErr *service.AnalysisError
		if errors.As(err, &analysisErr) {
			writeError(w, analysisStatus(analysisErr.Kind), analysisErr.Message)
			return
		}
		s.logger.Error("body fat analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to analyze the photos")
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		BodyFatPercentage: result.BodyFatPercentage,
		Confidence:        result.Confidence,
		Reasoning:         result.Reasoning,
		CombinedEstimate:  result.CombinedEstimate,
		Method:            result.Method,
		Category:          result.Category.Label,
		Severity:          string(result.Category.Severity),
	})
}

func analysisStatus(kind service.ErrorKind) int {
	switch kind {
	case service.KindInsufficientInput:
		return http.StatusBadRequest
	case service.KindExtractionFailure, service.KindValidationFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
