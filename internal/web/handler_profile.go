package web

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/service"
)

type profileRequest struct {
	Age           int     `json:"age"`
	Height        int     `json:"height"`
	Weight        float64 `json:"weight"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

type profileResponse struct {
	ID               int64     `json:"id"`
	Age              int       `json:"age"`
	Height           int       `json:"height"`
	Weight           float64   `json:"weight"`
	Gender           string    `json:"gender"`
	ActivityLevel    string    `json:"activityLevel"`
	Goal             string    `json:"goal"`
	UpdatedAt        time.Time `json:"updatedAt"`
	BMR              int       `json:"bmr"`
	TDEE             int       `json:"tdee"`
	DailyCalorieGoal int       `json:"dailyCalorieGoal"`
	BMI              float64   `json:"bmi"`
	BMICategory      string    `json:"bmiCategory"`
}

func newProfileResponse(p *service.ProfileWithMetrics) profileResponse {
	return profileResponse{
		ID:               p.Profile.ID,
		Age:              p.Profile.Age,
		Height:           p.Profile.HeightCm,
		Weight:           p.Profile.WeightKg,
		Gender:           string(p.Profile.Gender),
		ActivityLevel:    p.Profile.ActivityLevel,
		Goal:             p.Profile.Goal,
		UpdatedAt:        p.Profile.UpdatedAt,
		BMR:              int(math.Round(p.BMR)),
		TDEE:             int(math.Round(p.TDEE)),
		DailyCalorieGoal: int(math.Round(p.DailyCalorieGoal)),
		BMI:              math.Round(p.BMI*10) / 10,
		BMICategory:      p.BMICategory,
	}
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.tracker.Profile(r.Context())
	if err != nil {
		s.logger.Error("failed to get profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	if profile == nil {
		// No profile saved yet; clients treat null as "show the empty form".
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(profile))
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.tracker.SaveProfile(r.Context(), domain.UserProfile{
		Age:           req.Age,
		HeightCm:      req.Height,
		WeightKg:      req.Weight,
		Gender:        domain.Gender(req.Gender),
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(saved))
}
