package web

import (
	"net/http"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

type foodResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Calories int     `json:"calories"`
	Portion  int     `json:"portion"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (s *Server) handleListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := s.tracker.Foods(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		s.logger.Error("failed to list foods", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch foods")
		return
	}

	out := make([]foodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, foodResponse{
			ID:       f.ID,
			Name:     f.Name,
			Category: f.Category,
			Calories: f.Calories,
			Portion:  f.PortionGrams,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type exerciseResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute"`
	Intensity         string  `json:"intensity"`
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.tracker.Exercises(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		s.logger.Error("failed to list exercises", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch exercises")
		return
	}

	out := make([]exerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, newExerciseResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func newExerciseResponse(e *domain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		CaloriesPerMinute: e.CaloriesPerMinute,
		Intensity:         e.Intensity,
	}
}
