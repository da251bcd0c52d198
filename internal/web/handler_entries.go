package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/store"
)

// entryDate returns the requested date or today when the query parameter is
// absent.
func entryDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}

type foodEntryRequest struct {
	FoodName string  `json:"foodName"`
	Calories int     `json:"calories"`
	Portion  float64 `json:"portion"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
}

type foodEntryResponse struct {
	ID        int64     `json:"id"`
	FoodName  string    `json:"foodName"`
	Calories  int       `json:"calories"`
	Portion   float64   `json:"portion"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

func newFoodEntryResponse(e *domain.FoodEntry) foodEntryResponse {
	return foodEntryResponse{
		ID:        e.ID,
		FoodName:  e.FoodName,
		Calories:  e.Calories,
		Portion:   e.PortionGrams,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fat:       e.Fat,
		Date:      e.Date,
		Time:      e.Time,
		CreatedAt: e.CreatedAt,
	}
}

func (s *Server) handleListFoodEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.tracker.FoodEntries(r.Context(), entryDate(r))
	if err != nil {
		s.logger.Error("failed to list food entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch food entries")
		return
	}
	out := make([]foodEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newFoodEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateFoodEntry(w http.ResponseWriter, r *http.Request) {
	var req foodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.tracker.LogFood(r.Context(), domain.FoodEntry{
		FoodName:     req.FoodName,
		Calories:     req.Calories,
		PortionGrams: req.Portion,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newFoodEntryResponse(entry))
}

func (s *Server) handleDeleteFoodEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	if err := s.tracker.DeleteFoodEntry(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "food entry not found")
			return
		}
		s.logger.Error("failed to delete food entry", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete food entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type workoutEntryRequest struct {
	ExerciseName   string `json:"exerciseName"`
	Category       string `json:"category"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Intensity      string `json:"intensity"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

type workoutEntryResponse struct {
	ID             int64     `json:"id"`
	ExerciseName   string    `json:"exerciseName"`
	Category       string    `json:"category"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Intensity      string    `json:"intensity"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newWorkoutEntryResponse(e *domain.WorkoutEntry) workoutEntryResponse {
	return workoutEntryResponse{
		ID:             e.ID,
		ExerciseName:   e.ExerciseName,
		Category:       e.Category,
		Duration:       e.DurationMin,
		CaloriesBurned: e.CaloriesBurned,
		Intensity:      e.Intensity,
		Date:           e.Date,
		Time:           e.Time,
		CreatedAt:      e.CreatedAt,
	}
}

func (s *Server) handleListWorkoutEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.tracker.WorkoutEntries(r.Context(), entryDate(r))
	if err != nil {
		s.logger.Error("failed to list workout entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch workout entries")
		return
	}
	out := make([]workoutEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newWorkoutEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	var req workoutEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.tracker.LogWorkout(r.Context(), domain.WorkoutEntry{
		ExerciseName:   req.ExerciseName,
		Category:       req.Category,
		DurationMin:    req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Intensity:      req.Intensity,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newWorkoutEntryResponse(entry))
}

func (s *Server) handleDeleteWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	if err := s.tracker.DeleteWorkoutEntry(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout entry not found")
			return
		}
		s.logger.Error("failed to delete workout entry", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete workout entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
