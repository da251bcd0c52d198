package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/bodyfat"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/metrics"
)

// foodCatalog is the subset of store.FoodStore that TrackerService requires.
type foodCatalog interface {
	List(ctx context.Context) ([]*domain.Food, error)
	Search(ctx context.Context, query string) ([]*domain.Food, error)
}

// exerciseCatalog is the subset of store.ExerciseStore that TrackerService
// requires.
type exerciseCatalog interface {
	List(ctx context.Context) ([]*domain.Exercise, error)
	Search(ctx context.Context, query string) ([]*domain.Exercise, error)
}

// profileRepository is the subset of store.ProfileStore that TrackerService
// requires.
type profileRepository interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error)
}

// foodEntryRepository is the subset of store.FoodEntryStore that
// TrackerService requires.
type foodEntryRepository interface {
	Create(ctx context.Context, e domain.FoodEntry) (*domain.FoodEntry, error)
	ListByDate(ctx context.Context, date string) ([]*domain.FoodEntry, error)
	Delete(ctx context.Context, id int64) error
}

// workoutEntryRepository is the subset of store.WorkoutEntryStore that
// TrackerService requires.
type workoutEntryRepository interface {
	Create(ctx context.Context, e domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	ListByDate(ctx context.Context, date string) ([]*domain.WorkoutEntry, error)
	Delete(ctx context.Context, id int64) error
}

// TrackerService handles catalogue lookups, daily entry logging, and the
// user profile with its derived energy metrics.
type TrackerService struct {
	foods          foodCatalog
	exercises      exerciseCatalog
	profiles       profileRepository
	foodEntries    foodEntryRepository
	workoutEntries workoutEntryRepository
	logger         *slog.Logger
}

func NewTrackerService(
	foods foodCatalog,
	exercises exerciseCatalog,
	profiles profileRepository,
	foodEntries foodEntryRepository,
	workoutEntries workoutEntryRepository,
	logger *slog.Logger,
) *TrackerService {
	return &TrackerService{
		foods:          foods,
		exercises:      exercises,
		profiles:       profiles,
		foodEntries:    foodEntries,
		workoutEntries: workoutEntries,
		logger:         logger,
	}
}

func (s *TrackerService) Foods(ctx context.Context, search string) ([]*domain.Food, error) {
	if search != "" {
		return s.foods.Search(ctx, search)
	}
	return s.foods.List(ctx)
}

func (s *TrackerService) Exercises(ctx context.Context, search string) ([]*domain.Exercise, error) {
	if search != "" {
		return s.exercises.Search(ctx, search)
	}
	return s.exercises.List(ctx)
}

// ProfileWithMetrics bundles a stored profile with the energy metrics derived
// from it.
type ProfileWithMetrics struct {
	Profile          *domain.UserProfile
	BMR              float64
	TDEE             float64
	DailyCalorieGoal float64
	BMI              float64
	BMICategory      string
}

func (s *TrackerService) Profile(ctx context.Context) (*ProfileWithMetrics, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return withMetrics(profile), nil
}

func (s *TrackerService) SaveProfile(ctx context.Context, p domain.UserProfile) (*ProfileWithMetrics, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if p.Goal == "" {
		p.Goal = metrics.GoalMaintain
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile saved", "age", saved.Age, "gender", saved.Gender, "activity_level", saved.ActivityLevel, "goal", saved.Goal)
	return withMetrics(saved), nil
}

func withMetrics(p *domain.UserProfile) *ProfileWithMetrics {
	bmr := metrics.BMR(p.Gender, p.WeightKg, float64(p.HeightCm), p.Age)
	tdee := metrics.TDEE(bmr, p.ActivityLevel)
	bmi := bodyfat.BMI(p.WeightKg, float64(p.HeightCm))
	return &ProfileWithMetrics{
		Profile:          p,
		BMR:              bmr,
		TDEE:             tdee,
		DailyCalorieGoal: metrics.DailyCalorieGoal(tdee, p.Goal),
		BMI:              bmi,
		BMICategory:      metrics.BMICategory(bmi),
	}
}

func validateProfile(p domain.UserProfile) error {
	if p.Age <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return fmt.Errorf("age, height and weight must be positive")
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("gender must be male or female")
	}
	if !metrics.ValidActivityLevel(p.ActivityLevel) {
		return fmt.Errorf("unknown activity level %q", p.ActivityLevel)
	}
	if p.Goal != "" && !metrics.ValidGoal(p.Goal) {
		return fmt.Errorf("unknown goal %q", p.Goal)
	}
	return nil
}

func (s *TrackerService) LogFood(ctx context.Context, e domain.FoodEntry) (*domain.FoodEntry, error) {
	if e.FoodName == "" || e.Date == "" || e.Time == "" {
		return nil, fmt.Errorf("food name, date and time are required")
	}
	return s.foodEntries.Create(ctx, e)
}

func (s *TrackerService) FoodEntries(ctx context.Context, date string) ([]*domain.FoodEntry, error) {
	return s.foodEntries.ListByDate(ctx, date)
}

func (s *TrackerService) DeleteFoodEntry(ctx context.Context, id int64) error {
	return s.foodEntries.Delete(ctx, id)
}

func (s *TrackerService) LogWorkout(ctx context.Context, e domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if e.ExerciseName == "" || e.Date == "" || e.Time == "" {
		return nil, fmt.Errorf("exercise name, date and time are required")
	}
	if e.DurationMin <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	return s.workoutEntries.Create(ctx, e)
}

func (s *TrackerService) WorkoutEntries(ctx context.Context, date string) ([]*domain.WorkoutEntry, error) {
	return s.workoutEntries.ListByDate(ctx, date)
}

func (s *TrackerService) DeleteWorkoutEntry(ctx context.Context, id int64) error {
	return s.workoutEntries.Delete(ctx, id)
}
