package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/metrics"
)

type fakeFoodCatalog struct {
	listed   []*domain.Food
	searched []*domain.Food
	query    string
}

func (f *fakeFoodCatalog) List(context.Context) ([]*domain.Food, error) { return f.listed, nil }
func (f *fakeFoodCatalog) Search(_ context.Context, q string) ([]*domain.Food, error) {
	f.query = q
	return f.searched, nil
}

type fakeProfileRepo struct {
	stored *domain.UserProfile
}

func (f *fakeProfileRepo) Get(context.Context) (*domain.UserProfile, error) { return f.stored, nil }
func (f *fakeProfileRepo) Upsert(_ context.Context, p domain.UserProfile) (*domain.UserProfile, error) {
	p.ID = 1
	f.stored = &p
	return f.stored, nil
}

func newTrackerForProfile(profiles profileRepository) *TrackerService {
	return NewTrackerService(nil, nil, profiles, nil, nil, testLogger())
}

func TestFoodsListVsSearch(t *testing.T) {
	catalog := &fakeFoodCatalog{
		listed:   []*domain.Food{{Name: "Banana"}, {Name: "Oats"}},
		searched: []*domain.Food{{Name: "Banana"}},
	}
	svc := NewTrackerService(catalog, nil, nil, nil, nil, testLogger())

	foods, err := svc.Foods(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	foods, err = svc.Foods(context.Background(), "ban")
	require.NoError(t, err)
	assert.Len(t, foods, 1)
	assert.Equal(t, "ban", catalog.query)
}

func TestProfileEmpty(t *testing.T) {
	svc := newTrackerForProfile(&fakeProfileRepo{})

	got, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveProfileComputesMetrics(t *testing.T) {
	svc := newTrackerForProfile(&fakeProfileRepo{})

	got, err := svc.SaveProfile(context.Background(), domain.UserProfile{
		Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale,
		ActivityLevel: metrics.ActivityModerate, Goal: metrics.GoalCut,
	})
	require.NoError(t, err)

	// Mifflin-St Jeor: 10*75 + 6.25*175 - 5*30 + 5 = 1698.75
	assert.InDelta(t, 1698.75, got.BMR, 1e-9)
	assert.InDelta(t, 1698.75*1.55, got.TDEE, 1e-9)
	assert.InDelta(t, 1698.75*1.55-300, got.DailyCalorieGoal, 1e-9)
	assert.InDelta(t, 75/(1.75*1.75), got.BMI, 1e-9)
	assert.Equal(t, "Normal", got.BMICategory)
}

func TestSaveProfileDefaultsGoal(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := newTrackerForProfile(repo)

	_, err := svc.SaveProfile(context.Background(), domain.UserProfile{
		Age: 25, HeightCm: 160, WeightKg: 60, Gender: domain.GenderFemale,
		ActivityLevel: metrics.ActivitySedentary,
	})
	require.NoError(t, err)
	assert.Equal(t, metrics.GoalMaintain, repo.stored.Goal)
}

func TestSaveProfileValidation(t *testing.T) {
	svc := newTrackerForProfile(&fakeProfileRepo{})
	valid := domain.UserProfile{
		Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale,
		ActivityLevel: metrics.ActivityModerate,
	}

	tests := []struct {
		name   string
		mutate func(*domain.UserProfile)
	}{
		{"zero age", func(p *domain.UserProfile) { p.Age = 0 }},
		{"zero height", func(p *domain.UserProfile) { p.HeightCm = 0 }},
		{"negative weight", func(p *domain.UserProfile) { p.WeightKg = -1 }},
		{"bad gender", func(p *domain.UserProfile) { p.Gender = "robot" }},
		{"bad activity level", func(p *domain.UserProfile) { p.ActivityLevel = "extreme" }},
		{"bad goal", func(p *domain.UserProfile) { p.Goal = "bulk" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := svc.SaveProfile(context.Background(), p)
			assert.Error(t, err)
		})
	}
}

type fakeWorkoutRepo struct {
	created *domain.WorkoutEntry
}

func (f *fakeWorkoutRepo) Create(_ context.Context, e domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	e.ID = 1
	f.created = &e
	return f.created, nil
}
func (f *fakeWorkoutRepo) ListByDate(context.Context, string) ([]*domain.WorkoutEntry, error) {
	return nil, nil
}
func (f *fakeWorkoutRepo) Delete(context.Context, int64) error { return nil }

func TestLogWorkoutValidation(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewTrackerService(nil, nil, nil, nil, repo, testLogger())

	_, err := svc.LogWorkout(context.Background(), domain.WorkoutEntry{
		ExerciseName: "Running (8 km/h)", Date: "2026-08-30", Time: "07:00", DurationMin: 0,
	})
	assert.Error(t, err)

	_, err = svc.LogWorkout(context.Background(), domain.WorkoutEntry{
		Date: "2026-08-30", Time: "07:00", DurationMin: 30,
	})
	assert.Error(t, err)

	created, err := svc.LogWorkout(context.Background(), domain.WorkoutEntry{
		ExerciseName: "Running (8 km/h)", Date: "2026-08-30", Time: "07:00", DurationMin: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}
