package bodyfat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 24.49, BMI(75, 175), 0.01)
	assert.InDelta(t, 22.04, BMI(60, 165), 0.01)
}

func TestEstimateMaleReference(t *testing.T) {
	m := Measurements{
		Age:      30,
		HeightCm: 175,
		WeightKg: 75,
		Gender:   domain.GenderMale,
		NeckCm:   38,
		WaistCm:  85,
	}

	got, err := Estimate(m)
	require.NoError(t, err)

	// Assert against the formulas themselves, not memorized constants.
	bmi := 75.0 / (1.75 * 1.75)
	deurenberg := 1.20*bmi + 0.23*30 - 10.8 - 5.4
	navy := 495/(1.0324-0.19077*math.Log10(85-38)+0.15456*math.Log10(175)) - 450
	want := (deurenberg + navy) / 2

	assert.InDelta(t, want, got, 1e-9)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestEstimateFemaleReference(t *testing.T) {
	m := Measurements{
		Age:      28,
		HeightCm: 165,
		WeightKg: 60,
		Gender:   domain.GenderFemale,
		NeckCm:   32,
		WaistCm:  70,
	}

	got, err := Estimate(m)
	require.NoError(t, err)

	bmi := 60.0 / (1.65 * 1.65)
	deurenberg := 1.20*bmi + 0.23*28 - 5.4
	navy := (70*0.74 - 32*0.082 - 34.89) / 165 * 100
	want := (deurenberg + navy) / 2

	assert.InDelta(t, want, got, 1e-9)
}

func TestEstimateDeterministic(t *testing.T) {
	m := Measurements{Age: 40, HeightCm: 180, WeightKg: 82, Gender: domain.GenderMale, NeckCm: 40, WaistCm: 92}

	first, err := Estimate(m)
	require.NoError(t, err)
	second, err := Estimate(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNavyMaleWaistNotAboveNeck(t *testing.T) {
	_, err := Navy(domain.GenderMale, 175, 40, 40)
	assert.ErrorIs(t, err, ErrWaistNotAboveNeck)

	_, err = Navy(domain.GenderMale, 175, 40, 35)
	assert.ErrorIs(t, err, ErrWaistNotAboveNeck)
}

func TestEstimateRejectsInvalidMaleMeasurements(t *testing.T) {
	m := Measurements{Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 45, WaistCm: 40}
	_, err := Estimate(m)
	assert.ErrorIs(t, err, ErrWaistNotAboveNeck)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		gender domain.Gender
		label  string
	}{
		{"male essential", 5.0, domain.GenderMale, "Essential Fat"},
		{"male athletic lower bound", 6.0, domain.GenderMale, "Athletic"},
		{"male athletic", 10.0, domain.GenderMale, "Athletic"},
		{"male fitness lower bound", 14.0, domain.GenderMale, "Fitness"},
		{"male average lower bound", 18.0, domain.GenderMale, "Average"},
		{"male above average lower bound", 25.0, domain.GenderMale, "Above Average"},
		{"female essential", 12.0, domain.GenderFemale, "Essential Fat"},
		{"female athletic lower bound", 14.0, domain.GenderFemale, "Athletic"},
		{"female fitness lower bound", 21.0, domain.GenderFemale, "Fitness"},
		{"female average lower bound", 25.0, domain.GenderFemale, "Average"},
		{"female above average lower bound", 32.0, domain.GenderFemale, "Above Average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, Classify(tt.pct, tt.gender).Label)
		})
	}
}
