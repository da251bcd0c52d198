package bodyfat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

func TestCombineWeighted(t *testing.T) {
	m := &Measurements{
		Age:      30,
		HeightCm: 175,
		WeightKg: 75,
		Gender:   domain.GenderMale,
		NeckCm:   38,
		WaistCm:  85,
	}

	manual, err := Estimate(*m)
	require.NoError(t, err)

	got, err := Combine(25, m)
	require.NoError(t, err)

	want := math.Round((0.6*25+0.4*manual)*10) / 10
	assert.Equal(t, want, got)
}

func TestCombineWithoutMeasurements(t *testing.T) {
	got, err := Combine(22.5, nil)
	require.NoError(t, err)
	assert.Equal(t, 22.5, got)
}

func TestCombineNonPositiveMeasurements(t *testing.T) {
	m := &Measurements{Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 0, WaistCm: 85}
	got, err := Combine(19, m)
	require.NoError(t, err)
	assert.Equal(t, 19.0, got)

	m = &Measurements{Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 38, WaistCm: -1}
	got, err = Combine(19, m)
	require.NoError(t, err)
	assert.Equal(t, 19.0, got)
}

func TestCombineRoundsToOneDecimal(t *testing.T) {
	got, err := Combine(22.456, nil)
	require.NoError(t, err)
	assert.Equal(t, 22.5, got)
}

func TestCombineInvalidManualMeasurements(t *testing.T) {
	m := &Measurements{Age: 30, HeightCm: 175, WeightKg: 75, Gender: domain.GenderMale, NeckCm: 90, WaistCm: 85}
	_, err := Combine(20, m)
	assert.ErrorIs(t, err, ErrWaistNotAboveNeck)
}
