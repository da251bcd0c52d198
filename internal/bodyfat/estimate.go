// Package bodyfat computes body-fat percentage estimates from circumference
// measurements using the Deurenberg and US Navy formulas.
package bodyfat

import (
	"errors"
	"math"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

// ErrWaistNotAboveNeck is returned by the male Navy formula when the waist
// circumference does not exceed the neck circumference; the formula takes
// log10(waist-neck) and is undefined otherwise.
var ErrWaistNotAboveNeck = errors.New("waist circumference must be greater than neck circumference")

// Measurements holds the anthropometric inputs for a manual estimate.
type Measurements struct {
	Age      int
	HeightCm float64
	WeightKg float64
	Gender   domain.Gender
	NeckCm   float64
	WaistCm  float64
}

// BMI returns weight(kg) / height(m)^2.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// Deurenberg estimates body-fat percentage from BMI, age, and gender.
func Deurenberg(bmi float64, age int, gender domain.Gender) float64 {
	factor := 0.0
	if gender == domain.GenderMale {
		factor = 1.0
	}
	return 1.20*bmi + 0.23*float64(age) - 10.8*factor - 5.4
}

// Navy estimates body-fat percentage from circumference measurements using the
// US Navy method. The male formula requires waist > neck.
func Navy(gender domain.Gender, heightCm, neckCm, waistCm float64) (float64, error) {
	if gender == domain.GenderMale {
		if waistCm <= neckCm {
			return 0, ErrWaistNotAboveNeck
		}
		return 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450, nil
	}
	return (waistCm*0.74 - neckCm*0.082 - 34.89) / heightCm * 100, nil
}

// Estimate returns the arithmetic mean of the Deurenberg and Navy estimates.
func Estimate(m Measurements) (float64, error) {
	navy, err := Navy(m.Gender, m.HeightCm, m.NeckCm, m.WaistCm)
	if err != nil {
		return 0, err
	}
	deurenberg := Deurenberg(BMI(m.WeightKg, m.HeightCm), m.Age, m.Gender)
	return (deurenberg + navy) / 2, nil
}
