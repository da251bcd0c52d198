package domain

import "time"

// Gender selects which body-fat and BMR formulas apply.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// PhotoAngle identifies the camera angle of a body photo. The values match
// what clients send; "costas" is the back view.
type PhotoAngle string

const (
	AngleFrontal PhotoAngle = "frontal"
	AngleLateral PhotoAngle = "lateral"
	AngleBack    PhotoAngle = "costas"
)

// Food is a catalogue entry with calories per standard portion.
type Food struct {
	ID           int64
	Name         string
	Category     string
	Calories     int
	PortionGrams int
	Protein      float64
	Carbs        float64
	Fat          float64
}

// Exercise is a catalogue entry with energy expenditure per minute for a
// reference 70 kg person.
type Exercise struct {
	ID                int64
	Name              string
	Category          string
	CaloriesPerMinute float64
	Intensity         string
}

// UserProfile is the single stored profile driving BMR/TDEE calculations.
type UserProfile struct {
	ID            int64
	Age           int
	HeightCm      int
	WeightKg      float64
	Gender        Gender
	ActivityLevel string
	Goal          string
	UpdatedAt     time.Time
}

// FoodEntry is one logged meal item. Date is YYYY-MM-DD, Time is HH:MM.
type FoodEntry struct {
	ID           int64
	FoodName     string
	Calories     int
	PortionGrams float64
	Protein      float64
	Carbs        float64
	Fat          float64
	Date         string
	Time         string
	CreatedAt    time.Time
}

// WorkoutEntry is one logged workout. Date is YYYY-MM-DD, Time is HH:MM.
type WorkoutEntry struct {
	ID             int64
	ExerciseName   string
	Category       string
	DurationMin    int
	CaloriesBurned int
	Intensity      string
	Date           string
	Time           string
	CreatedAt      time.Time
}
