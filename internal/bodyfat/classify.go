package bodyfat

import "github.com/AnthonyAlbero/TCC-fittracker/internal/domain"

// Severity hints how a category should be presented.
type Severity string

const (
	SeverityAlert   Severity = "alert"
	SeverityGood    Severity = "good"
	SeverityNeutral Severity = "neutral"
	SeverityWarning Severity = "warning"
)

// Category labels a body-fat percentage against gender-specific reference
// ranges.
type Category struct {
	Label    string
	Severity Severity
}

// Classify maps a body-fat percentage to its reference category. Thresholds
// are half-open: a value on a boundary belongs to the higher bracket.
func Classify(pct float64, gender domain.Gender) Category {
	if gender == domain.GenderMale {
		switch {
		case pct < 6:
			return Category{Label: "Essential Fat", Severity: SeverityAlert}
		case pct < 14:
			return Category{Label: "Athletic", Severity: SeverityGood}
		case pct < 18:
			return Category{Label: "Fitness", Severity: SeverityGood}
		case pct < 25:
			return Category{Label: "Average", Severity: SeverityNeutral}
		default:
			return Category{Label: "Above Average", Severity: SeverityWarning}
		}
	}
	switch {
	case pct < 14:
		return Category{Label: "Essential Fat", Severity: SeverityAlert}
	case pct < 21:
		return Category{Label: "Athletic", Severity: SeverityGood}
	case pct < 25:
		return Category{Label: "Fitness", Severity: SeverityGood}
	case pct < 32:
		return Category{Label: "Average", Severity: SeverityNeutral}
	default:
		return Category{Label: "Above Average", Severity: SeverityWarning}
	}
}
