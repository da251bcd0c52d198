package vision

import (
	"fmt"
	"strings"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

// PromptData carries the anthropometric context embedded in the analysis
// prompt.
type PromptData struct {
	Age      int
	HeightCm float64
	WeightKg float64
	BMI      float64
	Gender   domain.Gender
	Angles   []domain.PhotoAngle
}

// BuildPrompt renders the staged body-composition instruction sent to the
// vision model. It embeds the subject's data, the provided photo angles, the
// gender reference ranges, and the strict JSON output contract that
// ParseAnalysis expects.
func BuildPrompt(d PromptData) string {
	genderLabel := "Female"
	if d.Gender == domain.GenderMale {
		genderLabel = "Male"
	}

	angleNames := make([]string, 0, len(d.Angles))
	hasAngle := make(map[domain.PhotoAngle]bool, len(d.Angles))
	for _, a := range d.Angles {
		angleNames = append(angleNames, string(a))
		hasAngle[a] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a certified expert in body composition analysis and anthropometry. Perform a PROGRESSIVE scientific analysis of the provided images.

ANTHROPOMETRIC DATA:
- Gender: %s
- Age: %d years
- Height: %.0f cm
- Weight: %.1f kg
- BMI: %.1f kg/m2

PHOTO ANGLES PROVIDED: %s

PROGRESSIVE ANALYSIS METHODOLOGY (execute sequentially):

STEP 1 - BODY TYPE CLASSIFICATION:
Identify the predominant somatotype (ectomorph/mesomorph/endomorph) observing bone structure, shoulder-to-hip ratio, and visible mass distribution (muscle vs fat).

STEP 2 - ANATOMICAL LANDMARKS (analyze each region):
a) Abdominal region: rectus abdominis and oblique visibility, presence of "six-pack" definition, subcutaneous fat thickness at the waist.
b) Upper limbs: deltoid definition, biceps/triceps separation, forearm vascularity.
c) Thoracic region: pectoral definition, axillary fat.
d) Lower limbs (if visible): quadriceps separation, gluteal definition, inner-thigh fat.

STEP 3 - ANGLE-SPECIFIC ANALYSIS:
`, genderLabel, d.Age, d.HeightCm, d.WeightKg, d.BMI, strings.Join(angleNames, ", "))

	if hasAngle[domain.AngleFrontal] {
		b.WriteString("- FRONTAL: assess symmetry, central abdominal definition, waistline.\n")
	}
	if hasAngle[domain.AngleLateral] {
		b.WriteString("- LATERAL (PROFILE): assess lumbar curvature, anterior abdominal thickness, oblique definition.\n")
	}
	if hasAngle[domain.AngleBack] {
		b.WriteString("- BACK: assess dorsal definition (trapezius, latissimus), lower lumbar fat.\n")
	}

	integration := "Men: high BMI with definition suggests muscle mass; high BMI without definition suggests fat."
	if d.Gender == domain.GenderFemale {
		integration = "Women: account for natural gynoid fat distribution and hormonal patterns."
	}

	fmt.Fprintf(&b, `
STEP 4 - INTEGRATION WITH ANTHROPOMETRIC DATA:
- Compare visual findings against BMI %.1f.
- %s
- Adjust the estimate for age %d (metabolism, skin elasticity).

STEP 5 - CALIBRATION WITH SCIENTIFIC RANGES:
Men: Essential (2-5%%), Athletic (6-13%%), Fitness (14-17%%), Average (18-24%%), Overweight (25-31%%), Obese (>32%%)
Women: Essential (10-13%%), Athletic (14-20%%), Fitness (21-24%%), Average (25-31%%), Overweight (32-38%%), Obese (>39%%)

MANDATORY JSON OUTPUT:
{
  "bodyFatPercentage": [precise decimal number between 5-40, based on the 5 steps],
  "confidence": [0.7-0.95, higher when multiple angles agree],
  "reasoning": "Summary: body type identified, key landmarks observed, agreement between angles, integration with BMI, final range justified."
}`, d.BMI, integration, d.Age)

	return b.String()
}
