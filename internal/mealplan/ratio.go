package mealplan

import (
	"fmt"
	"math"
)

// Normalize rescales a meat/veg/carb percentage triple so it sums to
// exactly 100. Rounding drift is resolved in carb's remainder first and
// any residual goes to meat, a deliberately greedy meat-first correction.
func Normalize(meatPct, vegPct, carbPct int) (int, int, int, error) {
	if meatPct < 0 || vegPct < 0 || carbPct < 0 {
		return 0, 0, 0, fmt.Errorf("ratio percentages must be >= 0")
	}
	total := meatPct + vegPct + carbPct
	if total == 0 {
		return 0, 0, 0, fmt.Errorf("ratio percentages must not all be zero")
	}
	if total == 100 {
		return meatPct, vegPct, carbPct, nil
	}

	meat := int(math.Round(float64(meatPct) / float64(total) * 100))
	veg := int(math.Round(float64(vegPct) / float64(total) * 100))
	carb := 100 - meat - veg
	if carb < 0 {
		carb = 0
	}
	if meat+veg+carb != 100 {
		meat += 100 - (meat + veg + carb)
		if meat < 0 {
			meat = 0
		}
	}
	return meat, veg, carb, nil
}
