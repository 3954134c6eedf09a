package mealplan_test

import (
	"testing"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

func TestNormalizeAlreadyBalanced(t *testing.T) {
	t.Parallel()
	meat, veg, carb, err := mealplan.Normalize(50, 35, 15)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if meat != 50 || veg != 35 || carb != 15 {
		t.Fatalf("expected 50/35/15 unchanged, got %d/%d/%d", meat, veg, carb)
	}
}

func TestNormalizeScalesToHundred(t *testing.T) {
	t.Parallel()
	meat, veg, carb, err := mealplan.Normalize(60, 60, 60)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if meat != 33 || veg != 33 || carb != 34 {
		t.Fatalf("expected 33/33/34, got %d/%d/%d", meat, veg, carb)
	}
}

func TestNormalizeSumAlwaysHundred(t *testing.T) {
	t.Parallel()
	cases := [][3]int{
		{1, 1, 1},
		{2, 1, 0},
		{70, 55, 30},
		{99, 2, 0},
		{30, 30, 41},
		{90, 90, 0},
		{0, 300, 0},
		{17, 23, 5},
		{55, 25, 20},
	}
	for _, c := range cases {
		meat, veg, carb, err := mealplan.Normalize(c[0], c[1], c[2])
		if err != nil {
			t.Fatalf("normalize %v: %v", c, err)
		}
		if meat < 0 || veg < 0 || carb < 0 {
			t.Fatalf("normalize %v produced negative component %d/%d/%d", c, meat, veg, carb)
		}
		if meat+veg+carb != 100 {
			t.Fatalf("normalize %v sums to %d, expected 100", c, meat+veg+carb)
		}
	}
}

func TestNormalizeRejectsNegative(t *testing.T) {
	t.Parallel()
	if _, _, _, err := mealplan.Normalize(-10, 60, 50); err == nil {
		t.Fatalf("expected error for negative percentage")
	}
}

func TestNormalizeRejectsAllZero(t *testing.T) {
	t.Parallel()
	if _, _, _, err := mealplan.Normalize(0, 0, 0); err == nil {
		t.Fatalf("expected error for all-zero percentages")
	}
}
