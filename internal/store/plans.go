package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func SavePlan(db *sql.DB, in mealplan.PlanInput, result mealplan.PlanResult) (model.SavedPlan, error) {
	if len(result.Days) == 0 {
		return model.SavedPlan{}, fmt.Errorf("plan has no days to save")
	}
	flags, err := encodeFlags(in.Profile.Flags)
	if err != nil {
		return model.SavedPlan{}, err
	}
	mode := in.Mode
	if mode == "" {
		mode = model.ModePantry
	}
	token := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return model.SavedPlan{}, fmt.Errorf("begin save plan tx: %w", err)
	}
	res, err := tx.Exec(`
INSERT INTO plans(
  token, breed, age_years, weight_kg, activity, neutered, flags_json,
  meat_pct, veg_pct, carb_pct, kcal_per_gram, daily_kcal, daily_grams,
  mode, days, seed
) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		token,
		strings.TrimSpace(in.Profile.Breed),
		in.Profile.AgeYears,
		in.Profile.WeightKg,
		in.Profile.Activity,
		in.Profile.Neutered,
		flags,
		result.MeatPct,
		result.VegPct,
		result.CarbPct,
		in.KcalPerGram,
		result.Energy.AdjustedMER,
		result.DailyGrams,
		mode,
		len(result.Days),
		in.Seed,
	)
	if err != nil {
		_ = tx.Rollback()
		return model.SavedPlan{}, fmt.Errorf("save plan: %w", err)
	}
	planID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return model.SavedPlan{}, fmt.Errorf("resolve plan id: %w", err)
	}
	for _, day := range result.Days {
		if _, err := tx.Exec(`
INSERT INTO plan_days(plan_id, day, meat, veg, carb, meat_g, veg_g, carb_g, kcal, protein_g, fat_g, carbs_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
			planID,
			day.Day,
			day.Meat,
			day.Veg,
			day.Carb,
			day.MeatG,
			day.VegG,
			day.CarbG,
			day.Nutrition.Kcal,
			day.Nutrition.ProteinG,
			day.Nutrition.FatG,
			day.Nutrition.CarbsG,
		); err != nil {
			_ = tx.Rollback()
			return model.SavedPlan{}, fmt.Errorf("save plan day %d: %w", day.Day, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return model.SavedPlan{}, fmt.Errorf("commit save plan: %w", err)
	}
	return GetPlan(db, token)
}

// GetPlan resolves a saved plan by its full token or by a unique prefix.
func GetPlan(db *sql.DB, token string) (model.SavedPlan, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.SavedPlan{}, fmt.Errorf("plan token is required")
	}
	plan, err := scanPlan(db.QueryRow(planSelectBase()+` WHERE token = ?`, token))
	if err == nil {
		return plan, nil
	}
	if err != sql.ErrNoRows {
		return model.SavedPlan{}, fmt.Errorf("resolve plan %q: %w", token, err)
	}

	rows, err := db.Query(planSelectBase()+` WHERE token LIKE ? ORDER BY created_at DESC`, token+"%")
	if err != nil {
		return model.SavedPlan{}, fmt.Errorf("resolve plan %q: %w", token, err)
	}
	defer rows.Close()
	matches := make([]model.SavedPlan, 0, 2)
	for rows.Next() {
		plan, err := scanPlanRows(rows)
		if err != nil {
			return model.SavedPlan{}, err
		}
		matches = append(matches, plan)
	}
	if err := rows.Err(); err != nil {
		return model.SavedPlan{}, fmt.Errorf("resolve plan %q: %w", token, err)
	}
	switch len(matches) {
	case 0:
		return model.SavedPlan{}, fmt.Errorf("plan %q not found", token)
	case 1:
		return matches[0], nil
	default:
		return model.SavedPlan{}, fmt.Errorf("ambiguous plan token %q (%d matches)", token, len(matches))
	}
}

func ListPlans(db *sql.DB, limit int) ([]model.SavedPlan, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(planSelectBase()+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	out := make([]model.SavedPlan, 0)
	for rows.Next() {
		plan, err := scanPlanRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return out, nil
}

func PlanDays(db *sql.DB, planID int64) ([]model.DayPlan, error) {
	rows, err := db.Query(`
SELECT day, meat, veg, carb, meat_g, veg_g, carb_g, kcal, protein_g, fat_g, carbs_g
FROM plan_days
WHERE plan_id = ?
ORDER BY day ASC
`, planID)
	if err != nil {
		return nil, fmt.Errorf("list plan days: %w", err)
	}
	defer rows.Close()
	out := make([]model.DayPlan, 0)
	for rows.Next() {
		var day model.DayPlan
		if err := rows.Scan(
			&day.Day,
			&day.Meat,
			&day.Veg,
			&day.Carb,
			&day.MeatG,
			&day.VegG,
			&day.CarbG,
			&day.Nutrition.Kcal,
			&day.Nutrition.ProteinG,
			&day.Nutrition.FatG,
			&day.Nutrition.CarbsG,
		); err != nil {
			return nil, fmt.Errorf("scan plan day: %w", err)
		}
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan days: %w", err)
	}
	return out, nil
}

func DeletePlan(db *sql.DB, token string) (string, error) {
	plan, err := GetPlan(db, token)
	if err != nil {
		return "", err
	}
	if _, err := db.Exec(`DELETE FROM plans WHERE id = ?`, plan.ID); err != nil {
		return "", fmt.Errorf("delete plan %q: %w", plan.Token, err)
	}
	return plan.Token, nil
}

func planSelectBase() string {
	return `
SELECT id, token, breed, age_years, weight_kg, activity, neutered, flags_json,
       meat_pct, veg_pct, carb_pct, kcal_per_gram, daily_kcal, daily_grams,
       mode, days, seed, created_at
FROM plans`
}

func scanPlan(row *sql.Row) (model.SavedPlan, error) {
	var plan model.SavedPlan
	err := row.Scan(
		&plan.ID,
		&plan.Token,
		&plan.Breed,
		&plan.AgeYears,
		&plan.WeightKg,
		&plan.Activity,
		&plan.Neutered,
		&plan.Flags,
		&plan.MeatPct,
		&plan.VegPct,
		&plan.CarbPct,
		&plan.KcalPerGram,
		&plan.DailyKcal,
		&plan.DailyGrams,
		&plan.Mode,
		&plan.Days,
		&plan.Seed,
		&plan.CreatedAt,
	)
	return plan, err
}

func scanPlanRows(rows *sql.Rows) (model.SavedPlan, error) {
	var plan model.SavedPlan
	if err := rows.Scan(
		&plan.ID,
		&plan.Token,
		&plan.Breed,
		&plan.AgeYears,
		&plan.WeightKg,
		&plan.Activity,
		&plan.Neutered,
		&plan.Flags,
		&plan.MeatPct,
		&plan.VegPct,
		&plan.CarbPct,
		&plan.KcalPerGram,
		&plan.DailyKcal,
		&plan.DailyGrams,
		&plan.Mode,
		&plan.Days,
		&plan.Seed,
		&plan.CreatedAt,
	); err != nil {
		return model.SavedPlan{}, fmt.Errorf("scan plan: %w", err)
	}
	return plan, nil
}
