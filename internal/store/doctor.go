package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

type DoctorReport struct {
	UnknownPantryItems    int `json:"unknown_pantry_items"`
	MiscategorizedPantry  int `json:"miscategorized_pantry"`
	UnknownTasteNames     int `json:"unknown_taste_names"`
	InvalidTasteLevels    int `json:"invalid_taste_levels"`
	OrphanPlanDays        int `json:"orphan_plan_days"`
	InvalidPlanFlags      int `json:"invalid_plan_flags"`
	RemovedPantryRows     int `json:"removed_pantry_rows,omitempty"`
	FixedPantryCategories int `json:"fixed_pantry_categories,omitempty"`
	RemovedTasteRows      int `json:"removed_taste_rows,omitempty"`
	RemovedPlanDayRows    int `json:"removed_plan_day_rows,omitempty"`
	ResetPlanFlagRows     int `json:"reset_plan_flag_rows,omitempty"`
}

// RunDoctor audits stored rows against the in-process catalog. Rows can
// drift when the catalog changes between releases or when the file is
// edited outside the app; the CHECK constraints only guard inserts.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	unknownPantryIDs := make([]int64, 0)
	recategorize := make(map[int64]string)
	rows, err := db.Query(`SELECT id, name, category FROM pantry_items`)
	if err != nil {
		return report, fmt.Errorf("doctor pantry query: %w", err)
	}
	for rows.Next() {
		var id int64
		var name, category string
		if err := rows.Scan(&id, &name, &category); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor pantry scan: %w", err)
		}
		ing, ok := catalog.ByName(name)
		if !ok {
			report.UnknownPantryItems++
			unknownPantryIDs = append(unknownPantryIDs, id)
			continue
		}
		if ing.Category != category {
			report.MiscategorizedPantry++
			recategorize[id] = ing.Category
		}
	}
	_ = rows.Close()

	badTasteIDs := make([]int64, 0)
	rows, err = db.Query(`SELECT id, protein, veg, preference FROM taste_entries`)
	if err != nil {
		return report, fmt.Errorf("doctor taste query: %w", err)
	}
	for rows.Next() {
		var id int64
		var protein, veg, preference string
		if err := rows.Scan(&id, &protein, &veg, &preference); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor taste scan: %w", err)
		}
		bad := false
		if protein != "" {
			if _, ok := catalog.ByName(protein); !ok {
				report.UnknownTasteNames++
				bad = true
			}
		}
		if veg != "" {
			if _, ok := catalog.ByName(veg); !ok {
				report.UnknownTasteNames++
				bad = true
			}
		}
		if !mealplan.IsPreferenceLevel(preference) {
			report.InvalidTasteLevels++
			bad = true
		}
		if bad {
			badTasteIDs = append(badTasteIDs, id)
		}
	}
	_ = rows.Close()

	if err := db.QueryRow(`
SELECT COUNT(1) FROM plan_days pd LEFT JOIN plans p ON p.id = pd.plan_id WHERE p.id IS NULL
`).Scan(&report.OrphanPlanDays); err != nil {
		return report, fmt.Errorf("doctor orphan check: %w", err)
	}

	badFlagIDs := make([]int64, 0)
	rows, err = db.Query(`SELECT id, flags_json FROM plans`)
	if err != nil {
		return report, fmt.Errorf("doctor plan flags query: %w", err)
	}
	for rows.Next() {
		var id int64
		var flags string
		if err := rows.Scan(&id, &flags); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor plan flags scan: %w", err)
		}
		flags = strings.TrimSpace(flags)
		if flags == "" {
			continue
		}
		if !json.Valid([]byte(flags)) {
			report.InvalidPlanFlags++
			badFlagIDs = append(badFlagIDs, id)
		}
	}
	_ = rows.Close()

	if !fix {
		return report, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("doctor fix begin tx: %w", err)
	}
	for _, id := range unknownPantryIDs {
		if _, err := tx.Exec(`DELETE FROM pantry_items WHERE id = ?`, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix pantry row %d: %w", id, err)
		}
		report.RemovedPantryRows++
	}
	for id, category := range recategorize {
		if _, err := tx.Exec(`UPDATE pantry_items SET category = ? WHERE id = ?`, category, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix pantry category %d: %w", id, err)
		}
		report.FixedPantryCategories++
	}
	for _, id := range badTasteIDs {
		if _, err := tx.Exec(`DELETE FROM taste_entries WHERE id = ?`, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix taste row %d: %w", id, err)
		}
		report.RemovedTasteRows++
	}
	if report.OrphanPlanDays > 0 {
		res, err := tx.Exec(`DELETE FROM plan_days WHERE plan_id NOT IN (SELECT id FROM plans)`)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix orphan plan days: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil {
			report.RemovedPlanDayRows = int(affected)
		}
	}
	for _, id := range badFlagIDs {
		if _, err := tx.Exec(`UPDATE plans SET flags_json = '' WHERE id = ?`, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix plan flags %d: %w", id, err)
		}
		report.ResetPlanFlagRows++
	}
	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("doctor fix commit: %w", err)
	}

	return report, nil
}
