package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
)

type AddTasteEntryInput struct {
	Breed      string
	AgeYears   float64
	WeightKg   float64
	Protein    string
	Veg        string
	Preference string
	Notes      string
}

func AddTasteEntry(db *sql.DB, in AddTasteEntryInput) (int64, error) {
	if !mealplan.IsPreferenceLevel(in.Preference) {
		return 0, fmt.Errorf("unknown preference level %q", in.Preference)
	}
	if in.AgeYears < 0 {
		return 0, fmt.Errorf("age must be >= 0")
	}
	if in.WeightKg < 0 {
		return 0, fmt.Errorf("weight must be >= 0")
	}

	protein := strings.TrimSpace(in.Protein)
	if protein != "" {
		ing, err := catalog.Match(protein)
		if err != nil {
			return 0, err
		}
		if ing.Category != model.CategoryMeat {
			return 0, fmt.Errorf("ingredient %q is %s, not %s", ing.Name, ing.Category, model.CategoryMeat)
		}
		protein = ing.Name
	}
	veg := strings.TrimSpace(in.Veg)
	if veg != "" {
		ing, err := catalog.Match(veg)
		if err != nil {
			return 0, err
		}
		if ing.Category != model.CategoryVeg {
			return 0, fmt.Errorf("ingredient %q is %s, not %s", ing.Name, ing.Category, model.CategoryVeg)
		}
		veg = ing.Name
	}
	if protein == "" && veg == "" {
		return 0, fmt.Errorf("taste entry needs a protein or a veg")
	}

	res, err := db.Exec(`
INSERT INTO taste_entries(breed, age_years, weight_kg, protein, veg, preference, notes)
VALUES(?, ?, ?, ?, ?, ?, ?)
`,
		strings.TrimSpace(in.Breed),
		in.AgeYears,
		in.WeightKg,
		protein,
		veg,
		in.Preference,
		strings.TrimSpace(in.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("add taste entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve taste entry id: %w", err)
	}
	return id, nil
}

func ListTasteEntries(db *sql.DB, limit int) ([]model.TasteEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, breed, age_years, weight_kg, protein, veg, preference, IFNULL(notes,''), created_at
FROM taste_entries
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list taste entries: %w", err)
	}
	defer rows.Close()
	out := make([]model.TasteEntry, 0)
	for rows.Next() {
		entry, err := scanTasteEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taste entries: %w", err)
	}
	return out, nil
}

func DeleteTasteEntry(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM taste_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete taste entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete taste entry %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("taste entry %d not found", id)
	}
	return nil
}

// RankTaste aggregates the whole log, not just the listing window.
func RankTaste(db *sql.DB, field string) ([]model.PreferenceRank, error) {
	rows, err := db.Query(`
SELECT id, breed, age_years, weight_kg, protein, veg, preference, IFNULL(notes,''), created_at
FROM taste_entries
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("load taste entries: %w", err)
	}
	defer rows.Close()
	entries := make([]model.TasteEntry, 0)
	for rows.Next() {
		entry, err := scanTasteEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taste entries: %w", err)
	}
	return mealplan.RankPreferences(entries, field)
}

func scanTasteEntry(rows *sql.Rows) (model.TasteEntry, error) {
	var entry model.TasteEntry
	if err := rows.Scan(
		&entry.ID,
		&entry.Breed,
		&entry.AgeYears,
		&entry.WeightKg,
		&entry.Protein,
		&entry.Veg,
		&entry.Preference,
		&entry.Notes,
		&entry.CreatedAt,
	); err != nil {
		return model.TasteEntry{}, fmt.Errorf("scan taste entry: %w", err)
	}
	return entry, nil
}
