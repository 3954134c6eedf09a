package store

import (
	"database/sql"
	"fmt"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func AddPantryItem(db *sql.DB, query string) (model.PantryItem, error) {
	ing, err := catalog.Match(query)
	if err != nil {
		return model.PantryItem{}, err
	}
	res, err := db.Exec(`INSERT OR IGNORE INTO pantry_items(name, category) VALUES(?, ?)`, ing.Name, ing.Category)
	if err != nil {
		return model.PantryItem{}, fmt.Errorf("add pantry item %q: %w", ing.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.PantryItem{}, fmt.Errorf("add pantry item %q: %w", ing.Name, err)
	}
	if affected == 0 {
		return model.PantryItem{}, fmt.Errorf("%q is already in the pantry", ing.Name)
	}
	return pantryItemByName(db, ing.Name)
}

func ListPantry(db *sql.DB, category string) ([]model.PantryItem, error) {
	query := `SELECT id, name, category, created_at FROM pantry_items`
	args := make([]any, 0, 1)
	if category != "" {
		if !catalog.IsCategory(category) {
			return nil, fmt.Errorf("unknown category %q", category)
		}
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY category ASC, name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pantry: %w", err)
	}
	defer rows.Close()
	out := make([]model.PantryItem, 0)
	for rows.Next() {
		var item model.PantryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pantry: %w", err)
	}
	return out, nil
}

func RemovePantryItem(db *sql.DB, query string) (string, error) {
	ing, err := catalog.Match(query)
	if err != nil {
		return "", err
	}
	res, err := db.Exec(`DELETE FROM pantry_items WHERE name = ?`, ing.Name)
	if err != nil {
		return "", fmt.Errorf("remove pantry item %q: %w", ing.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("remove pantry item %q: %w", ing.Name, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("%q is not in the pantry", ing.Name)
	}
	return ing.Name, nil
}

func ClearPantry(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM pantry_items`)
	if err != nil {
		return 0, fmt.Errorf("clear pantry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear pantry: %w", err)
	}
	return affected, nil
}

// PantryPools buckets the stored pantry into the three rotation
// categories. Oils and treats are pantry-listable but never rotate.
func PantryPools(db *sql.DB) (mealplan.Pantry, error) {
	items, err := ListPantry(db, "")
	if err != nil {
		return mealplan.Pantry{}, err
	}
	var pantry mealplan.Pantry
	for _, item := range items {
		switch item.Category {
		case model.CategoryMeat:
			pantry.Meats = append(pantry.Meats, item.Name)
		case model.CategoryVeg:
			pantry.Vegs = append(pantry.Vegs, item.Name)
		case model.CategoryCarb:
			pantry.Carbs = append(pantry.Carbs, item.Name)
		}
	}
	return pantry, nil
}

func pantryItemByName(db *sql.DB, name string) (model.PantryItem, error) {
	var item model.PantryItem
	err := db.QueryRow(`SELECT id, name, category, created_at FROM pantry_items WHERE name = ?`, name).
		Scan(&item.ID, &item.Name, &item.Category, &item.CreatedAt)
	if err != nil {
		return model.PantryItem{}, fmt.Errorf("lookup pantry item %q: %w", name, err)
	}
	return item, nil
}
