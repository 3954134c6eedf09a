package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

const (
	ConfigDefaultPreset = "default_preset"
	ConfigKcalPerGram   = "kcal_per_gram"
	ConfigPlanDays      = "plan_days"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value = strings.TrimSpace(value)
	switch key {
	case ConfigDefaultPreset:
		if _, err := catalog.PresetByKey(value); err != nil {
			return err
		}
	case ConfigKcalPerGram:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("kcal_per_gram must be a number > 0")
		}
	case ConfigPlanDays:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("plan_days must be a whole number > 0")
		}
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

func DefaultPreset(db *sql.DB) (string, error) {
	value, ok, err := GetConfig(db, ConfigDefaultPreset)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return catalog.DefaultPresetKey(), nil
	}
	if _, err := catalog.PresetByKey(value); err != nil {
		return "", err
	}
	return value, nil
}

func KcalPerGram(db *sql.DB) (float64, error) {
	value, ok, err := GetConfig(db, ConfigKcalPerGram)
	if err != nil {
		return 0, err
	}
	if !ok || value == "" {
		return mealplan.DefaultKcalPerGram, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("stored kcal_per_gram %q is not a number > 0", value)
	}
	return f, nil
}

func PlanDaysDefault(db *sql.DB) (int, error) {
	value, ok, err := GetConfig(db, ConfigPlanDays)
	if err != nil {
		return 0, err
	}
	if !ok || value == "" {
		return mealplan.DefaultDays, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("stored plan_days %q is not a whole number > 0", value)
	}
	return n, nil
}
