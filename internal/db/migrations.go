package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pantry_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL CHECK(category IN ('Meat', 'Veg', 'Carb', 'Oil', 'Treat')),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pantry_items_category ON pantry_items(category);

CREATE TABLE IF NOT EXISTS taste_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  breed TEXT NOT NULL DEFAULT '',
  age_years REAL NOT NULL DEFAULT 0 CHECK(age_years >= 0),
  weight_kg REAL NOT NULL DEFAULT 0 CHECK(weight_kg >= 0),
  protein TEXT NOT NULL DEFAULT '',
  veg TEXT NOT NULL DEFAULT '',
  preference TEXT NOT NULL CHECK(preference IN ('Dislike', 'Neutral', 'Like', 'Love')),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_taste_entries_created_at ON taste_entries(created_at);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "saved_plans",
		sql: `
CREATE TABLE IF NOT EXISTS plans (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  token TEXT NOT NULL UNIQUE,
  breed TEXT NOT NULL DEFAULT '',
  age_years REAL NOT NULL CHECK(age_years > 0),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  activity TEXT NOT NULL,
  neutered INTEGER NOT NULL DEFAULT 0,
  flags_json TEXT NOT NULL DEFAULT '',
  meat_pct INTEGER NOT NULL CHECK(meat_pct >= 0),
  veg_pct INTEGER NOT NULL CHECK(veg_pct >= 0),
  carb_pct INTEGER NOT NULL CHECK(carb_pct >= 0),
  kcal_per_gram REAL NOT NULL CHECK(kcal_per_gram > 0),
  daily_kcal REAL NOT NULL CHECK(daily_kcal >= 0),
  daily_grams REAL NOT NULL CHECK(daily_grams >= 0),
  mode TEXT NOT NULL DEFAULT 'pantry',
  days INTEGER NOT NULL CHECK(days > 0),
  seed INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS plan_days (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  plan_id INTEGER NOT NULL,
  day INTEGER NOT NULL CHECK(day > 0),
  meat TEXT NOT NULL,
  veg TEXT NOT NULL,
  carb TEXT NOT NULL,
  meat_g REAL NOT NULL CHECK(meat_g >= 0),
  veg_g REAL NOT NULL CHECK(veg_g >= 0),
  carb_g REAL NOT NULL CHECK(carb_g >= 0),
  kcal REAL NOT NULL DEFAULT 0,
  protein_g REAL NOT NULL DEFAULT 0,
  fat_g REAL NOT NULL DEFAULT 0,
  carbs_g REAL NOT NULL DEFAULT 0,
  FOREIGN KEY(plan_id) REFERENCES plans(id) ON DELETE CASCADE,
  UNIQUE(plan_id, day)
);

CREATE INDEX IF NOT EXISTS idx_plan_days_plan_id ON plan_days(plan_id);
`,
	},
}

var configDefaults = []struct {
	key   string
	value string
}{
	{"default_preset", "balanced"},
	{"kcal_per_gram", "1.35"},
	{"plan_days", "7"},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, def := range configDefaults {
		if _, err := db.Exec(`INSERT OR IGNORE INTO app_config(key, value) VALUES(?, ?)`, def.key, def.value); err != nil {
			return fmt.Errorf("seed config default %s: %w", def.key, err)
		}
	}

	return nil
}
