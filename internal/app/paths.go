package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "pawplan"
	dbFileName = "pawplan.db"

	// EnvDBPath overrides the default database location. Checked here
	// rather than in the CLI so the serve surface honors it too.
	EnvDBPath = "PAWPLAN_DB"
)

func DefaultDBPath() (string, error) {
	if env := os.Getenv(EnvDBPath); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
