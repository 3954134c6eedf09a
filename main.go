package main

import (
	"github.com/joho/godotenv"

	"github.com/pawplan/pawplan-cli/cmd/pawplan"
)

func main() {
	// Optional: a .env can set PAWPLAN_DB without touching the shell.
	_ = godotenv.Load()

	pawplan.Execute()
}
