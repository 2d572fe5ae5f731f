package cmd

import (
	"log"

	"github.com/chasselife/xpnse/internal/storage"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	RunE:  runMigration,
	Use:   "migrate",
	Short: "create or upgrade the embedded database schema",
}

func runMigration(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	// Init applies the embedded migrations; upgrades are additive only.
	db := storage.New(cfg.Database.Path)
	if _, err := db.Init(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db.Close()
}
