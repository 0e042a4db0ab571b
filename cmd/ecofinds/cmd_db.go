package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecofinds/ecofinds/config"
	"github.com/ecofinds/ecofinds/database/seeders"
	"github.com/ecofinds/ecofinds/pkg/database"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.Open()
}

// ecofinds migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Running migrations…")
		return migration.New(db).Run()
	},
}

// ecofinds migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Rolling back last batch…")
		return migration.New(db).Rollback()
	},
}

// ecofinds migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return migration.New(db).Status()
	},
}

// ecofinds seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Running seeders…")
		return seeders.RunAll(db)
	},
}
