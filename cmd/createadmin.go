/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/sdg-portal/portal/config"
	"github.com/sdg-portal/portal/internal/db"
	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/types"
	"github.com/spf13/cobra"
)

var (
	adminFullname string
	adminEmail    string
	adminPassword string
)

// createAdminCmd seeds an administrator account so a fresh deployment
// has someone who can reach the management pages.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" || adminPassword == "" {
			return errors.New("--email and --password are required")
		}
		if len(adminPassword) < 6 {
			return errors.New("password must be at least 6 characters")
		}

		cfg := config.LoadConfig()
		if err := db.Migrate(cfg); err != nil {
			return err
		}
		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer func() {
			_ = dbConn.Close()
		}()

		repo := store.NewUserRepository(dbConn)
		user, err := repo.Create(cmd.Context(), types.User{
			Fullname: adminFullname,
			Email:    adminEmail,
			Password: adminPassword,
			Role:     types.RoleAdmin,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return fmt.Errorf("email %s is already registered", adminEmail)
			}
			return fmt.Errorf("create admin failed: %w", err)
		}

		fmt.Printf("created admin %s (id=%d)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminFullname, "fullname", "Administrator", "full name for the account")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "email address for the account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "password for the account")
}
