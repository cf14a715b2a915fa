/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Ashupap/ShorelineVision-sub000/internal/db"
	"github.com/Ashupap/ShorelineVision-sub000/internal/security"
	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/store"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/spf13/cobra"
)

var provisionFlags struct {
	id       string
	username string
	email    string
	password string
	role     string
}

// usersCmd groups account administration commands.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersProvisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create or refresh an account by id",
	Long: `Creates the account with the given id, or updates it when it already exists.
An existing account takes the new username, email and password, and is
reactivated. Its role changes only when --role is given; new accounts
default to user. The password is read from SHORELINE_PASSWORD when
--password is not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := provisionFlags
		if f.password == "" {
			f.password = os.Getenv("SHORELINE_PASSWORD")
		}
		if f.password == "" {
			return errors.New("a password is required")
		}
		if f.role != "" && f.role != types.RoleAdmin && f.role != types.RoleUser {
			return fmt.Errorf("unknown role %q", f.role)
		}

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		hasher := security.NewHasher()
		hash, err := hasher.Hash(f.password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user := types.User{
			ID:           f.id,
			Username:     f.username,
			Role:         f.role,
			IsActive:     true,
			PasswordHash: hash,
		}
		if f.email != "" {
			user.Email = &f.email
		}

		auth := services.NewAuthService(store.NewUserRepository(dbConn), hasher)
		saved, err := auth.UpsertUser(cmd.Context(), user)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "provisioned %s (%s, role %s)\n", saved.Username, saved.ID, saved.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersProvisionCmd)

	flags := usersProvisionCmd.Flags()
	flags.StringVar(&provisionFlags.id, "id", "", "account id")
	flags.StringVar(&provisionFlags.username, "username", "", "login name")
	flags.StringVar(&provisionFlags.email, "email", "", "email address")
	flags.StringVar(&provisionFlags.password, "password", "", "initial password")
	flags.StringVar(&provisionFlags.role, "role", "", "role (admin or user); an existing account keeps its role when empty")
	_ = usersProvisionCmd.MarkFlagRequired("id")
	_ = usersProvisionCmd.MarkFlagRequired("username")
}
