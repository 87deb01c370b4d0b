package app

import (
	"github.com/spf13/cobra"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/daemon"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

func init() { //nolint: gochecknoinits
	adminCmd.AddCommand(adminPasswdCmd, adminTOTPCmd, adminTOTPDisableCmd)
	rootCmd.AddCommand(adminCmd)
}

// users opens the configured database for the admin commands.
func users() (*auth.LocalProvider, error) {
	db, err := daemon.OpenDB(&cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}

	return auth.NewLocalProvider(db), nil
}

var (
	adminCmd = &cobra.Command{
		Use:               "admin",
		Short:             "Manage admin accounts",
		PersistentPreRunE: loadConfig,
	}

	adminPasswdCmd = &cobra.Command{
		Use:   "passwd <username> <password>",
		Short: "Set the password of an admin, creating the account if needed",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := users()
			if err != nil {
				return err
			}

			user, err := p.SetPassword(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			cmd.Printf("password of %s updated\n", user.Username)

			return nil
		},
	}

	adminTOTPCmd = &cobra.Command{
		Use:   "totp <username>",
		Short: "Enable the TOTP second factor and print the enrollment URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := users()
			if err != nil {
				return err
			}

			issuer := cfg.Title
			if issuer == "" {
				issuer = rootCmd.Use
			}

			enrollURL, err := p.EnableTOTP(cmd.Context(), issuer, args[0])
			if err != nil {
				return err
			}

			cmd.Println(enrollURL)

			return nil
		},
	}

	adminTOTPDisableCmd = &cobra.Command{
		Use:   "totp-disable <username>",
		Short: "Disable the TOTP second factor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := users()
			if err != nil {
				return err
			}

			if err = p.DisableTOTP(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Printf("totp of %s disabled\n", args[0])

			return nil
		},
	}
)
