package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Unlock the cabinet with the access PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			pin, _ := cmd.Flags().GetString("pin")

			a, err := newApp()
			if err != nil {
				return err
			}
			if pin == "" {
				pin, err = promptLine("PIN: ")
				if err != nil {
					return err
				}
			}

			if err := a.practitioner().Authenticate(pin); err != nil {
				return err
			}
			profile, err := a.practitioner().Profile()
			if err != nil {
				return err
			}
			if err := a.sessions.Login(profile.Name); err != nil {
				return err
			}

			a.logger.Info().Str("practitioner", profile.Name).Msg("session opened")
			fmt.Printf("Logged in as %s.\n", profile.Name)
			return nil
		},
	}
	cmd.Flags().String("pin", "", "Access PIN (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.sessions.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
