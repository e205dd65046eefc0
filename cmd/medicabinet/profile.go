package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the practitioner profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the practitioner profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			profile, err := a.practitioner().Profile()
			if err != nil {
				return err
			}
			fmt.Printf("Name:      %s\n", profile.Name)
			fmt.Printf("Specialty: %s\n", profile.Specialty)
			fmt.Printf("Address:   %s\n", profile.Address)
			fmt.Printf("Phone:     %s\n", profile.Phone)
			fmt.Printf("Email:     %s\n", profile.Email)
			return nil
		},
	}
	cmd.AddCommand(showCmd)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the practitioner profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			profile, err := a.practitioner().Profile()
			if err != nil {
				return err
			}

			setString := func(name string, dst *string) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					*dst = v
				}
			}
			setString("name", &profile.Name)
			setString("specialty", &profile.Specialty)
			setString("address", &profile.Address)
			setString("phone", &profile.Phone)
			setString("email", &profile.Email)

			if cmd.Flags().Changed("pin") {
				pin, _ := cmd.Flags().GetString("pin")
				if pin == "" {
					return fmt.Errorf("--pin must not be empty")
				}
				profile.SecurityCode = pin
			}

			if err := a.practitioner().UpdateProfile(profile); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}
	updateCmd.Flags().String("name", "", "Practitioner name as printed on documents")
	updateCmd.Flags().String("specialty", "", "Specialty")
	updateCmd.Flags().String("address", "", "Office address")
	updateCmd.Flags().String("phone", "", "Office phone")
	updateCmd.Flags().String("email", "", "Office email")
	updateCmd.Flags().String("pin", "", "New access PIN")
	cmd.AddCommand(updateCmd)

	return cmd
}
