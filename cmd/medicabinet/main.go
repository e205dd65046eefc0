package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medicabinet",
		Short: "Single-practitioner medical office manager",
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(patientCmd())
	rootCmd.AddCommand(appointmentCmd())
	rootCmd.AddCommand(consultationCmd())
	rootCmd.AddCommand(prescriptionCmd())
	rootCmd.AddCommand(medicationCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(documentCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(resetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
