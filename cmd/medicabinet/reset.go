package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data; the next command starts from the seed document",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")

			a, err := newApp()
			if err != nil {
				return err
			}

			if !yes {
				answer, err := promptLine("This deletes every patient, visit and prescription. Type 'yes' to confirm: ")
				if err != nil {
					return err
				}
				if answer != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := a.store.Reset(); err != nil {
				return err
			}
			if err := a.sessions.Logout(); err != nil {
				return err
			}
			a.logger.Info().Msg("store reset")
			fmt.Println("All data deleted. The next command starts from a fresh cabinet.")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}
