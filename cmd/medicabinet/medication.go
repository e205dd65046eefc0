package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func medicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medication",
		Short: "Browse the learned medication library",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List learned medications, most prescribed first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			meds, err := a.medications().ListRanked()
			if err != nil {
				return err
			}
			fmt.Printf("%-6s %-25s %-12s %-12s %s\n", "USES", "NAME", "DOSAGE", "DURATION", "INSTRUCTIONS")
			for _, m := range meds {
				fmt.Printf("%-6d %-25s %-12s %-12s %s\n", m.UsageCount, m.Name, m.Dosage, m.Duration, m.Instructions)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	return cmd
}
