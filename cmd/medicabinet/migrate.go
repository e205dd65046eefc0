package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/store"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Inspect the stored document's schema version",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show which schema upgrade steps the stored document has",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			doc, err := a.store.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Document schema version: %d (current: %d)\n", doc.SchemaVersion, store.CurrentSchemaVersion)
			fmt.Printf("%-10s %-25s %s\n", "VERSION", "NAME", "STATUS")
			for _, s := range store.Status(doc) {
				status := "pending"
				if s.Applied {
					status = "applied"
				}
				fmt.Printf("%-10d %-25s %s\n", s.Version, s.Name, status)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}
