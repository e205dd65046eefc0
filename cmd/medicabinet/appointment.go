package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/record"
)

func appointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Manage appointments",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			appts, err := a.appointments().List()
			if err != nil {
				return err
			}
			fmt.Printf("%-36s %-17s %-10s %-36s %s\n", "ID", "DATE", "STATUS", "PATIENT", "REASON")
			for _, ap := range appts {
				fmt.Printf("%-36s %-17s %-10s %-36s %s\n",
					ap.ID, ap.Date.Time().Format("2006-01-02 15:04"), ap.Status, ap.PatientID, ap.Reason)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			date, _ := cmd.Flags().GetString("date")
			reason, _ := cmd.Flags().GetString("reason")
			if patientID == "" || date == "" {
				return fmt.Errorf("--patient and --date are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			p, err := a.patients().Get(patientID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient with id %s", patientID)
			}

			when, err := parseDate(date)
			if err != nil {
				return err
			}

			ap := record.Appointment{
				ID:        uuid.NewString(),
				PatientID: patientID,
				Date:      record.NewMillis(when),
				Reason:    reason,
				Status:    record.StatusScheduled,
			}
			if err := a.appointments().Add(ap); err != nil {
				return err
			}
			fmt.Printf("Appointment %s scheduled for %s.\n", ap.ID, when.Format("2006-01-02 15:04"))
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient id")
	addCmd.Flags().String("date", "", "Date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	addCmd.Flags().String("reason", "", "Visit reason")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(statusCmd("complete", "Mark a scheduled appointment as completed", record.StatusCompleted))
	cmd.AddCommand(statusCmd("cancel", "Cancel a scheduled appointment", record.StatusCancelled))

	return cmd
}

func statusCmd(use, short string, status record.AppointmentStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if err := a.appointments().UpdateStatus(args[0], status); err != nil {
				return err
			}
			fmt.Printf("Appointment %s %s.\n", args[0], status)
			return nil
		},
	}
}
