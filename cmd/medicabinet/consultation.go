package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/docgen"
	"github.com/medicabinet/medicabinet/internal/record"
)

func consultationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consultation",
		Short: "Manage visit records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List consultations, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")

			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			var consults []record.Consultation
			if patientID != "" {
				consults, err = a.consultations().ListByPatient(patientID)
			} else {
				consults, err = a.consultations().List()
			}
			if err != nil {
				return err
			}

			fmt.Printf("%-36s %-12s %-36s %-25s %s\n", "ID", "DATE", "PATIENT", "REASON", "DIAGNOSIS")
			for _, c := range consults {
				fmt.Printf("%-36s %-12s %-36s %-25s %s\n",
					c.ID, docgen.FormatDate(c.Date.Time()), c.PatientID, c.Reason, c.Diagnosis)
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Only this patient's consultations")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a consultation",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			reason, _ := cmd.Flags().GetString("reason")
			examination, _ := cmd.Flags().GetString("examination")
			diagnosis, _ := cmd.Flags().GetString("diagnosis")
			notes, _ := cmd.Flags().GetString("notes")
			if patientID == "" {
				return fmt.Errorf("--patient is required")
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

			c := record.Consultation{
				ID:          uuid.NewString(),
				PatientID:   patientID,
				Date:        record.NewMillis(time.Now()),
				Reason:      reason,
				Examination: examination,
				Diagnosis:   diagnosis,
				Notes:       notes,
			}
			if err := a.consultations().Add(c); err != nil {
				return err
			}
			fmt.Printf("Consultation %s recorded for %s.\n", c.ID, p.FullName())
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient id")
	addCmd.Flags().String("reason", "", "Visit reason")
	addCmd.Flags().String("examination", "", "Clinical examination findings")
	addCmd.Flags().String("diagnosis", "", "Diagnosis")
	addCmd.Flags().String("notes", "", "Free notes")
	cmd.AddCommand(addCmd)

	return cmd
}
