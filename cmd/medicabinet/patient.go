package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/docgen"
	"github.com/medicabinet/medicabinet/internal/record"
)

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage patients",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, most recently added first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			patients, err := a.patients().List()
			if err != nil {
				return err
			}
			fmt.Printf("%-36s %-25s %-12s %-6s %s\n", "ID", "NAME", "BIRTH", "AGE", "PHONE")
			now := time.Now()
			for _, p := range patients {
				fmt.Printf("%-36s %-25s %-12s %-6d %s\n", p.ID, p.FullName(), p.BirthDate, p.Age(now), p.Phone)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a patient with their visit history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			p, err := a.patients().Get(args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient with id %s", args[0])
			}

			fmt.Printf("Name:            %s\n", p.FullName())
			fmt.Printf("Birth date:      %s (%d ans)\n", p.BirthDate, p.Age(time.Now()))
			fmt.Printf("Gender:          %s\n", p.Gender)
			fmt.Printf("Phone:           %s\n", p.Phone)
			fmt.Printf("Address:         %s\n", p.Address)
			fmt.Printf("Medical history: %s\n", p.MedicalHistory)
			fmt.Printf("Allergies:       %s\n", p.Allergies)

			consults, err := a.consultations().ListByPatient(p.ID)
			if err != nil {
				return err
			}
			if len(consults) > 0 {
				fmt.Printf("\nConsultations:\n")
				for _, c := range consults {
					fmt.Printf("  %s  %s / %s\n", docgen.FormatDate(c.Date.Time()), c.Reason, c.Diagnosis)
				}
			}

			rxs, err := a.prescriptions().ListByPatient(p.ID)
			if err != nil {
				return err
			}
			if len(rxs) > 0 {
				fmt.Printf("\nPrescriptions:\n")
				for _, rx := range rxs {
					fmt.Printf("  %s  %s (%d medication(s))\n", docgen.FormatDate(rx.Date.Time()), rx.ID, len(rx.Medications))
				}
			}
			return nil
		},
	}
	cmd.AddCommand(showCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			p, err := patientFromFlags(cmd, record.Patient{
				ID:        uuid.NewString(),
				CreatedAt: record.NewMillis(time.Now()),
			})
			if err != nil {
				return err
			}
			if p.FirstName == "" || p.LastName == "" || p.BirthDate == "" {
				return fmt.Errorf("--first-name, --last-name and --birth-date are required")
			}

			if err := a.patients().Add(p); err != nil {
				return err
			}
			fmt.Printf("Patient %s added with id %s.\n", p.FullName(), p.ID)
			return nil
		},
	}
	patientFlags(addCmd)
	cmd.AddCommand(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			current, err := a.patients().Get(args[0])
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("no patient with id %s", args[0])
			}

			p, err := patientFromFlags(cmd, *current)
			if err != nil {
				return err
			}
			if err := a.patients().Update(p); err != nil {
				return err
			}
			fmt.Printf("Patient %s updated.\n", p.FullName())
			return nil
		},
	}
	patientFlags(updateCmd)
	cmd.AddCommand(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient (visit records are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if err := a.patients().Delete(args[0]); err != nil {
				return err
			}
			fmt.Println("Patient deleted.")
			return nil
		},
	}
	cmd.AddCommand(deleteCmd)

	return cmd
}

func patientFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String("gender", "", "Gender: Homme, Femme or Autre")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("medical-history", "", "Known medical history")
	cmd.Flags().String("allergies", "", "Known allergies")
}

// patientFromFlags overlays the set flags on base, leaving unset fields as
// they are so update only touches what the caller passed.
func patientFromFlags(cmd *cobra.Command, base record.Patient) (record.Patient, error) {
	setString := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = v
		}
	}
	setString("first-name", &base.FirstName)
	setString("last-name", &base.LastName)
	setString("birth-date", &base.BirthDate)
	setString("phone", &base.Phone)
	setString("address", &base.Address)
	setString("medical-history", &base.MedicalHistory)
	setString("allergies", &base.Allergies)

	if cmd.Flags().Changed("gender") {
		v, _ := cmd.Flags().GetString("gender")
		g := record.Gender(v)
		if g != record.GenderMale && g != record.GenderFemale && g != record.GenderOther {
			return base, fmt.Errorf("gender must be Homme, Femme or Autre, got %q", v)
		}
		base.Gender = g
	}

	if base.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", base.BirthDate); err != nil {
			return base, fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD", base.BirthDate)
		}
	}
	return base, nil
}
