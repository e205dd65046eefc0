package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/docgen"
	"github.com/medicabinet/medicabinet/internal/record"
)

func documentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Generate printable documents",
	}
	cmd.AddCommand(referralCmd())
	cmd.AddCommand(sickLeaveCmd())
	return cmd
}

func referralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Generate a referral letter PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			body, _ := cmd.Flags().GetString("body")
			if patientID == "" || body == "" {
				return fmt.Errorf("--patient and --body are required")
			}

			a, p, doctor, err := loadDocumentContext(patientID)
			if err != nil {
				return err
			}

			layout := docgen.BuildReferral(*p, doctor, body, time.Now())
			return a.writeDocument(layout)
		},
	}
	cmd.Flags().String("patient", "", "Patient id")
	cmd.Flags().String("body", "", "Letter body")
	return cmd
}

func sickLeaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sick-leave",
		Short: "Generate a sick leave certificate PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			days, _ := cmd.Flags().GetInt("days")
			startStr, _ := cmd.Flags().GetString("start")
			if patientID == "" {
				return fmt.Errorf("--patient is required")
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			start := time.Now()
			if startStr != "" {
				var err error
				start, err = parseDate(startStr)
				if err != nil {
					return err
				}
			}

			a, p, doctor, err := loadDocumentContext(patientID)
			if err != nil {
				return err
			}

			layout := docgen.BuildSickLeave(*p, doctor, days, start, time.Now())
			return a.writeDocument(layout)
		},
	}
	cmd.Flags().String("patient", "", "Patient id")
	cmd.Flags().Int("days", 1, "Length of the leave in days (inclusive)")
	cmd.Flags().String("start", "", "First covered day (YYYY-MM-DD, default today)")
	return cmd
}

func loadDocumentContext(patientID string) (*app, *record.Patient, record.DoctorProfile, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, record.DoctorProfile{}, err
	}
	if err := a.requireSession(); err != nil {
		return nil, nil, record.DoctorProfile{}, err
	}

	p, err := a.patients().Get(patientID)
	if err != nil {
		return nil, nil, record.DoctorProfile{}, err
	}
	if p == nil {
		return nil, nil, record.DoctorProfile{}, fmt.Errorf("no patient with id %s", patientID)
	}

	doctor, err := a.practitioner().Profile()
	if err != nil {
		return nil, nil, record.DoctorProfile{}, err
	}
	return a, p, doctor, nil
}

func (a *app) writeDocument(layout docgen.Layout) error {
	out := filepath.Join(a.cfg.OutputDir, layout.FileName)
	if err := docgen.RenderPDF(layout, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", out)
	return nil
}
