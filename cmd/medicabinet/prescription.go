package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medicabinet/medicabinet/internal/docgen"
	"github.com/medicabinet/medicabinet/internal/record"
)

func prescriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescription",
		Short: "Manage prescriptions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List prescriptions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")

			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			var rxs []record.Prescription
			if patientID != "" {
				rxs, err = a.prescriptions().ListByPatient(patientID)
			} else {
				rxs, err = a.prescriptions().List()
			}
			if err != nil {
				return err
			}

			fmt.Printf("%-36s %-12s %-36s %s\n", "ID", "DATE", "PATIENT", "MEDICATIONS")
			for _, rx := range rxs {
				names := make([]string, len(rx.Medications))
				for i, m := range rx.Medications {
					names[i] = m.Name
				}
				fmt.Printf("%-36s %-12s %-36s %s\n",
					rx.ID, docgen.FormatDate(rx.Date.Time()), rx.PatientID, strings.Join(names, ", "))
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Only this patient's prescriptions")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Issue a prescription and render its PDF",
		Long: `Issue a prescription. Each --med takes "name|dosage|duration|instructions".
Every medication is also learned into the autocomplete library. The printable
ordonnance is written to OUTPUT_DIR unless --no-pdf is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			meds, _ := cmd.Flags().GetStringArray("med")
			notes, _ := cmd.Flags().GetString("notes")
			noPDF, _ := cmd.Flags().GetBool("no-pdf")
			if patientID == "" || len(meds) == 0 {
				return fmt.Errorf("--patient and at least one --med are required")
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

			rx := record.Prescription{
				ID:        uuid.NewString(),
				PatientID: patientID,
				Date:      record.NewMillis(time.Now()),
				Notes:     notes,
			}
			for _, raw := range meds {
				med, err := parseMedication(raw)
				if err != nil {
					return err
				}
				rx.Medications = append(rx.Medications, med)
			}

			if err := a.prescriptions().Add(rx); err != nil {
				return err
			}
			for _, med := range rx.Medications {
				if err := a.medications().Learn(med); err != nil {
					return err
				}
			}
			fmt.Printf("Prescription %s issued for %s.\n", rx.ID, p.FullName())

			if noPDF {
				return nil
			}
			return a.renderPrescription(*p, rx)
		},
	}
	addCmd.Flags().String("patient", "", "Patient id")
	addCmd.Flags().StringArray("med", nil, `Medication as "name|dosage|duration|instructions" (repeatable)`)
	addCmd.Flags().String("notes", "", "Free notes")
	addCmd.Flags().Bool("no-pdf", false, "Skip PDF rendering")
	cmd.AddCommand(addCmd)

	renderCmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Render the PDF of an existing prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			rx, err := a.prescriptions().Get(args[0])
			if err != nil {
				return err
			}
			if rx == nil {
				return fmt.Errorf("no prescription with id %s", args[0])
			}
			p, err := a.patients().Get(rx.PatientID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("prescription references unknown patient %s", rx.PatientID)
			}
			return a.renderPrescription(*p, *rx)
		},
	}
	cmd.AddCommand(renderCmd)

	return cmd
}

func (a *app) renderPrescription(p record.Patient, rx record.Prescription) error {
	doctor, err := a.practitioner().Profile()
	if err != nil {
		return err
	}
	layout := docgen.BuildPrescription(p, doctor, rx, time.Now())
	out := filepath.Join(a.cfg.OutputDir, layout.FileName)
	if err := docgen.RenderPDF(layout, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", out)
	return nil
}

// parseMedication splits a "name|dosage|duration|instructions" argument.
// Trailing parts may be omitted; the name may not.
func parseMedication(raw string) (record.Medication, error) {
	parts := strings.SplitN(raw, "|", 4)
	med := record.Medication{Name: strings.TrimSpace(parts[0])}
	if med.Name == "" {
		return med, fmt.Errorf("medication %q has no name", raw)
	}
	if len(parts) > 1 {
		med.Dosage = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		med.Duration = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		med.Instructions = strings.TrimSpace(parts[3])
	}
	return med, nil
}
