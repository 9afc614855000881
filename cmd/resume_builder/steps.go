package main

import (
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

func newStepsCmd(a *app) *cobra.Command {
	var active int

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the wizard sections",
		RunE: func(_ *cobra.Command, _ []string) error {
			observability.NewPrinter(a.out).PrintSteps(active)
			return nil
		},
	}

	cmd.Flags().IntVar(&active, "active", -1, "Highlight this step")
	return cmd
}
