package main

import (
	"errors"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/wizard"
	"github.com/spf13/cobra"
)

// errGenerationFailed signals a Failed state; the printed box already carries the reason.
var errGenerationFailed = errors.New("resume generation failed")

func newGenerateCmd(a *app) *cobra.Command {
	var (
		inputFile string
		outputDir string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PDF resume from a resume document",
		Long: "Walk a resume document to the Review & Submit section, submit it to the rendering service " +
			"and download the resulting PDF. With --preview the document is rendered without submitting.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(inputFile)
			if err != nil {
				return err
			}

			sess, err := a.newSession()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			sess.Replace(doc)

			var state generation.State
			if preview {
				state, err = sess.Preview(cmd.Context())
			} else {
				if err := sess.GoTo(wizard.StepReview); err != nil {
					return err
				}
				state, err = sess.Submit(cmd.Context())
			}
			if err != nil {
				return err
			}

			printer := observability.NewPrinter(a.out)
			if state.Phase != generation.PhaseSucceeded {
				printer.PrintGeneration(state, "")
				return errGenerationFailed
			}

			dir := outputDir
			if dir == "" {
				dir = a.cfg.OutputDir
			}
			path, err := sess.Download(dir)
			if err != nil {
				return err
			}
			printer.PrintGeneration(state, path)
			if !preview {
				printer.PrintSteps(sess.Step())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to resume document JSON file")
	cmd.Flags().StringVar(&outputDir, "out-dir", "", "Directory the PDF is written to (overrides config output_dir)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render without submitting")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
