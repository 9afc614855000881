package main

import (
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/review"
	"github.com/spf13/cobra"
)

func newReviewCmd(a *app) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Print the review summary of a resume document",
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := readDocument(inputFile)
			if err != nil {
				return err
			}

			summary := review.Build(doc)
			observability.NewPrinter(a.out).PrintReview(summary)
			if !summary.HasContent() {
				a.printf("%s The resume is empty; add some content before generating.\n", yellow("!"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to resume document JSON file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
