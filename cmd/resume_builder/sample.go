package main

import (
	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Fetch the sample resume from the rendering service",
		Long:  "Load the rendering service's sample resume into a fresh session and write it as a resume document JSON file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.newSession()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if err := sess.LoadSample(cmd.Context()); err != nil {
				return err
			}
			if err := writeDocument(a.out, outputFile, sess.Document()); err != nil {
				return err
			}
			if outputFile != "" && outputFile != "-" {
				a.printf("%s Sample resume written to %s\n", green("✓"), outputFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (stdout when empty)")
	return cmd
}
