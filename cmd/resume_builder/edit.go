package main

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// editOptions are the flags shared by the edit subcommands
type editOptions struct {
	inputFile  string
	outputFile string
	section    string
	experience int
}

func newEditCmd(a *app) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply one edit to a resume document file",
		Long: "Apply a single add, remove or set operation to a resume document JSON file. " +
			"Use --experience to address the descriptions of one experience instead of the section list.",
	}

	cmd.PersistentFlags().StringVarP(&opts.inputFile, "in", "i", "", "Path to resume document JSON file")
	cmd.PersistentFlags().StringVarP(&opts.outputFile, "out", "o", "", "Path to output JSON file (defaults to --in)")
	cmd.PersistentFlags().StringVar(&opts.section, "section", "", "Section: thoughtworks_experiences, other_experiences or skills")
	cmd.PersistentFlags().IntVar(&opts.experience, "experience", -1, "Experience index whose descriptions are edited")
	_ = cmd.MarkPersistentFlagRequired("in")

	cmd.AddCommand(newEditAddCmd(a, opts), newEditRemoveCmd(a, opts), newEditSetCmd(a, opts))
	return cmd
}

func newEditAddCmd(a *app, opts *editOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append an empty entry to a section or descriptions list",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.applyEdit(opts, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
				sel, err := opts.selector()
				if err != nil {
					return doc, err
				}
				if err := document.Validate(doc, sel, -1, ""); err != nil {
					return doc, err
				}
				return document.AddEntry(doc, sel), nil
			})
		},
	}
}

func newEditRemoveCmd(a *app, opts *editOptions) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an entry; removing the last one leaves an empty entry",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.applyEdit(opts, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
				sel, err := opts.selector()
				if err != nil {
					return doc, err
				}
				if index < 0 {
					return doc, fmt.Errorf("--index must be 0 or greater")
				}
				if err := document.Validate(doc, sel, index, ""); err != nil {
					return doc, err
				}
				return document.RemoveEntry(doc, sel, index), nil
			})
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "Index of the entry to remove")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}

func newEditSetCmd(a *app, opts *editOptions) *cobra.Command {
	var (
		fieldName string
		value     string
		index     int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a document field, or a field of one entry when --section is given",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.applyEdit(opts, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
				field, err := document.ParseField(fieldName)
				if err != nil {
					return doc, err
				}

				if opts.section == "" {
					if !document.IsDocumentField(field) {
						return doc, fmt.Errorf("%q is not a document field; use --section and --index for entry fields", field)
					}
					return document.SetField(doc, field, value), nil
				}

				sel, err := opts.selector()
				if err != nil {
					return doc, err
				}
				if index < 0 {
					return doc, fmt.Errorf("--index is required with --section")
				}
				if err := document.Validate(doc, sel, index, field); err != nil {
					return doc, err
				}
				return document.UpdateField(doc, sel, index, field, value), nil
			})
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", "", "Field to set (name, preferred_pronouns, role, summary, title, duration, tech_stack, skills, text)")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	cmd.Flags().IntVar(&index, "index", -1, "Index of the entry to change")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

// selector builds the list selector from --section and --experience.
func (o *editOptions) selector() (document.Selector, error) {
	if o.section == "" {
		return document.Selector{}, fmt.Errorf("--section is required")
	}
	section, err := document.ParseSection(o.section)
	if err != nil {
		return document.Selector{}, err
	}
	if o.experience >= 0 {
		return document.DescriptionsOf(section, o.experience), nil
	}
	return document.ListOf(section), nil
}

// applyEdit reads the input document, applies edit and writes the result.
func (a *app) applyEdit(opts *editOptions, edit func(types.ResumeDocument) (types.ResumeDocument, error)) error {
	doc, err := readDocument(opts.inputFile)
	if err != nil {
		return err
	}

	updated, err := edit(doc)
	if err != nil {
		return err
	}

	outputFile := opts.outputFile
	if outputFile == "" {
		outputFile = opts.inputFile
	}
	if err := writeDocument(a.out, outputFile, updated); err != nil {
		return err
	}
	a.logger.Debug("document updated", slog.String("path", outputFile))
	return nil
}
