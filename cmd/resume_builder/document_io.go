package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// readDocument loads a resume document file. The content must satisfy the
// resume document schema.
func readDocument(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("invalid resume document %s: %w", path, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to parse resume document: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// writeDocument writes doc as indented JSON to path, or to stdout when path
// is empty or "-".
func writeDocument(stdout io.Writer, path string, doc types.ResumeDocument) error {
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" || path == "-" {
		if _, err := stdout.Write(jsonBytes); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
