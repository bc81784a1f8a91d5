package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"coverletter-backend/internal/extract"
)

var extractResumePath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the plain text extracted from a resume file",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractResumePath, "resume", "r", "", "Path to resume file (pdf, doc, docx or txt)")
	_ = extractCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	text, err := extractFile(cmd, extractResumePath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func extractFile(cmd *cobra.Command, path string) (string, error) {
	name := filepath.Base(path)
	if _, err := extract.ParseFormat(name); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	return extract.New(1).ExtractBytes(cmd.Context(), name, data)
}
