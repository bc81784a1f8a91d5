package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"coverletter-backend/internal/bootstrap"
	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/config"
)

var (
	genResumePath string
	genJobPath    string
	genOutPath    string
	genProvider   string
	genModel      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a recruiter message and cover letter",
	Long:  "Extract text from a resume, combine it with a job description and ask the configured LLM provider for a recruiter message and cover letter. Use --job - to read the job description from stdin.",
	RunE:  runGenerate,
}

// newCompleter is swapped in tests.
var newCompleter = func(cmd *cobra.Command, cfg config.Config) (llm.Completer, error) {
	return bootstrap.BuildCompleter(cmd.Context(), cfg)
}

func init() {
	generateCmd.Flags().StringVarP(&genResumePath, "resume", "r", "", "Path to resume file (pdf, doc, docx or txt)")
	generateCmd.Flags().StringVarP(&genJobPath, "job", "j", "", "Path to job description text file, or - for stdin")
	generateCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "Write the JSON result to this file instead of stdout")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "LLM provider (overrides LLM_PROVIDER)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "LLM model (overrides LLM_MODEL)")
	_ = generateCmd.MarkFlagRequired("resume")
	_ = generateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if genProvider != "" {
		cfg.LLMProvider = strings.ToLower(strings.TrimSpace(genProvider))
	}
	if genModel != "" {
		cfg.LLMModel = genModel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobDescription, err := readJob(cmd.InOrStdin(), genJobPath)
	if err != nil {
		return err
	}

	completer, err := newCompleter(cmd, cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(genResumePath)
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	svc := coverletters.NewService(extract.New(1), completer, cfg.LLMTimeout)
	out, err := svc.Generate(cmd.Context(), filepath.Base(genResumePath), f, jobDescription)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if genOutPath == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return err
	}
	if err := os.WriteFile(genOutPath, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", genOutPath)
	return nil
}

func readJob(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("job description is empty")
	}
	return string(data), nil
}
