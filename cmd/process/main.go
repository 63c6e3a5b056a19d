package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sessionlab/therapynotes/internal/config"
	"github.com/sessionlab/therapynotes/internal/core"
	"github.com/sessionlab/therapynotes/internal/core/extraction"
	"github.com/sessionlab/therapynotes/internal/core/merge"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/llm"
	"github.com/sessionlab/therapynotes/internal/sample"
	"github.com/sessionlab/therapynotes/internal/store"
)

var (
	cfgPath   string
	inputFile string
	useSample bool
	useMock   bool
	noPersist bool
	quiet     bool
)

func main() {
	root := &cobra.Command{
		Use:   "process",
		Short: "Run the therapy-transcript extraction pipeline once and print the result",
		Long: "Reads a speaker-diarized transcript (from a file, stdin, or the bundled sample),\n" +
			"runs the three-template extraction and merge, optionally persists the record,\n" +
			"and prints the result envelope as JSON.",
		RunE: run,
	}

	root.Flags().StringVarP(&cfgPath, "config", "c", "config/config.toml", "path to TOML config")
	root.Flags().StringVarP(&inputFile, "file", "f", "", "transcript file (defaults to stdin)")
	root.Flags().BoolVar(&useSample, "sample", false, "process the bundled sample transcript")
	root.Flags().BoolVar(&useMock, "mock", false, "use the mock LLM provider (no API key needed)")
	root.Flags().BoolVar(&noPersist, "no-persist", false, "skip writing to the record store")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if quiet {
		log = zerolog.Nop()
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if useMock {
		cfg.LLM.Provider = "mock"
	}

	raw, err := readTranscript()
	if err != nil {
		return err
	}

	ctx := context.Background()

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	var st store.RecordStore
	if !noPersist {
		sqlStore, err := store.OpenSQLite(cfg.Storage.Path, log)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		st = sqlStore
	}

	diag := extraction.NewDiagnostics(cfg.Extraction.DiagnosticsDir, log)
	ex := extraction.New(llmClient, diag, extraction.OptionsFromConfig(cfg.Extraction), log)
	merger := merge.New(diag, log)
	templates := prompt.DefaultSet().WithOverrides(cfg.Prompts)
	processor := core.NewProcessor(ex, merger, st, templates, log)

	result := processor.Process(ctx, raw)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func readTranscript() (string, error) {
	if useSample {
		return sample.GroupSession, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript from stdin: %w", err)
	}
	return string(data), nil
}
