package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/lean-style/internal/config"
	"github.com/jonathan/lean-style/internal/exceptions"
	"github.com/jonathan/lean-style/internal/lint"
	"github.com/jonathan/lean-style/internal/observability"
	"github.com/jonathan/lean-style/internal/report"
	"github.com/jonathan/lean-style/internal/schemas"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Check Lean source files for style violations",
	Long: `Checks each file and reports violations not covered by the exceptions file.

Without an exceptions file the run generates one: every violation is printed as a
baseline row and the command succeeds. With an exceptions file every new violation
is printed as a CI annotation and the command fails.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLint,
}

var (
	lintRoot       string
	lintExceptions string
	lintConfigPath string
	lintJSONOut    string
	lintVerbose    bool
)

func init() {
	lintCmd.Flags().StringVar(&lintRoot, "root", "", "Repository root (default $LEAN_STYLE_ROOT or .)")
	lintCmd.Flags().StringVar(&lintExceptions, "exceptions", "", "Exceptions file, relative to the root (default $LEAN_STYLE_EXCEPTIONS or scripts/style-exceptions.txt)")
	lintCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to JSON or YAML config file (optional)")
	lintCmd.Flags().StringVar(&lintJSONOut, "json-out", "", "Path to write a JSON report (optional)")
	lintCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "Print progress and a summary to stderr")

	rootCmd.AddCommand(lintCmd)
}

// resolveConfig layers the flags over the config file, the environment and the defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		Root:       lintRoot,
		Exceptions: lintExceptions,
		JSONOut:    lintJSONOut,
		Verbose:    lintVerbose,
	}

	if lintConfigPath != "" {
		fileCfg, err := config.LoadConfig(lintConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := exceptions.Load(cfg.ExceptionsPath(), cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to load exceptions: %w", err)
	}

	printer := observability.NewPrinter(stderr)
	if cfg.Verbose {
		printer.PrintExceptions(store.Entries())
	}

	var reporter report.Reporter = report.For(stdout, store.Mode())
	var collector *report.Collector
	if cfg.JSONOut != "" {
		collector = report.NewCollector()
		reporter = report.Tee{reporter, collector}
	}

	linter, err := lint.New(cfg.Options(), store, reporter, cfg.Verbose)
	if err != nil {
		return err
	}

	result, runErr := linter.Run(args)

	if collector != nil {
		if err := writeReport(stderr, cfg.JSONOut, collector, result); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printer.PrintRunSummary(result)
	}

	if runErr != nil {
		return runErr
	}

	if result.Failed() {
		return fmt.Errorf("found %d new style violation(s)", result.NewViolations)
	}

	return nil
}

// writeReport writes the JSON report and checks it against the embedded schema.
// A schema mismatch is only a warning.
func writeReport(stderr io.Writer, path string, collector *report.Collector, result *lint.Result) error {
	rep := collector.Build(result.Mode, result.FilesChecked, result.Suppressed)
	if err := report.WriteJSON(path, rep); err != nil {
		return err
	}

	if err := schemas.ValidateReportFile(path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(stderr, "Warning: Generated report does not validate against schema: %v\n", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate report against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate report against schema: %v\n", err)
		}
	}

	return nil
}
