package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mlc/internal/diag"
	"mlc/internal/diagfmt"
	"mlc/internal/driver"
	"mlc/internal/project"
	"mlc/internal/source"
	"mlc/internal/version"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.ml | directory>",
	Short: "Tokenize an ml source file",
	Long:  `Tokenize breaks an ml source file into its constituent tokens. With a directory argument every *.ml file under it is tokenized in parallel.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "token output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("diag-format", "pretty", "diagnostics output format (pretty|json|sarif)")
	tokenizeCmd.Flags().Bool("comments", false, "emit comment tokens")
	tokenizeCmd.Flags().Bool("whitespace", false, "emit whitespace and newline tokens")
	tokenizeCmd.Flags().Bool("stats", false, "print lexer statistics to stderr")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
}

// buildOptions собирает опции прогона из флагов и ближайшего ml.toml.
func buildOptions(cmd *cobra.Command, startDir string) (driver.Options, error) {
	opts := driver.DefaultOptions()

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	// Манифест проекта задаёт значения, не переопределённые флагами
	manifest, ok, err := project.Discover(startDir)
	if err != nil {
		return opts, err
	}
	if ok {
		cfg := manifest.Config
		if cfg.Diagnostics.MaxErrors > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			opts.MaxDiagnostics = cfg.Diagnostics.MaxErrors
		}
		opts.WarningsAsErrors = cfg.Diagnostics.WarningsAsErrors
		opts.SuppressWarnings = cfg.Diagnostics.SuppressWarnings
		if cfg.Lexer.RetainComments != nil {
			opts.Lexer.RetainComments = *cfg.Lexer.RetainComments
		}
		if cfg.Lexer.RetainWhitespace != nil {
			opts.Lexer.RetainWhitespace = *cfg.Lexer.RetainWhitespace
		}
		if cfg.Lexer.UnicodeIdentifiers != nil {
			opts.Lexer.AllowUnicodeIdentifiers = *cfg.Lexer.UnicodeIdentifiers
		}
		if cfg.Lexer.LookupTables != nil {
			opts.Lexer.EnableLookupTables = *cfg.Lexer.LookupTables
		}
	}

	if retainComments, _ := cmd.Flags().GetBool("comments"); retainComments || cmd.Flags().Changed("comments") {
		opts.Lexer.RetainComments = retainComments
	}
	if retainWhitespace, _ := cmd.Flags().GetBool("whitespace"); retainWhitespace || cmd.Flags().Changed("whitespace") {
		opts.Lexer.RetainWhitespace = retainWhitespace
	}
	return opts, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	showStats, _ := cmd.Flags().GetBool("stats")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, path, diagFormat, showStats, quiet)
	}

	opts, err := buildOptions(cmd, ".")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(path, opts)
	if err != nil {
		renderDiagnostics(cmd, result.Bag, result.Sources, diagFormat)
		return fmt.Errorf("tokenization failed: %w", err)
	}

	renderDiagnostics(cmd, result.Bag, result.Sources, diagFormat)

	if showTimings && !quiet {
		fmt.Fprint(os.Stderr, result.Timing.Summary())
	}
	if showStats && !quiet {
		fmt.Fprint(os.Stderr, result.Stats.String())
	}

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.Sources, result.Interner)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.Sources, result.Interner)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(os.Stdout, result.Tokens, result.Sources, result.Interner)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.DiagStats.HasErrors() {
		return fmt.Errorf("%d errors reported", result.DiagStats.Errors+result.DiagStats.Fatals)
	}
	return nil
}

func runTokenizeDir(cmd *cobra.Command, dir, diagFormat string, showStats, quiet bool) error {
	opts, err := buildOptions(cmd, dir)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")

	mgr, _, results, err := driver.TokenizeDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := driver.MergeBags(results)
	renderDiagnostics(cmd, bag, mgr, diagFormat)

	if !quiet {
		total := driver.AggregateStats(results)
		fmt.Fprintf(os.Stdout, "%d files, %d tokens\n", len(results), total.TokenCount)
		if showStats {
			fmt.Fprint(os.Stderr, total.String())
		}
	}
	if bag.HasErrors() {
		return fmt.Errorf("%d files: diagnostics reported", len(results))
	}
	return nil
}

// renderDiagnostics печатает bag в stderr в выбранном формате.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, mgr *source.Manager, diagFormat string) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	switch diagFormat {
	case "json":
		_ = diagfmt.JSON(os.Stderr, bag, mgr, diagfmt.JSONOpts{IncludePositions: true})
	case "sarif":
		_ = diagfmt.Sarif(os.Stderr, bag, mgr, diagfmt.SarifRunMeta{
			ToolName:    "mlc",
			ToolVersion: version.Version,
		})
	default:
		diagfmt.Pretty(os.Stderr, bag, mgr, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowFixIts: true,
		})
	}
}
