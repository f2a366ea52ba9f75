package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"findingsheet/internal"
	"findingsheet/internal/config"
	"findingsheet/internal/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var htmlPath, sheet string

	cmd := &cobra.Command{
		Use:   "findings_check [file]",
		Short: "Print structural and validation diagnostics for a findings spreadsheet",
		Long: `findings_check reads a findings spreadsheet (default test_findings.xlsx or
FINDINGS_FILE), echoes its layout and first rows, then checks required columns
and the Impact, Likelihood and Exposure vocabularies. Problems are reported,
never fatal.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
			defer logger.Sync()
			for _, problem := range cfg.Problems {
				logger.Warn("%v", problem)
			}

			path := cfg.Data.FindingsFile
			if len(args) == 1 {
				path = args[0]
			}
			plain := cfg.Output.PlainMarkers || !isTerminal(cmd.OutOrStdout())
			return check(cmd.OutOrStdout(), validation.Options{
				Path:      path,
				SheetName: sheet,
				Now:       time.Now(),
				Style:     styleFor(plain),
				HTMLPath:  htmlPath,
				Logger:    logger,
			})
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "also write an HTML report to this path")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read (default the active sheet)")
	return cmd
}

func check(w io.Writer, opts validation.Options) error {
	_, _, err := validation.Run(w, opts)
	return err
}

func styleFor(plain bool) validation.Style {
	if plain {
		return validation.PlainStyle()
	}
	return validation.TerminalStyle()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
