package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"findingsheet/internal"
	"findingsheet/internal/config"
	"findingsheet/internal/findinggen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "findings_gen",
		Short: "Write a sample spreadsheet of five security findings",
		Long: `findings_gen writes test_findings.xlsx (or FINDINGS_FILE) containing one
header row and five illustrative findings, one per Impact level plus a second High.
The file is created or overwritten.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
			defer logger.Sync()
			for _, problem := range cfg.Problems {
				logger.Warn("%v", problem)
			}

			if out == "" {
				out = cfg.Data.FindingsFile
			}
			if err := generate(cmd.OutOrStdout(), out, format); err != nil {
				logger.Error("generating %s: %v", out, err)
				return err
			}
			logger.Debug("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file path (default FINDINGS_FILE or test_findings.xlsx)")
	cmd.Flags().StringVar(&format, "format", "", "output format: xlsx or csv (default inferred from --out)")
	return cmd
}

func generate(w io.Writer, out, formatName string) error {
	format, err := findinggen.ParseFormat(formatName, out)
	if err != nil {
		return err
	}

	ds := findinggen.Generate()
	if err := findinggen.Write(out, format, ds); err != nil {
		return err
	}

	fmt.Fprintf(w, "Created %s with %d sample findings\n", out, len(ds.Records))
	fmt.Fprintf(w, "File contains the following columns: %s\n", strings.Join(ds.Headers, ", "))
	fmt.Fprintf(w, "Data shape: %d rows x %d columns\n", len(ds.Rows), len(ds.Headers))
	return nil
}
