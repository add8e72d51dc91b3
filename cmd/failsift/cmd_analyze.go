package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"failsift/internal/analyze"
	"failsift/internal/config"
	"failsift/internal/format"
)

var analyzeFlags struct {
	reports    string
	out        string
	dbPath     string
	configPath string
	workers    int
	tableMode  string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [reports-dir]",
	Short: "Analyze a directory of simulation reports",
	Long: `Walk a directory of JSON simulation reports, classify every reported
crash detection, and score each run.

Usage:
  failsift analyze ./reports                # Reports dir as positional arg
  failsift analyze --reports=./reports      # Reports dir as flag
  failsift analyze --config failsift.yaml   # Everything from a config file

Subdirectories become experiment groups: a report at
reports/2407_n16/run.json lands in group "2407_n16".

Summaries are persisted to a SQLite DB (see --db; "none" disables
persistence) and can be exported to CSV with --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyzeCmd,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.reports, "reports", "", "Directory walked for *.json report files")
	f.StringVarP(&analyzeFlags.out, "output", "o", "", "CSV output path (default: no CSV export)")
	f.StringVar(&analyzeFlags.dbPath, "db", "", "Store DB path (default: $FAILSIFT_DB or "+defaultDBHint+"; \"none\" disables)")
	f.StringVar(&analyzeFlags.configPath, "config", "", "Path to config file (YAML/JSON)")
	f.IntVar(&analyzeFlags.workers, "workers", 0, "Concurrent report analyses (0 = default)")
	f.StringVar(&analyzeFlags.tableMode, "format", "ascii", "Table output: ascii or markdown")
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	reports := analyzeFlags.reports
	out := analyzeFlags.out
	dbPath := analyzeFlags.dbPath
	workers := analyzeFlags.workers
	tableMode := analyzeFlags.tableMode

	// Config file fills in whatever the flags left unset.
	if analyzeFlags.configPath != "" {
		cfg, err := config.LoadFromPath(analyzeFlags.configPath)
		if err != nil {
			return err
		}
		if reports == "" {
			reports = cfg.Reports
		}
		if out == "" {
			out = cfg.Out
		}
		if dbPath == "" {
			dbPath = cfg.DB
		}
		if workers == 0 {
			workers = cfg.Workers
		}
		if !cmd.Flags().Changed("format") && cfg.Format != "" {
			tableMode = cfg.Format
		}
	}
	if reports == "" && len(args) > 0 {
		reports = args[0]
	}
	if reports == "" {
		return fmt.Errorf("reports directory is required\n\nUsage: failsift analyze <reports-dir>\n       failsift analyze --reports <dir>")
	}
	if dbPath != noStore {
		dbPath = resolveDBPath(dbPath)
	}

	rs, err := analyze.Run(cmd.Context(), analyze.Options{ReportsDir: reports, Workers: workers})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logDiagnostics(rs.Diagnostics)

	mode := format.ParseMode(tableMode)
	fmt.Fprintln(cmd.OutOrStdout(), format.RunTable(rs.Summaries, mode))
	fmt.Fprintln(cmd.OutOrStdout(), format.GroupTable(analyze.AggregateByGroup(rs.Summaries), mode))

	if out != "" {
		if err := analyze.WriteCSVFile(out, rs.Summaries); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CSV written to: %s\n", out)
	}

	if err := persistSummaries(dbPath, rs.Summaries); err != nil {
		return err
	}

	if len(rs.Failures) > 0 {
		return fmt.Errorf("%d of %d reports could not be analyzed", len(rs.Failures), len(rs.Failures)+len(rs.Summaries))
	}
	return nil
}
