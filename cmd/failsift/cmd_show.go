package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"failsift/internal/analyze"
	"failsift/internal/format"
	"failsift/internal/store"
)

var showFlags struct {
	dbPath    string
	group     string
	tableMode string
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show previously analyzed runs from the store",
	Long: `List run summaries saved by earlier analyze invocations, with per-group
aggregates. Use --group to restrict the listing to one experiment group.`,
	Args: cobra.NoArgs,
	RunE: runShowCmd,
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showFlags.dbPath, "db", "", "Store DB path (default: $FAILSIFT_DB or "+defaultDBHint+")")
	f.StringVar(&showFlags.group, "group", "", "Only show runs from this group")
	f.StringVar(&showFlags.tableMode, "format", "ascii", "Table output: ascii or markdown")
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	st, err := store.Open(resolveDBPath(showFlags.dbPath))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(showFlags.group)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		if showFlags.group != "" {
			groups, err := st.ListGroups()
			if err != nil {
				return err
			}
			return fmt.Errorf("no runs in group %q (available: %v)", showFlags.group, groups)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No analyzed runs yet. Run: failsift analyze <reports-dir>")
		return nil
	}

	mode := format.ParseMode(showFlags.tableMode)
	fmt.Fprintln(cmd.OutOrStdout(), format.RunTable(runs, mode))
	fmt.Fprintln(cmd.OutOrStdout(), format.GroupTable(analyze.AggregateByGroup(runs), mode))
	return nil
}
