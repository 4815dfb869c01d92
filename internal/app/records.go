package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/output"
	"github.com/pranshuparmar/ps2gv/internal/proc"
	"github.com/pranshuparmar/ps2gv/internal/process"
	"github.com/pranshuparmar/ps2gv/internal/source"
)

var flagRecordsFormat string

var recordsCmd = &cobra.Command{
	Use:   "records [snapshot files...]",
	Short: "Print the parsed process records",
	Long: `Print the records ps2gv reads from a process table, before any styling.
With no arguments the live process table is used.`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runRecords,
	ValidArgsFunction: completeFiles,
}

func init() {
	recordsCmd.Flags().StringVarP(&flagRecordsFormat, "format", "o", "table",
		"output format: "+strings.Join(output.RecordFormats, ", "))
	_ = recordsCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.RecordFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func runRecords(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	colorEnabled := !flagNoColor

	if len(args) == 0 {
		table, err := proc.CaptureLive()
		if err != nil {
			return err
		}
		return printRecords(cmd, table, colorEnabled)
	}

	failed := 0
	for i, path := range args {
		table, err := proc.CaptureSnapshot(path)
		if err != nil {
			failed++
			logFailure(err)
			continue
		}
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		if err := printRecords(cmd, table, colorEnabled); err != nil {
			return err
		}
	}
	if failed == len(args) {
		return fmt.Errorf("no readable inputs")
	}
	return nil
}

func printRecords(cmd *cobra.Command, table proc.Table, colorEnabled bool) error {
	records := process.Parse(table.Text, process.OptionsFor(table, source.NewResolver()))
	log.Debugf("%s: %d records", table.Origin, len(records))
	return output.PrintRecords(cmd.OutOrStdout(), records, flagRecordsFormat, colorEnabled)
}
