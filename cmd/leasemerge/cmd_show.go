package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/output"
)

var showCmd = &cobra.Command{
	Use:   "show [workbook.xlsx]",
	Short: "List a workbook's sheets and print the target sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to print (default from config)")
	showCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	showCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runShow(cmd *cobra.Command, args []string) error {
	name := sheetName
	if name == "" {
		name = cfg.Merge.SheetName
	}

	wb, err := leasemerge.Inspect(args[0], name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		data, err := output.ToJSON(wb, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s: %v\n", wb.BookName, wb.SheetNames)
	if wb.Sheet == nil {
		fmt.Fprintf(out, "sheet %q not found\n", name)
		return nil
	}
	fmt.Fprintln(out, output.RenderTable(output.SheetTable(wb.Sheet)))
	return nil
}
