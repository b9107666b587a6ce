package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/document"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/output"
	"go.uber.org/zap"
)

var (
	outputPath  string
	sheetName   string
	jsonOutput  bool
	pretty      bool
	showHistory bool
	noLabel     bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [document] [workbook.xlsx]",
	Short: "Append a lease document's fields to a workbook",
	Long: `Extracts the lease fields from the first page of the document (PDF or
text, pages separated by form feeds) and writes a copy of the workbook with
one new row. The input workbook is not modified.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

var extractCmd = &cobra.Command{
	Use:   "extract [document]",
	Short: "Print the lease fields found in a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	mergeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: duplicated_<workbook> next to the input)")
	mergeCmd.Flags().StringVar(&sheetName, "sheet", "", "Target sheet (default from config)")
	mergeCmd.Flags().BoolVar(&showHistory, "history", false, "Print the audit history after merging")
	mergeCmd.Flags().BoolVar(&noLabel, "no-label", false, "Leave header cells of newly allocated columns empty")
	for _, c := range []*cobra.Command{mergeCmd, extractCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
		c.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	}
}

func mergeOptions() leasemerge.Options {
	opts := cfg.MergeOptions(logger)
	if sheetName != "" {
		opts.SheetName = sheetName
	}
	if noLabel {
		labels := false
		opts.LabelNewColumns = &labels
	}
	return opts
}

func firstPageText(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", leasemerge.ErrFileNotFound, path)
	}
	pages, err := document.LoadPages(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return document.FirstPage(pages)
}

func runMerge(cmd *cobra.Command, args []string) error {
	docPath, workbookPath := args[0], args[1]

	text, err := firstPageText(docPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(workbookPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", leasemerge.ErrFileNotFound, workbookPath)
	}
	wf, err := os.Open(workbookPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wf.Close()

	source := filepath.Base(workbookPath)
	p := leasemerge.NewPipeline(auditLog, mergeOptions())
	res, err := p.Run(text, wf, source)
	switch {
	case err == nil:
	case leasemerge.IsExtraction(err):
		return fmt.Errorf("could not extract required fields: %w", err)
	case leasemerge.IsMerge(err):
		return fmt.Errorf("could not write/save workbook: %w", err)
	default:
		return err
	}

	dest := outputPath
	if dest == "" {
		dest = filepath.Join(filepath.Dir(workbookPath), "duplicated_"+source)
	}
	if err := os.WriteFile(dest, res.Workbook, 0644); err != nil {
		return fmt.Errorf("could not write/save workbook: %w", err)
	}
	logger.Info("workbook written", zap.String("path", dest), zap.Int("row", res.Row))

	out := cmd.OutOrStdout()
	if jsonOutput {
		payload := map[string]any{
			"summary": output.TableRecords(res.Summary()),
			"row":     res.Row,
			"output":  dest,
		}
		if showHistory {
			payload["history"] = output.TableRecords(auditLog.Table())
		}
		data, err := output.ToJSON(payload, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, output.RenderTable(res.Summary()))
	fmt.Fprintf(out, "row %d written to %s\n", res.Row, dest)
	if showHistory {
		fmt.Fprintln(out, output.RenderTable(auditLog.Table()))
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := firstPageText(args[0])
	if err != nil {
		return err
	}

	rec, err := leasemerge.Extract(text, mergeOptions())
	if err != nil {
		return fmt.Errorf("could not extract required fields: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		data, err := output.ToJSON(rec, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, output.RenderTable(models.RecordTable(rec)))
	return nil
}
