package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dutop/internal/dutop"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// HumanSize formats a byte count for display: integer bytes below 1 KB,
// otherwise two decimals in KB, MB or GB. Negative values render as "0 B".
func HumanSize(n int64) string {
	switch {
	case n < 0:
		return "0 B"
	case n < kb:
		return fmt.Sprintf("%d B", n)
	case n < mb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	case n < gb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	}
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *dutop.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintItems outputs the full scanned item collection as a JSON document,
// in the order the walk encountered the entries.
func PrintItems(scan *dutop.Scan, writer io.Writer) error {
	data, err := json.MarshalIndent(scan.InOrder(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding item dump: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintText outputs the report in human-readable form. Each ranked list
// aligns its numeric column to the widest formatted value in that list.
func PrintText(report *dutop.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', tabwriter.AlignRight)

	// A line without tabs terminates a tabwriter column block, so each
	// section is aligned independently.
	fmt.Fprintln(w, "Top files by size:")

	for i, it := range report.TopFilesBySize {
		fmt.Fprintf(w, "%d)\t%s\t  %s\n", i+1, HumanSize(it.Size), it.Path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top directories by size:")

	for i, it := range report.TopDirsBySize {
		fmt.Fprintf(w, "%d)\t%s\t  %s\n", i+1, HumanSize(it.Size), it.Path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top directories by entry count:")

	for i, it := range report.TopDirsByCount {
		fmt.Fprintf(w, "%d)\t%s entries\t  %s\n", i+1, humanize.Comma(int64(it.FileCount)), it.Path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stats:")
	fmt.Fprintf(w, "Total items:\t%s\n", humanize.Comma(int64(report.TotalItems)))
	fmt.Fprintf(w, "Total files:\t%s\n", humanize.Comma(int64(report.TotalFiles)))
	fmt.Fprintf(w, "Total directories:\t%s\n", humanize.Comma(int64(report.TotalDirs)))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n", HumanSize(report.TotalSize), report.TotalSize)

	return w.Flush()
}
