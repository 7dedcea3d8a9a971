package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dutop/internal/dutop"
)

func logic(options dutop.Options) error {
	enableProgress := options.OutputFormat == "text" &&
		!options.DumpItems &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(items, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(items, bytes int64) {
			msg := fmt.Sprintf("Scanning… %s items, %s",
				humanize.Comma(items), HumanSize(bytes))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	scan, err := dutop.Run(ctx, options, os.Stderr, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.DumpItems {
		return PrintItems(scan, os.Stdout)
	}

	report, err := dutop.BuildReport(scan, options.TopN)
	if err != nil {
		return err
	}

	switch options.OutputFormat {
	case "json":
		return PrintJSON(report, os.Stdout)
	case "text":
		return PrintText(report, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.OutputFormat)
	}
}
