package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dutop/internal/dutop"
	"github.com/idelchi/dutop/internal/integration"
)

// AllowedOutputs lists the accepted --output-format values.
//
//nolint:gochecknoglobals // Config constant
var AllowedOutputs = []string{"text", "json"}

// ExitCodeUsage is the exit code for configuration errors.
const ExitCodeUsage = 2

// UsageError marks a configuration problem that should exit with
// ExitCodeUsage instead of a plain failure.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string { return e.Err.Error() }

func (e UsageError) Unwrap() error { return e.Err }

// New builds the root command.
func New(version string) *cobra.Command {
	var (
		options    dutop.Options
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "dutop [flags] [path]",
		Short: "Rank files and directories by disk usage",
		Long: heredoc.Doc(`
			dutop walks a directory tree and reports the entries that own the
			most disk space: the largest files, the largest directories, and
			the directories containing the most entries.

			The positional argument selects the directory to scan and defaults
			to the current directory. Entries that cannot be stat'ed are
			reported on stderr and their subtree is skipped; the scan itself
			keeps going.

			Use --dump-items to print every scanned entry as a JSON document
			instead of the ranked report.

			The '-i' flag prints a zsh integration snippet that pipes the
			report through 'fzf'.
		`),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				//nolint:forbidigo // Integration script output to console
				fmt.Println(rendered)

				return nil
			}

			if !slices.Contains(AllowedOutputs, options.OutputFormat) {
				return UsageError{fmt.Errorf(
					"invalid output format %q: must be one of %v", options.OutputFormat, AllowedOutputs,
				)}
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			if info, err := os.Stat(options.Path); err != nil {
				return UsageError{fmt.Errorf("accessing path %q: %w", options.Path, err)}
			} else if !info.IsDir() {
				return UsageError{fmt.Errorf("path %q is not a directory", options.Path)}
			}

			// Parse minSize string to bytes
			size, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return UsageError{fmt.Errorf("invalid min-size: %w", err)}
			}

			options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe

			return logic(options)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&options.TopN, "top", "t", dutop.DefaultTopN, "Number of entries per ranked list")
	flags.StringVarP(&options.OutputFormat, "output-format", "o", "text", "Output format: text or json")
	flags.BoolVar(&options.DumpItems, "dump-items", false, "Print every scanned item as JSON instead of the report")
	flags.StringVar(&minSizeStr, "min-size", "0B", "Minimum file size to record (e.g., 1KB)")
	flags.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")
	flags.SortFlags = false

	return cmd
}
