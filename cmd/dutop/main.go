package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/dutop/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var usage cli.UsageError
		if errors.As(err, &usage) {
			os.Exit(cli.ExitCodeUsage)
		}

		os.Exit(1)
	}
}
