// Command locust-compare compares the latest Locust run against a baseline
// and exits non-zero when a request regressed past the allowed factor.
//
// Usage:
//
//	locust-compare --prefix example --option create_baseline
//	locust-compare --prefix example --option compare_results_distribution --columnname 95% --factor 1.2
//	locust-compare --prefix example --option create_comparison_requests
//
// Exit codes:
//
//	0 - Success
//	1 - Threshold exceeded
//	2 - Inconclusive result (a ratio equals the factor, or a request vanished)
//	3 - Missing or malformed result files, unknown column
//	4 - Usage error, including an unknown option
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	v := viper.New()
	v.SetFs(fs)

	cmd, err := newRootCmd(v, fs, stdout, stderr)
	if err != nil {
		reportError(stderr, err)
		return exitError
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(stderr, err)
	}

	return exitCode(err)
}
