package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/locust-compare/config"
	"github.com/angeloszaimis/locust-compare/internal/compare"
	"github.com/angeloszaimis/locust-compare/internal/report"
	"github.com/angeloszaimis/locust-compare/pkg/logger"
)

func newRootCmd(v *viper.Viper, fs afero.Fs, stdout, stderr io.Writer) (*cobra.Command, error) {
	var configFile string

	cmd := &cobra.Command{
		Use:   "locust-compare",
		Short: "Compare the previous Locust run with the current one",
		Long: `Compares the csv results of the latest Locust run with a baseline run and
fails when a request got slower than the allowed factor.

Options: ` + strings.Join(compare.OperationNames(), ", "),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			log := logger.New(stderr, cfg.Logging.Level, false, cfg.Logging.Environment)

			op, err := compare.ParseOperation(cfg.Compare.Option)
			if err != nil {
				fmt.Fprintf(stdout, "Invalid Option: %s\nValid options: %s\n",
					cfg.Compare.Option, strings.Join(compare.OperationNames(), ", "))
				return err
			}

			comparer := compare.NewComparer(fs, compare.NewPaths(cfg.Compare.Dir, cfg.Compare.Prefix), log)

			rep, err := comparer.Run(cmd.Context(), compare.Request{
				Operation: op,
				Column:    cfg.Compare.Column,
				Factor:    cfg.Compare.Factor,
			})
			if err != nil {
				log.Error("Comparison failed",
					slog.String("option", string(op)),
					slog.Any("err", err))
				return err
			}

			return present(stdout, cfg.Output.Format, rep)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (default: locust-compare.yaml in ./config or .)")
	flags.StringP("prefix", "p", "", "Prefix for the Locust CSV files")
	flags.StringP("option", "o", "", "Option to run: "+strings.Join(compare.OperationNames(), ", "))
	flags.StringP("columnname", "c", "", "Which column name to compare")
	flags.Float64P("factor", "f", 0, "The allowed factor of difference")
	flags.StringP("dir", "d", "", "Directory holding the CSV files")
	flags.String("output", config.FormatText, "Report format: text or json")
	flags.String("log-level", config.LogLevelInfo, "Log level: debug, info, warn, error")
	flags.String("env", config.EnvDev, "Environment: dev, staging, prod")

	bindings := map[string]string{
		"compare.prefix":      "prefix",
		"compare.option":      "option",
		"compare.columnname":  "columnname",
		"compare.factor":      "factor",
		"compare.dir":         "dir",
		"output.format":       "output",
		"logging.level":       "log-level",
		"logging.environment": "env",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %q to %q: %w", name, key, err)
		}
	}

	return cmd, nil
}

// present writes the outcome of rep and returns the verdict as an error
// when it did not pass, so the exit status reflects it.
func present(w io.Writer, format string, rep compare.Report) error {
	switch {
	case rep.Verdict != nil:
		var err error
		if format == config.FormatJSON {
			err = report.JSON(w, *rep.Verdict)
		} else {
			err = report.Text(w, *rep.Verdict)
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return rep.Verdict.Err()

	case rep.Written != "":
		_, err := fmt.Fprintf(w, "Created comparison: %s\n", rep.Written)
		return err

	default:
		_, err := fmt.Fprintf(w, "Baseline %s\n", rep.Baseline)
		return err
	}
}
