package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mnist-fpga/mf/internal/config"
	"github.com/mnist-fpga/mf/internal/hdf5"
	"github.com/mnist-fpga/mf/internal/weights"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	open   weights.OpenFunc

	envFile string
	verbose bool
	output  string

	log *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		open:   hdf5.Open,
		log:    slog.New(slog.DiscardHandler),
	}
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mf",
		Short:         "Evaluate a dense MNIST classifier stored as Keras HDF5 weights",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := checkOutput(a.output); err != nil {
				return err
			}
			a.setupLogger()
			return config.LoadEnvFiles(a.envFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.output, "output", "o", outputText, "output format: text, json or yaml")
	pf.StringVar(&a.envFile, "env-file", ".env", "optional KEY=value file loaded into the environment")
	config.RegisterFlags(pf)

	cmd.AddCommand(
		newEvalCommand(a),
		newDatasetCommand(a),
		newWeightsCommand(a),
		newVersionCommand(a),
	)
	return cmd
}

func (a *app) setupLogger() {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// printf writes a line of text output.
func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
