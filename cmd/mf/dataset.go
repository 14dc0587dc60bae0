package main

import (
	"fmt"
	"io"

	"github.com/mnist-fpga/mf/internal/config"
	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/spf13/cobra"
)

type datasetReport struct {
	Samples   int   `json:"samples" yaml:"samples"`
	Histogram []int `json:"label_histogram" yaml:"label_histogram"`
}

func (r *datasetReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "samples: %d\n", r.Samples); err != nil {
		return err
	}
	for digit, n := range r.Histogram {
		if _, err := fmt.Fprintf(w, "  %d: %d\n", digit, n); err != nil {
			return err
		}
	}
	return nil
}

func newDatasetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Decode the IDX image and label files and print a label histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), config.KeyImages, config.KeyLabels)
			if err != nil {
				return err
			}

			ds, err := mnist.LoadFiles(cfg.ImagePath, cfg.LabelPath)
			if err != nil {
				return err
			}
			a.log.Info("dataset loaded", "samples", ds.Len())

			hist := ds.LabelHistogram()
			return a.write(&datasetReport{Samples: ds.Len(), Histogram: hist[:]})
		},
	}
}
