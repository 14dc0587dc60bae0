package main

import (
	"fmt"
	"io"

	"github.com/mnist-fpga/mf/internal/config"
	"github.com/mnist-fpga/mf/internal/weights"
	"github.com/spf13/cobra"
)

type layerInfo struct {
	Name   string `json:"name" yaml:"name"`
	Input  int    `json:"input" yaml:"input"`
	Output int    `json:"output" yaml:"output"`
}

type weightsReport struct {
	Layers  []layerInfo `json:"layers" yaml:"layers"`
	Skipped []string    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func (r *weightsReport) writeText(w io.Writer) error {
	for _, l := range r.Layers {
		if _, err := fmt.Fprintf(w, "%s %d→%d\n", l.Name, l.Input, l.Output); err != nil {
			return err
		}
	}
	if len(r.Skipped) > 0 {
		if _, err := fmt.Fprintf(w, "skipped: %v\n", r.Skipped); err != nil {
			return err
		}
	}
	return nil
}

func newWeightsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "List the dense layers stored in the weight file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), config.KeyWeights)
			if err != nil {
				return err
			}

			rep := &weightsReport{}
			coll, err := weights.Load(cfg.WeightPath, a.open, weights.WithSkipHandler(func(name string, reason error) {
				a.log.Debug("skipped container entry", "name", name, "reason", reason)
				rep.Skipped = append(rep.Skipped, name)
			}))
			if err != nil {
				return err
			}

			for _, name := range coll.Names() {
				l := coll[name]
				rep.Layers = append(rep.Layers, layerInfo{Name: name, Input: l.InputSize(), Output: l.OutputSize()})
			}
			return a.write(rep)
		},
	}
}
