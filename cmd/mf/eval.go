package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mnist-fpga/mf/internal/config"
	"github.com/mnist-fpga/mf/internal/device"
	"github.com/mnist-fpga/mf/internal/eval"
	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/mnist-fpga/mf/internal/nn"
	"github.com/mnist-fpga/mf/internal/source"
	"github.com/mnist-fpga/mf/internal/weights"
	"github.com/spf13/cobra"
)

type evalReport struct {
	RunID    string    `json:"run_id" yaml:"run_id"`
	Target   string    `json:"target" yaml:"target"`
	Layers   []string  `json:"layers" yaml:"layers"`
	Shape    string    `json:"shape" yaml:"shape"`
	Workers  int       `json:"workers" yaml:"workers"`
	Correct  int       `json:"correct" yaml:"correct"`
	Total    int       `json:"total" yaml:"total"`
	Accuracy float64   `json:"accuracy" yaml:"accuracy"`
	PerClass []float64 `json:"per_class_accuracy" yaml:"per_class_accuracy"`

	// SHA256 maps "images", "labels" and "weights" to file checksums.
	SHA256 map[string]string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
}

func (r *evalReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "network %s (%s) on %s\n", r.Shape, strings.Join(r.Layers, ","), r.Target); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "accuracy: %d/%d (%.2f%%)\n", r.Correct, r.Total, r.Accuracy*100); err != nil {
		return err
	}
	for digit, a := range r.PerClass {
		if _, err := fmt.Fprintf(w, "  %d: %6.2f%%\n", digit, a*100); err != nil {
			return err
		}
	}
	for _, name := range []string{"images", "labels", "weights"} {
		if sum, ok := r.SHA256[name]; ok {
			if _, err := fmt.Fprintf(w, "%s sha256: %s\n", name, sum); err != nil {
				return err
			}
		}
	}
	return nil
}

func newEvalCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Classify every test image and report accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return a.runEval(cfg, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "evaluate only the first N samples (0 evaluates all)")
	return cmd
}

func (a *app) runEval(cfg *config.Config, limit int) error {
	runID := uuid.New().String()
	log := a.log.With("run", runID)
	target := device.Target{Vendor: cfg.Vendor, Device: cfg.Device}
	host := device.Detect()
	workers := cfg.Workers
	if workers == 0 {
		workers = host.Workers()
	}

	log.Info("starting evaluation",
		"target", target.String(),
		"host", host.String(),
		"layers", strings.Join(cfg.Layers, ","),
		"workers", workers)

	start := time.Now()
	ds, err := mnist.LoadFiles(cfg.ImagePath, cfg.LabelPath)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", "samples", ds.Len(), "elapsed", time.Since(start))
	if limit > 0 && limit < ds.Len() {
		ds = ds.Head(limit)
		log.Debug("dataset truncated", "samples", ds.Len())
	}

	start = time.Now()
	coll, err := weights.Load(cfg.WeightPath, a.open, weights.WithSkipHandler(func(name string, reason error) {
		log.Debug("skipped container entry", "name", name, "reason", reason)
	}))
	if err != nil {
		return err
	}
	for _, line := range coll.Describe() {
		log.Debug("layer loaded", "layer", line)
	}
	log.Info("weights loaded", "layers", len(coll), "elapsed", time.Since(start))

	chain, err := nn.FromCollection(coll, cfg.Layers...)
	if err != nil {
		return err
	}

	start = time.Now()
	res, err := eval.Evaluate(ds, chain, eval.WithWorkers(workers))
	if err != nil {
		return err
	}
	log.Info("evaluation finished",
		"correct", res.Correct,
		"total", res.Total,
		"accuracy", res.Accuracy,
		"elapsed", time.Since(start))

	perClass := res.PerClassAccuracy()
	return a.write(&evalReport{
		RunID:    runID,
		Target:   target.String(),
		Layers:   cfg.Layers,
		Shape:    formatSizes(chain.Sizes()),
		Workers:  workers,
		Correct:  res.Correct,
		Total:    res.Total,
		Accuracy: res.Accuracy,
		PerClass: perClass[:],
		SHA256: checksums(log, map[string]string{
			"images":  cfg.ImagePath,
			"labels":  cfg.LabelPath,
			"weights": cfg.WeightPath,
		}),
	})
}

// checksums hashes the named input files. Inputs that cannot be hashed are
// left out.
func checksums(log *slog.Logger, paths map[string]string) map[string]string {
	sums := make(map[string]string, len(paths))
	for name, path := range paths {
		sum, err := source.Checksum(path)
		if err != nil {
			log.Debug("checksum unavailable", "input", name, "err", err)
			continue
		}
		sums[name] = sum
	}
	return sums
}

// formatSizes renders stage sizes as "784→128→64→10".
func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, "→")
}
