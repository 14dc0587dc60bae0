// Package config resolves run settings from CLI flags, the environment and an
// optional .env file. Flags take precedence over the environment, and the
// environment takes precedence over .env entries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultLayers is the layer chain of the reference three-layer network.
const DefaultLayers = "dense,dense_1,dense_2"

// Setting keys, as used by viper.
const (
	KeyVendor  = "vendor"
	KeyDevice  = "device"
	KeyImages  = "images"
	KeyLabels  = "labels"
	KeyWeights = "weights"
	KeyLayers  = "layers"
	KeyWorkers = "workers"
)

type binding struct {
	key      string
	env      string
	usage    string
	required bool
}

var bindings = []binding{
	{KeyVendor, "VENDOR_NAME", "accelerator vendor name", true},
	{KeyDevice, "DEVICE_NAME", "accelerator device name", true},
	{KeyImages, "MNIST_IMAGE_PATH", "path to the IDX image file", true},
	{KeyLabels, "MNIST_LABEL_PATH", "path to the IDX label file", true},
	{KeyWeights, "WEIGHT_PATH", "path to the HDF5 weight file", true},
	{KeyLayers, "LAYER_NAMES", "comma separated layer chain", false},
	{KeyWorkers, "EVAL_WORKERS", "number of evaluation goroutines, 0 sizes it to the host", false},
}

// Config holds the resolved settings for one run.
type Config struct {
	Vendor     string
	Device     string
	ImagePath  string
	LabelPath  string
	WeightPath string
	Layers     []string
	Workers    int
}

// MissingError reports a required setting that was given neither as a flag
// nor in the environment.
type MissingError struct {
	Key string // Flag name
	Env string // Environment variable
}

// Error implements the error interface.
func (e *MissingError) Error() string {
	return fmt.Sprintf("configuration missing: set --%s or %s", e.Key, e.Env)
}

// EnvName returns the environment variable bound to key, or "" if the key
// is unknown.
func EnvName(key string) string {
	for _, b := range bindings {
		if b.key == key {
			return b.env
		}
	}
	return ""
}

// RegisterFlags adds one flag per setting to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	for _, b := range bindings {
		usage := fmt.Sprintf("%s (env %s)", b.usage, b.env)
		switch b.key {
		case KeyLayers:
			flags.String(b.key, DefaultLayers, usage)
		case KeyWorkers:
			flags.Int(b.key, 1, usage)
		default:
			flags.String(b.key, "", usage)
		}
	}
}

// LoadEnvFiles loads KEY=value files into the process environment. Variables
// already set are left alone and missing files are ignored.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves every setting from flags and the environment. Flags that
// were not registered on flags, or flags == nil, fall back to the
// environment only. Only the given required keys are checked; with no keys
// every required setting must be present.
func Load(flags *pflag.FlagSet, required ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLayers, DefaultLayers)
	v.SetDefault(KeyWorkers, 1)

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", b.env, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(b.key); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", b.key, err)
			}
		}
	}

	workers, err := strconv.Atoi(strings.TrimSpace(v.GetString(KeyWorkers)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", EnvName(KeyWorkers), v.GetString(KeyWorkers), err)
	}

	cfg := &Config{
		Vendor:     strings.TrimSpace(v.GetString(KeyVendor)),
		Device:     strings.TrimSpace(v.GetString(KeyDevice)),
		ImagePath:  strings.TrimSpace(v.GetString(KeyImages)),
		LabelPath:  strings.TrimSpace(v.GetString(KeyLabels)),
		WeightPath: strings.TrimSpace(v.GetString(KeyWeights)),
		Layers:     SplitLayers(v.GetString(KeyLayers)),
		Workers:    workers,
	}

	if len(required) == 0 {
		for _, b := range bindings {
			if b.required {
				required = append(required, b.key)
			}
		}
	}
	if err := cfg.Validate(required...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every named setting is non-empty.
func (c *Config) Validate(keys ...string) error {
	for _, key := range keys {
		if c.value(key) == "" {
			return &MissingError{Key: key, Env: EnvName(key)}
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid %s: %d, want 0 or more", EnvName(KeyWorkers), c.Workers)
	}
	return nil
}

func (c *Config) value(key string) string {
	switch key {
	case KeyVendor:
		return c.Vendor
	case KeyDevice:
		return c.Device
	case KeyImages:
		return c.ImagePath
	case KeyLabels:
		return c.LabelPath
	case KeyWeights:
		return c.WeightPath
	case KeyLayers:
		return strings.Join(c.Layers, ",")
	case KeyWorkers:
		return strconv.Itoa(c.Workers)
	}
	return ""
}

// SplitLayers parses a comma separated layer list, dropping blanks.
func SplitLayers(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
