// Package device describes where inference runs: the accelerator named in
// the configuration and the host CPU that actually executes the forward pass.
package device

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Target names the accelerator a run was configured for. The forward pass
// always executes on the host; the target is carried for reporting.
type Target struct {
	Vendor string
	Device string
}

// String formats the target as "vendor/device".
func (t Target) String() string {
	return t.Vendor + "/" + t.Device
}

// Host describes the CPU the process runs on.
type Host struct {
	Vendor        string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	Features      []string // Vector extensions relevant to float32 matvec
}

var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE4,
	cpuid.AVX,
	cpuid.AVX2,
	cpuid.FMA3,
	cpuid.AVX512F,
	cpuid.ASIMD,
	cpuid.SVE,
}

// Detect reads the host CPU description.
func Detect() Host {
	return hostFrom(cpuid.CPU)
}

func hostFrom(cpu cpuid.CPUInfo) Host {
	h := Host{
		Vendor:        cpu.VendorID.String(),
		Brand:         strings.TrimSpace(cpu.BrandName),
		PhysicalCores: cpu.PhysicalCores,
		LogicalCores:  cpu.LogicalCores,
	}
	for _, f := range simdFeatures {
		if cpu.Supports(f) {
			h.Features = append(h.Features, f.String())
		}
	}
	return h
}

// Workers returns a sensible evaluation fan-out for the host.
func (h Host) Workers() int {
	if h.LogicalCores < 1 {
		return 1
	}
	return h.LogicalCores
}

// String returns a one-line summary of the host.
func (h Host) String() string {
	brand := h.Brand
	if brand == "" {
		brand = "unknown CPU"
	}
	s := fmt.Sprintf("%s (%s, %d cores / %d threads)", brand, h.Vendor, h.PhysicalCores, h.LogicalCores)
	if len(h.Features) > 0 {
		s += " [" + strings.Join(h.Features, " ") + "]"
	}
	return s
}
