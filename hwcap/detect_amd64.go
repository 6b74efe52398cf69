//go:build amd64 && !noasm

package hwcap

import "github.com/intel-go/cpuid"

// Detect reads the CPUID extended-feature leaf.
func Detect() Capability {
	return Capability{
		RTM: cpuid.HasExtendedFeature(cpuid.RTM),
		HLE: cpuid.HasExtendedFeature(cpuid.HLE),
	}
}
