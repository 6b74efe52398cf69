//go:build amd64 && !noasm

package tsc

// Counter returns the 64-bit timestamp counter.
//
//go:noescape
func Counter() uint64
