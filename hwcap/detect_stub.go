//go:build !amd64 || noasm

package hwcap

// Detect reports no support; TSX is an x86 extension.
func Detect() Capability { return Capability{} }
