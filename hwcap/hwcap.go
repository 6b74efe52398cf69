// Package hwcap answers whether the processor offers the transactional
// memory instructions bound by package rtm. Run the query once, before any
// of the primitives are reachable; they never check for themselves.
package hwcap

import "runtime"

// Capability reports the TSX mechanisms the processor advertises.
type Capability struct {
	RTM bool // XBEGIN/XEND/XABORT/XTEST
	HLE bool // XACQUIRE/XRELEASE lock elision
}

// Supported reports whether the rtm primitives may be executed at all.
func (c Capability) Supported() bool { return c.RTM }

// Usable additionally requires more than one scheduler proc; with a single
// proc there is no concurrent writer to speculate against.
func (c Capability) Usable() bool {
	return c.RTM && runtime.GOMAXPROCS(0) > 1
}
