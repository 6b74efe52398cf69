package rtm

import (
	"fmt"
	"strings"
)

// Status is the outcome word XBEGIN leaves in EAX: the TxBeginStarted
// sentinel while the region is live, otherwise a mask of TxAbort* flags.
// An abort word with no flags set is possible; it means the hardware could
// not classify the abort and retrying is pointless.
type Status uint32

// refer to Intel manual, Vol. 2C, XBEGIN
const (
	TxBeginStarted  Status = ^Status(0)
	TxAbortExplicit Status = 1 << 0
	TxAbortRetry    Status = 1 << 1
	TxAbortConflict Status = 1 << 2
	TxAbortCapacity Status = 1 << 3
	TxAbortDebug    Status = 1 << 4
	TxAbortNested   Status = 1 << 5
)

// GetImm returns the customized status code from the higher 8 bits. It is
// total over any word but only meaningful when TxAbortExplicit is set.
func GetImm(status Status) uint8 {
	return uint8((status >> 24) & 0xff)
}

// Started reports whether the region opened.
func (s Status) Started() bool { return s == TxBeginStarted }

// Aborted reports whether the word carries an abort outcome.
func (s Status) Aborted() bool { return s != TxBeginStarted }

// The flag accessors are false on the started sentinel even though it has
// every bit set; the sentinel is not a flag combination.

// Explicit reports an abort raised by TxAbort. The diagnostic code the
// caller passed is recovered with AbortCode.
func (s Status) Explicit() bool { return s.Aborted() && s&TxAbortExplicit != 0 }

// CanRetry reports the hardware's hint that the region may succeed if
// retried.
func (s Status) CanRetry() bool { return s.Aborted() && s&TxAbortRetry != 0 }

// Conflict reports an abort caused by a memory conflict with another
// execution context.
func (s Status) Conflict() bool { return s.Aborted() && s&TxAbortConflict != 0 }

// Capacity reports an abort caused by the region exceeding the hardware's
// buffering limits.
func (s Status) Capacity() bool { return s.Aborted() && s&TxAbortCapacity != 0 }

// Debug reports an abort caused by a debug trap.
func (s Status) Debug() bool { return s.Aborted() && s&TxAbortDebug != 0 }

// Nested reports an abort raised inside a nested region.
func (s Status) Nested() bool { return s.Aborted() && s&TxAbortNested != 0 }

// AbortCode returns the 8-bit diagnostic code from bits 24-31. Check
// Explicit first; the bits are noise otherwise.
func (s Status) AbortCode() uint8 { return GetImm(s) }

func (s Status) String() string {
	if s.Started() {
		return "started"
	}
	names := make([]string, 0, 6)
	if s.Explicit() {
		names = append(names, fmt.Sprintf("explicit(%d)", GetImm(s)))
	}
	if s.CanRetry() {
		names = append(names, "retry")
	}
	if s.Conflict() {
		names = append(names, "conflict")
	}
	if s.Capacity() {
		names = append(names, "capacity")
	}
	if s.Debug() {
		names = append(names, "debug")
	}
	if s.Nested() {
		names = append(names, "nested")
	}
	if len(names) == 0 {
		return "aborted"
	}
	return "aborted:" + strings.Join(names, "+")
}
