//go:build amd64 && !noasm

package rtm

// TxBegin is the start of transaction. It returns TxBeginStarted if the
// region opened; after any abort the call appears to return again, now with
// the abort flags. Never blocks.
//
//go:noescape
func TxBegin() (status Status)

// TxEnd marks the end of transaction, committing its memory effects
// atomically. Calling it with no region open raises #GP; only call it on
// the TxBeginStarted path.
//
//go:noescape
func TxEnd()

// TxAbort rolls back the open region and resumes at TxBegin's return with
// TxAbortExplicit set and code in bits 24-31. With no region open it does
// nothing; XABORT is architecturally a no-op there.
//
//go:noescape
func TxAbort(code uint8)

// TxTest returns 1 while executing inside an RTM or HLE region, 0
// otherwise.
//
//go:noescape
func TxTest() uint8
