// Package rtm binds Intel's Restricted Transactional Memory instructions:
// XBEGIN, XEND, XABORT and XTEST.
//
// TxBegin opens a speculative region and returns TxBeginStarted. When the
// region later aborts, for any reason, the processor discards every memory
// write made inside it and control reappears at TxBegin's return, this time
// carrying TxAbort* flags. Callers therefore branch on one ordinary return
// value rather than on the hardware's jump semantics.
//
// The primitives never verify processor support; run the hwcap query once
// before any of them are reachable. Executing them on a processor without
// TSX raises #UD. The hardware also gives no forward-progress guarantee, so
// every transactional path needs a non-transactional fallback.
package rtm
