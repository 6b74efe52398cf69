//go:build !amd64 || noasm

package rtm

// Without TSX, TxBegin reports an abort carrying no flags. TxAbortRetry is
// left clear so callers take their non-transactional fallback instead of
// spinning on a region that can never open.
func TxBegin() (status Status) { return 0 }

func TxEnd() {}

func TxAbort(code uint8) {}

func TxTest() uint8 { return 0 }
