//go:build !amd64 || noasm

package rtm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackNeverStarts(t *testing.T) {
	status := TxBegin()
	assert.False(t, status.Started())
	assert.False(t, status.CanRetry(), "fallback must not invite retries")
	assert.Equal(t, uint8(0), TxTest())
}

func TestFallbackAbortIsNoOp(t *testing.T) {
	x := 42
	TxAbort(7)
	assert.Equal(t, 42, x)
	assert.Equal(t, uint8(0), TxTest())
}
