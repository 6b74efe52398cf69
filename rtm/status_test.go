package rtm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetImmRoundTrip(t *testing.T) {
	for code := 0; code < 256; code++ {
		status := TxAbortExplicit | Status(code)<<24
		require.Equal(t, uint8(code), GetImm(status))
		require.Equal(t, uint8(code), status.AbortCode())
		require.True(t, status.Explicit())
	}
}

func TestGetImmIgnoresLowBits(t *testing.T) {
	status := TxAbortExplicit | TxAbortRetry | TxAbortNested | Status(0xaa)<<24
	assert.Equal(t, uint8(0xaa), GetImm(status))
}

func TestStartedSentinelCarriesNoAbortFlags(t *testing.T) {
	s := TxBeginStarted
	assert.True(t, s.Started())
	assert.False(t, s.Aborted())
	assert.False(t, s.Explicit())
	assert.False(t, s.CanRetry())
	assert.False(t, s.Conflict())
	assert.False(t, s.Capacity())
	assert.False(t, s.Debug())
	assert.False(t, s.Nested())
}

func TestFlagAccessors(t *testing.T) {
	cases := []struct {
		name string
		flag Status
		get  func(Status) bool
	}{
		{"explicit", TxAbortExplicit, Status.Explicit},
		{"retry", TxAbortRetry, Status.CanRetry},
		{"conflict", TxAbortConflict, Status.Conflict},
		{"capacity", TxAbortCapacity, Status.Capacity},
		{"debug", TxAbortDebug, Status.Debug},
		{"nested", TxAbortNested, Status.Nested},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.get(tc.flag))
			assert.False(t, tc.get(0))
			assert.True(t, tc.flag.Aborted())
			// flags are independent bits
			for _, other := range cases {
				if other.flag != tc.flag {
					assert.False(t, tc.get(other.flag))
				}
			}
		})
	}
}

func TestFlagBitPositions(t *testing.T) {
	// fixed by the instruction set; external tooling that inspects raw
	// status words depends on these exact values
	assert.Equal(t, Status(0xffffffff), TxBeginStarted)
	assert.Equal(t, Status(1<<0), TxAbortExplicit)
	assert.Equal(t, Status(1<<1), TxAbortRetry)
	assert.Equal(t, Status(1<<2), TxAbortConflict)
	assert.Equal(t, Status(1<<3), TxAbortCapacity)
	assert.Equal(t, Status(1<<4), TxAbortDebug)
	assert.Equal(t, Status(1<<5), TxAbortNested)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "started", TxBeginStarted.String())
	assert.Equal(t, "aborted", Status(0).String())
	assert.Equal(t, "aborted:conflict+capacity", (TxAbortConflict | TxAbortCapacity).String())

	s := TxAbortExplicit | TxAbortRetry | Status(5)<<24
	assert.Equal(t, "aborted:explicit(5)+retry", s.String())
}
