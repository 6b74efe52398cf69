package hwcap

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIsStable(t *testing.T) {
	assert.Equal(t, Detect(), Detect())
}

func TestSupportedTracksRTM(t *testing.T) {
	assert.False(t, Capability{}.Supported())
	assert.True(t, Capability{RTM: true}.Supported())
	// HLE alone does not make the rtm primitives executable
	assert.False(t, Capability{HLE: true}.Supported())
}

func TestUsableNeedsMultipleProcs(t *testing.T) {
	prev := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(prev)

	assert.False(t, Capability{RTM: true}.Usable())

	runtime.GOMAXPROCS(2)
	assert.True(t, Capability{RTM: true}.Usable())
	assert.False(t, Capability{}.Usable())
}
