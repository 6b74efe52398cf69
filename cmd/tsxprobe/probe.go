package main

import (
	"github.com/htm-go/tsx/internal/tsc"
	"github.com/htm-go/tsx/rtm"
)

// probeFuncs lets tests drive the prober with synthetic status words.
type probeFuncs struct {
	begin func() rtm.Status
	end   func()
	abort func(code uint8)
	test  func() uint8
}

var hardware = probeFuncs{
	begin: rtm.TxBegin,
	end:   rtm.TxEnd,
	abort: rtm.TxAbort,
	test:  rtm.TxTest,
}

// report tallies one probe run. Abort flags are counted independently; a
// single abort can raise several.
type report struct {
	RunID     string `json:"run_id"`
	RTM       bool   `json:"rtm"`
	HLE       bool   `json:"hle"`
	Attempts  int    `json:"attempts"`
	Committed int    `json:"committed"`
	Explicit  int    `json:"explicit"`
	Retry     int    `json:"retry"`
	Conflict  int    `json:"conflict"`
	Capacity  int    `json:"capacity"`
	Debug     int    `json:"debug"`
	Nested    int    `json:"nested"`
	Unflagged int    `json:"unflagged"`
	TestedIn  bool   `json:"xtest_in_region"`
	AvgCycles uint64 `json:"avg_cycles"`
	RoundTrip bool   `json:"abort_code_round_trip"`
}

// runProbe attempts short transactional regions and tallies how each one
// ended. Committed attempts also confirm the test primitive reads 1 inside
// the region.
func runProbe(f probeFuncs, attempts int) report {
	r := report{Attempts: attempts}
	var cycles uint64
	for i := 0; i < attempts; i++ {
		start := tsc.Counter()
		status := f.begin()
		if status.Started() {
			in := f.test()
			f.end()
			cycles += tsc.Counter() - start
			r.Committed++
			if in == 1 {
				r.TestedIn = true
			}
			continue
		}
		if status.Explicit() {
			r.Explicit++
		}
		if status.CanRetry() {
			r.Retry++
		}
		if status.Conflict() {
			r.Conflict++
		}
		if status.Capacity() {
			r.Capacity++
		}
		if status.Debug() {
			r.Debug++
		}
		if status.Nested() {
			r.Nested++
		}
		if status == 0 {
			r.Unflagged++
		}
	}
	if r.Committed > 0 {
		r.AvgCycles = cycles / uint64(r.Committed)
	}
	return r
}

// abortRoundTrip opens a region, aborts it with code, and reports whether
// the code came back through the status word at the begin site. A run where
// no region ever opened is inconclusive, not a failure.
func abortRoundTrip(f probeFuncs, code uint8, attempts int) (ok, conclusive bool) {
	for i := 0; i < attempts; i++ {
		status := f.begin()
		if status.Started() {
			f.abort(code)
			// reached only when the abort was a no-op, meaning no
			// region was actually open; nothing to verify
			return false, false
		}
		if status.Explicit() {
			return status.AbortCode() == code, true
		}
	}
	return false, false
}
