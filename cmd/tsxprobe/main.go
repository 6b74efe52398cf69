// tsxprobe qualifies a host for hardware transactional memory: it reports
// what CPUID advertises, attempts a handful of real regions, and verifies
// an explicit abort code survives the round trip through the status word.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/htm-go/tsx/hwcap"
)

const (
	exitOK           = 0
	exitUnsupported  = 1
	exitInconclusive = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "TOML config file")
		attempts   = flag.Int("attempts", 0, "transaction attempts, overrides config when positive")
		jsonOut    = flag.Bool("json", false, "emit the report as JSON on stdout")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsxprobe: %v\n", err)
			return exitUnsupported
		}
		cfg = loaded
	}
	if *attempts > 0 {
		cfg.Attempts = *attempts
	}
	if *jsonOut {
		cfg.Output = "json"
	}
	if *verbose {
		cfg.Verbose = true
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	runID := uuid.NewString()
	caps := hwcap.Detect()
	log.Info().
		Str("run_id", runID).
		Bool("rtm", caps.RTM).
		Bool("hle", caps.HLE).
		Int("attempts", cfg.Attempts).
		Msg("probing transactional memory")

	if !caps.Supported() {
		log.Warn().Msg("processor does not advertise RTM; nothing to probe")
		return exitUnsupported
	}
	if !caps.Usable() {
		log.Debug().Msg("GOMAXPROCS is 1; regions will open but elision buys nothing")
	}

	rep := runProbe(hardware, cfg.Attempts)
	rep.RunID = runID
	rep.RTM = caps.RTM
	rep.HLE = caps.HLE

	ok, conclusive := abortRoundTrip(hardware, cfg.AbortCode, cfg.Attempts)
	rep.RoundTrip = ok
	if conclusive && !ok {
		log.Error().Uint8("code", cfg.AbortCode).Msg("explicit abort code did not round-trip")
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "tsxprobe: %v\n", err)
			return exitInconclusive
		}
	} else {
		log.Info().
			Int("committed", rep.Committed).
			Int("explicit", rep.Explicit).
			Int("retry", rep.Retry).
			Int("conflict", rep.Conflict).
			Int("capacity", rep.Capacity).
			Int("debug", rep.Debug).
			Int("nested", rep.Nested).
			Int("unflagged", rep.Unflagged).
			Bool("xtest_in_region", rep.TestedIn).
			Uint64("avg_cycles", rep.AvgCycles).
			Bool("abort_code_round_trip", rep.RoundTrip).
			Msg("probe complete")
	}

	if rep.Committed == 0 {
		log.Warn().Msg("no attempt committed; inconclusive, not necessarily broken")
		return exitInconclusive
	}
	return exitOK
}
