package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// Defaults used by the health probe.
const (
	DefaultProbeAddress        = "http://localhost:8000"
	DefaultProbeRequestTimeout = 5 * time.Second
)

// ProbeConfig holds the settings of the health probe binary.
type ProbeConfig struct {
	// Address is the base URL of the API to probe.
	// Env: PROBE_ADDRESS
	Address string `env:"PROBE_ADDRESS"`

	// RequestTimeout bounds every probe request.
	// Env: PROBE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"PROBE_REQUEST_TIMEOUT"`

	// AnalyzeSpeech makes the probe also call the speech analysis endpoint.
	// Env: PROBE_ANALYZE_SPEECH
	AnalyzeSpeech bool `env:"PROBE_ANALYZE_SPEECH"`
}

// GetProbeConfig builds and validates the probe configuration from defaults,
// environment variables, and flags parsed from args (last source wins for
// non-zero fields).
//
// Flags:
//
//	-a base URL of the API
//	-t request timeout (e.g., "5s")
//	-analyze also call POST /api/analyze-speech
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	cfg := &ProbeConfig{
		Address:        DefaultProbeAddress,
		RequestTimeout: DefaultProbeRequestTimeout,
	}

	envCfg := &ProbeConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg := &ProbeConfig{}
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagsCfg.Address, "a", "", "Base URL of the API")
	fs.DurationVar(&flagsCfg.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.BoolVar(&flagsCfg.AnalyzeSpeech, "analyze", false, "Also call POST /api/analyze-speech")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var mergeErr error
	for _, src := range []*ProbeConfig{envCfg, flagsCfg} {
		mergeErr = errors.Join(mergeErr, mergo.Merge(cfg, src, mergo.WithOverride))
	}
	if mergeErr != nil {
		return nil, fmt.Errorf("error merging configs: %w", mergeErr)
	}

	return cfg, cfg.validate()
}
