package core

import (
	"math/rand/v2"
	"os"

	"goenigma/config"
	"goenigma/internal/keygen"
	"goenigma/internal/machine"
	"goenigma/internal/metrics"
	"goenigma/internal/session"
	"goenigma/util"
)

// Build constructs the appropriate Mode from the given configuration.
// cfg should already have passed Validate; Build still reports bad
// machine settings rather than panicking.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	if cfg.Keygen {
		return buildKeygen(cfg, logger), nil
	}

	sess, collector, err := buildSession(cfg, logger)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.DryRun:
		return &DryRunMode{Session: sess}, nil
	case cfg.Interactive:
		return &KeyboardMode{
			Session:   sess,
			GroupSize: cfg.GroupSize,
			Fd:        int(os.Stdin.Fd()),
			Metrics:   collector,
			Stats:     cfg.Stats,
			Logger:    logger,
		}, nil
	default:
		return &CipherMode{
			Session:   sess,
			Text:      cfg.Text,
			Decrypt:   cfg.Decrypt,
			GroupSize: cfg.GroupSize,
			Metrics:   collector,
			Stats:     cfg.Stats,
			Logger:    logger,
		}, nil
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildSession(cfg *config.Config, logger *util.Logger) (*session.Session, *metrics.Collector, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, nil, err
	}
	m, err := machine.Build(settings, machine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	collector := metrics.New()
	return session.New(m, logger, collector), collector, nil
}

func buildKeygen(cfg *config.Config, logger *util.Logger) *KeygenMode {
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = rand.Uint64()
	}

	var opts keygen.Options
	if cfg.Pairs > 0 {
		opts.MinPairs, opts.MaxPairs = cfg.Pairs, cfg.Pairs
	}

	return &KeygenMode{
		Name:    cfg.SheetName,
		Days:    cfg.Days,
		Seed:    seed,
		Options: opts,
		Logger:  logger,
	}
}
