// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"goenigma/config"
	"goenigma/internal/core"
	"goenigma/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X goenigma/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate goenigma mode.
func Execute(ctx context.Context, args []string) error {
	cfg, fs, act, err := parseConfig(args)
	if err != nil {
		return err
	}

	switch act {
	case actionHelp:
		printUsage(fs)
		return nil
	case actionVersion:
		fmt.Printf("goenigma %s\n", version)
		return nil
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

type action int

const (
	actionRun action = iota
	actionHelp
	actionVersion
)

// parseConfig layers defaults, environment, preset, key sheet and flags
// into one Config.  Flags given on the command line always win.
func parseConfig(args []string) (*config.Config, *flag.FlagSet, action, error) {
	cfg := config.Defaults()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("goenigma", flag.ContinueOnError)

	// ── machine ──────────────────────────────────────────────────
	fs.StringVarP(&cfg.Rotors, "rotors", "R", cfg.Rotors, "Rotor types, left to right (I-V)")
	fs.StringVarP(&cfg.Positions, "positions", "P", cfg.Positions, "Start positions, left to right")
	fs.StringVarP(&cfg.Rings, "rings", "r", cfg.Rings, "Ring settings, left to right")
	fs.StringVarP(&cfg.Reflector, "reflector", "u", cfg.Reflector, "Reflector (A, B or C)")
	fs.StringVarP(&cfg.Plugboard, "plugboard", "p", cfg.Plugboard, `Plugboard pairs, e.g. "AB CD EF"`)

	// ── key sources ──────────────────────────────────────────────
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset,
		"Machine preset ("+strings.Join(config.PresetNames(), ", ")+")")
	fs.StringVarP(&cfg.KeySheet, "keysheet", "k", cfg.KeySheet, "YAML key sheet file")
	fs.IntVar(&cfg.Day, "day", cfg.Day, "Key sheet day to use")

	// ── operation ────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Decrypt, "decrypt", "d", false, "Label the run as decryption (same operation)")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Keyboard mode: cipher each key as typed")
	fs.IntVarP(&cfg.GroupSize, "group", "g", cfg.GroupSize, "Output block size (0 = no grouping)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print the machine setup and exit")

	// ── key generation ───────────────────────────────────────────
	fs.BoolVar(&cfg.Keygen, "keygen", false, "Write a random key sheet to stdout")
	fs.IntVar(&cfg.Days, "days", cfg.Days, "Entries in the generated key sheet")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed for --keygen (default: random)")
	fs.IntVar(&cfg.Pairs, "pairs", 0, "Plugboard pairs per generated key (default: 5-10)")
	fs.StringVar(&cfg.SheetName, "sheet-name", "", "Name of the generated key sheet")

	// ── output ───────────────────────────────────────────────────
	envVerbose := cfg.Verbose
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "Print session statistics as JSON to stderr")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return nil, fs, actionRun, err
	}
	if showHelp {
		return cfg, fs, actionHelp, nil
	}
	if showVersion {
		return cfg, fs, actionVersion, nil
	}

	// CountVarP resets the level to zero; keep the environment's level
	// unless -v was given.
	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}

	explicit := *cfg
	if err := applyKeySources(cfg); err != nil {
		return nil, fs, actionRun, err
	}
	restoreChanged(fs, cfg, &explicit)

	cfg.SeedSet = fs.Changed("seed")
	cfg.Text = strings.Join(fs.Args(), " ")
	return cfg, fs, actionRun, nil
}

// ── helpers ──────────────────────────────────────────────────────────

// applyKeySources overlays the preset and then the key sheet entry.
func applyKeySources(cfg *config.Config) error {
	if cfg.Preset != "" {
		p, err := config.LookupPreset(cfg.Preset)
		if err != nil {
			return fmt.Errorf("preset: %w", err)
		}
		p.Apply(cfg)
	}

	if cfg.KeySheet != "" {
		if cfg.Day < 1 {
			// Validate reports the missing day with a hint.
			return nil
		}
		ks, err := config.LoadKeySheet(cfg.KeySheet)
		if err != nil {
			return fmt.Errorf("keysheet: %w", err)
		}
		entry, err := ks.Entry(cfg.Day)
		if err != nil {
			return fmt.Errorf("keysheet: %w", err)
		}
		entry.Apply(cfg)
	}
	return nil
}

// machineFlags copy a single machine field between configs.
var machineFlags = map[string]func(dst, src *config.Config){ //nolint:gochecknoglobals
	"rotors":    func(dst, src *config.Config) { dst.Rotors = src.Rotors },
	"positions": func(dst, src *config.Config) { dst.Positions = src.Positions },
	"rings":     func(dst, src *config.Config) { dst.Rings = src.Rings },
	"reflector": func(dst, src *config.Config) { dst.Reflector = src.Reflector },
	"plugboard": func(dst, src *config.Config) { dst.Plugboard = src.Plugboard },
}

// restoreChanged puts back every machine flag the user set explicitly.
func restoreChanged(fs *flag.FlagSet, cfg, explicit *config.Config) {
	for name, copyField := range machineFlags {
		if fs.Changed(name) {
			copyField(cfg, explicit)
		}
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `goenigma – rotor cipher machine v%s

A three-rotor Enigma I simulator with plugboard, ring settings and
the double-stepping middle rotor.

Usage:
  goenigma [options] <text...>                Encrypt or decrypt text
  goenigma [options] < message.txt            Read the message from stdin
  goenigma -i [options]                       Keyboard mode
  goenigma --keygen [--days N] [--seed S]     Generate a key sheet

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  ENIGMA_ROTORS, ENIGMA_POSITIONS, ENIGMA_RINGS, ENIGMA_REFLECTOR,
  ENIGMA_PLUGBOARD, ENIGMA_PRESET, ENIGMA_KEYSHEET, ENIGMA_DAY,
  ENIGMA_GROUP, ENIGMA_VERBOSE, ENIGMA_STATS

Examples:
  goenigma HELLO WORLD                                  Default machine
  goenigma -R II,IV,V -r BUL -P ADU -p "AV BS" TEXT     Full setup
  goenigma --preset kriegsmarine -P XYZ -d QWERT        Decrypt with a preset
  goenigma -k sheet.yaml --day 12 < msg.txt             Key from a key sheet
  goenigma --keygen --days 31 > sheet.yaml              Monthly key sheet
  goenigma --dry-run -k sheet.yaml --day 3              Show setup and fingerprint
`)
}
