package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Key sheet entry  (--keysheet/--day)
//   3. Preset  (--preset)
//   4. Environment variables  (this file)
//   5. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the ENIGMA_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	// Machine
	if v := os.Getenv("ENIGMA_ROTORS"); v != "" {
		cfg.Rotors = v
	}
	if v := os.Getenv("ENIGMA_POSITIONS"); v != "" {
		cfg.Positions = v
	}
	if v := os.Getenv("ENIGMA_RINGS"); v != "" {
		cfg.Rings = v
	}
	if v := os.Getenv("ENIGMA_REFLECTOR"); v != "" {
		cfg.Reflector = v
	}
	if v := os.Getenv("ENIGMA_PLUGBOARD"); v != "" {
		cfg.Plugboard = v
	}

	// Key sources
	if v := os.Getenv("ENIGMA_PRESET"); v != "" {
		cfg.Preset = v
	}
	if v := os.Getenv("ENIGMA_KEYSHEET"); v != "" {
		cfg.KeySheet = v
	}
	if v := envInt("ENIGMA_DAY"); v > 0 {
		cfg.Day = v
	}

	// Output
	if v, ok := envIntOK("ENIGMA_GROUP"); ok && v >= 0 {
		cfg.GroupSize = v
	}
	if v := envInt("ENIGMA_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("ENIGMA_STATS") {
		cfg.Stats = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	n, _ := envIntOK(key)
	return n
}

func envIntOK(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
