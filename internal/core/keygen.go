package core

import (
	"context"
	"fmt"

	"goenigma/config"
	"goenigma/internal/keygen"
	"goenigma/util"
)

// KeygenMode writes a random key sheet as YAML to stdout.  The output
// is accepted by --keysheet.
type KeygenMode struct {
	Name    string
	Days    int
	Seed    uint64
	Options keygen.Options
	Logger  *util.Logger

	streams
}

// Run generates Days entries from Seed.
func (m *KeygenMode) Run(ctx context.Context) error {
	name := m.Name
	if name == "" {
		name = fmt.Sprintf("keysheet-%d", m.Seed)
	}
	m.Logger.Info("generating %d keys with seed %d", m.Days, m.Seed)

	gen := keygen.New(m.Seed, m.Options)
	sheet := &config.KeySheet{Name: name, Entries: make([]config.KeyEntry, 0, m.Days)}
	for day := 1; day <= m.Days; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := gen.Settings()
		sheet.Entries = append(sheet.Entries, config.EntryFromSettings(day, s))
		m.Logger.Verbose("day %d fingerprint %s", day, keygen.Fingerprint(s))
	}

	data, err := sheet.Marshal()
	if err != nil {
		return err
	}
	if _, err := m.stdout().Write(data); err != nil {
		return fmt.Errorf("write key sheet: %w", err)
	}
	return nil
}
