// Package keygen produces random machine settings and fingerprints of
// settings.
//
// Generated keys are for exercises and demonstrations.  The generator
// is seedable so that a key list can be reproduced.
package keygen

import (
	"math/rand/v2"
	"strings"

	"goenigma/internal/alphabet"
	"goenigma/internal/machine"
	"goenigma/internal/reflector"
	"goenigma/internal/rotor"
)

// Plugboard pair counts used when Options leaves them unset.
const (
	DefaultMinPairs = 5
	DefaultMaxPairs = 10
	maxPairs        = alphabet.Size / 2
)

// Options tune the generator.  The zero value is usable.
type Options struct {
	MinPairs int
	MaxPairs int

	// Reflectors limits the reflector choice; nil means B and C.
	Reflectors []string
}

// Generator draws random settings from its source.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// New returns a generator seeded with seed.  Equal seeds give equal
// sequences of settings.
func New(seed uint64, opts Options) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		opts: opts.normalized(),
	}
}

func (o Options) normalized() Options {
	if o.MinPairs <= 0 && o.MaxPairs <= 0 {
		o.MinPairs, o.MaxPairs = DefaultMinPairs, DefaultMaxPairs
	}
	if o.MaxPairs > maxPairs {
		o.MaxPairs = maxPairs
	}
	if o.MinPairs < 0 {
		o.MinPairs = 0
	}
	if o.MinPairs > o.MaxPairs {
		o.MinPairs = o.MaxPairs
	}
	if len(o.Reflectors) == 0 {
		o.Reflectors = []string{reflector.B.Name, reflector.C.Name}
	}
	return o
}

// Settings draws one complete key: three distinct rotors, a
// reflector, ring settings, start positions and a plugboard.
func (g *Generator) Settings() machine.Settings {
	var s machine.Settings

	names := rotor.Names()
	for i, j := range g.rng.Perm(len(names))[:3] {
		s.Rotors[i] = names[j]
	}
	s.Reflector = g.opts.Reflectors[g.rng.IntN(len(g.opts.Reflectors))]
	s.Rings = g.letters()
	s.Positions = g.letters()
	s.Plugboard = g.Plugboard()
	return s
}

// Positions draws three random window letters, e.g. a message key.
func (g *Generator) Positions() [3]rune {
	return g.letters()
}

// Plugboard draws a pair string with between MinPairs and MaxPairs
// pairs and no letter used twice.
func (g *Generator) Plugboard() string {
	n := g.opts.MinPairs
	if span := g.opts.MaxPairs - g.opts.MinPairs; span > 0 {
		n += g.rng.IntN(span + 1)
	}

	letters := g.rng.Perm(alphabet.Size)
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		a, b := letters[2*i], letters[2*i+1]
		tokens = append(tokens, string([]rune{alphabet.MustLetter(a), alphabet.MustLetter(b)}))
	}
	return strings.Join(tokens, " ")
}

func (g *Generator) letters() [3]rune {
	var out [3]rune
	for i := range out {
		out[i] = alphabet.MustLetter(g.rng.IntN(alphabet.Size))
	}
	return out
}
