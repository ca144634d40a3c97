package action

import (
	"regexp"
	"strings"

	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/input"
)

// BeatChain tracks which attacks are still usable in the current
// pressure sequence.
type BeatChain struct {
	All       []string
	Available []string
}

func NewBeatChain(names []string) *BeatChain {
	c := &BeatChain{All: append([]string(nil), names...)}
	c.Reset()
	return c
}

// Reset makes every attack available again.
func (c *BeatChain) Reset() {
	c.Available = append(c.Available[:0], c.All...)
}

// Has reports whether name is still available.
func (c *BeatChain) Has(name string) bool {
	for _, n := range c.Available {
		if n == name {
			return true
		}
	}
	return false
}

// Take removes name from the available list.
func (c *BeatChain) Take(name string) bool {
	for i, n := range c.Available {
		if n == name {
			c.Available = append(c.Available[:i], c.Available[i+1:]...)
			return true
		}
	}
	return false
}

// normalPatterns[motion][button] is "{motion}.*{button}".
var normalPatterns [10][cfg.ButtonCount]*regexp.Regexp

func init() {
	for m := cfg.MotionDownBack; m <= cfg.MotionUpForward; m++ {
		for i := 0; i < cfg.ButtonCount; i++ {
			b := cfg.Button(1) << i
			normalPatterns[m][i] = regexp.MustCompile(string(m.Byte()) + ".*" + regexp.QuoteMeta(b.String()))
		}
	}
}

func buttonIndex(b cfg.Button) int {
	for i := 0; i < cfg.ButtonCount; i++ {
		if b == cfg.Button(1)<<i {
			return i
		}
	}
	return -1
}

// isSpecial is true for names spelled with a motion notation, e.g. "236A".
func isSpecial(name string) bool {
	name = strings.TrimPrefix(name, chardata.AirPrefix)
	digits := 0
	for _, r := range name {
		if r < '1' || r > '9' {
			break
		}
		digits++
	}
	return digits > 1
}

// FindAttack resolves this frame's input to an attack from the chain.
// Nothing is found unless a button went down this frame. Fresh buttons
// are tried newest-bit first; for each, a buffered special command is
// tried as "{notation}{button}" before the plain "{motion}.*{button}"
// scan over the chain in order. The found attack is taken from the chain,
// and a special consumes its command.
func FindAttack(buf *input.Buffer, chain *BeatChain, attacks map[string]chardata.Attack, airborne bool) (chardata.Attack, bool) {
	fresh := buf.Fresh()
	if fresh == 0 || chain == nil {
		return chardata.Attack{}, false
	}

	for _, button := range fresh.Buttons() {
		if notation := buf.Active().Notation(); notation != "" {
			name := notation + button.String()
			if airborne {
				name = chardata.AirPrefix + name
			}
			if a, ok := attacks[name]; ok && chain.Has(name) {
				chain.Take(name)
				buf.Consume()
				return a, true
			}
		}

		idx := buttonIndex(button)
		if idx < 0 || !buf.CurrentMotion.Valid() {
			continue
		}
		pattern := normalPatterns[buf.CurrentMotion][idx]
		for _, name := range chain.Available {
			if isSpecial(name) || !pattern.MatchString(name) {
				continue
			}
			a, ok := attacks[name]
			if !ok || a.Airborne() != airborne {
				continue
			}
			chain.Take(name)
			return a, true
		}
	}
	return chardata.Attack{}, false
}
