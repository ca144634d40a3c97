package chardata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/multierr"

	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/gamemath"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrUnknownHitbox    = errors.New("unknown hitbox")
	ErrUnknownAttack    = errors.New("unknown attack")
)

// Key namespaces a sheet-local name: Key("ryu", "5A") is "ryu_5A".
func Key(character, name string) string {
	return character + "_" + name
}

// Library is the global lookup of every loaded character, keyed by
// character-prefixed names. It is read-only once loading finishes.
type Library struct {
	animations map[string]Animation
	hitboxes   map[string]HitboxTemplate
	attacks    map[string]Attack
	profiles   map[string]Profile
}

func NewLibrary() *Library {
	return &Library{
		animations: make(map[string]Animation),
		hitboxes:   make(map[string]HitboxTemplate),
		attacks:    make(map[string]Attack),
		profiles:   make(map[string]Profile),
	}
}

// LoadFile reads dir/<character>.json from fsys. Any problem with the
// sheet is returned; callers treat it as fatal.
func (l *Library) LoadFile(fsys fs.FS, dir, character string) error {
	p := path.Join(dir, character+".json")
	f, err := fsys.Open(p)
	if err != nil {
		return fmt.Errorf("open character %s: %w", p, err)
	}
	defer f.Close()

	if err := l.Load(character, f); err != nil {
		return fmt.Errorf("load character %s: %w", p, err)
	}
	return nil
}

// LoadAll loads every .json sheet in dir and returns the character names.
func (l *Library) LoadAll(fsys fs.FS, dir string) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no character sheets found in %s", dir)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), ".json")
		if err := l.LoadFile(fsys, dir, name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load decodes and validates one sheet and merges it into the library.
// Nothing is merged unless the whole sheet is valid.
func (l *Library) Load(character string, r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		return fmt.Errorf("decode sheet: %w", err)
	}
	return l.Add(character, sheet)
}

// Add validates sheet and merges it under character.
func (l *Library) Add(character string, sheet Sheet) error {
	if character == "" {
		return errors.New("character name is empty")
	}
	if err := validate(sheet); err != nil {
		return err
	}

	for _, a := range sheet.Animations {
		l.animations[Key(character, a.Name)] = Animation{
			Name:       a.Name,
			FirstFrame: a.FirstFrame,
			FinalFrame: a.FirstFrame + a.Length - 1,
			Loopable:   a.Loopable,
			Hold:       a.Hold,
		}
	}

	for _, h := range sheet.Hitboxes {
		l.hitboxes[Key(character, h.Name)] = h
	}

	names := make([]string, 0, len(sheet.Attacks))
	for _, a := range sheet.Attacks {
		attack := Attack{Name: a.Name, Busy: a.Busy}
		for _, e := range a.HitboxEvents {
			attack.HitboxEvents = append(attack.HitboxEvents, HitboxEvent{
				Template: l.hitboxes[Key(character, e.Hitbox)],
				Position: e.Position,
				Size:     e.Size,
				Frame:    e.Frame,
			})
		}
		l.attacks[Key(character, a.Name)] = attack
		names = append(names, a.Name)
	}

	profile := Profile{
		Character:     character,
		MovementDef:   sheet.Movement,
		HurtboxWidth:  cfg.Fighter.HurtboxWidth,
		HurtboxHeight: cfg.Fighter.HurtboxHeight,
		Attacks:       names,
	}
	if profile.Jumpsquat == 0 {
		profile.Jumpsquat = cfg.Kernel.JumpsquatFrames
	}
	if h := sheet.Hurtbox; h != nil {
		if h.Width > 0 {
			profile.HurtboxWidth = h.Width
		}
		if h.Height > 0 {
			profile.HurtboxHeight = h.Height
		}
		profile.IgnoredProperties = h.IgnoredProperties
	}
	l.profiles[character] = profile
	return nil
}

func (l *Library) Profile(character string) (Profile, error) {
	p, ok := l.profiles[character]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownCharacter, character)
	}
	return p, nil
}

// Attack returns a copy of a character's attack by sheet-local name.
func (l *Library) Attack(character, name string) (Attack, error) {
	a, ok := l.attacks[Key(character, name)]
	if !ok {
		return Attack{}, fmt.Errorf("%w: %s", ErrUnknownAttack, Key(character, name))
	}
	return a, nil
}

func (l *Library) Hitbox(key string) (HitboxTemplate, error) {
	h, ok := l.hitboxes[key]
	if !ok {
		return HitboxTemplate{}, fmt.Errorf("%w: %s", ErrUnknownHitbox, key)
	}
	return h, nil
}

func (l *Library) Animation(key string) (Animation, bool) {
	a, ok := l.animations[key]
	return a, ok
}

// Characters lists loaded characters in name order.
func (l *Library) Characters() []string {
	names := make([]string, 0, len(l.profiles))
	for name := range l.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validate(sheet Sheet) error {
	var errs error

	seen := make(map[string]bool)
	for i, a := range sheet.Animations {
		if a.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("animations[%d]: empty name", i))
		}
		if seen[a.Name] {
			errs = multierr.Append(errs, fmt.Errorf("animation %q: duplicate name", a.Name))
		}
		seen[a.Name] = true
		if a.Length < 1 {
			errs = multierr.Append(errs, fmt.Errorf("animation %q: length %d < 1", a.Name, a.Length))
		}
	}

	hitboxes := make(map[string]bool)
	for i, h := range sheet.Hitboxes {
		if h.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("hitboxes[%d]: empty name", i))
		}
		if hitboxes[h.Name] {
			errs = multierr.Append(errs, fmt.Errorf("hitbox %q: duplicate name", h.Name))
		}
		hitboxes[h.Name] = true
		if h.Duration < 1 {
			errs = multierr.Append(errs, fmt.Errorf("hitbox %q: duration %d < 1", h.Name, h.Duration))
		}
	}

	attacks := make(map[string]bool)
	for i, a := range sheet.Attacks {
		if a.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("attacks[%d]: empty name", i))
		}
		if attacks[a.Name] {
			errs = multierr.Append(errs, fmt.Errorf("attack %q: duplicate name", a.Name))
		}
		attacks[a.Name] = true
		if a.Busy < 1 {
			errs = multierr.Append(errs, fmt.Errorf("attack %q: busy %d < 1", a.Name, a.Busy))
		}
		for j, e := range a.HitboxEvents {
			if !hitboxes[e.Hitbox] {
				errs = multierr.Append(errs, fmt.Errorf("attack %q event %d: %w %q", a.Name, j, ErrUnknownHitbox, e.Hitbox))
			}
			if e.Frame < 0 || e.Frame > a.Busy {
				errs = multierr.Append(errs, fmt.Errorf("attack %q event %d: frame %d outside 0..%d", a.Name, j, e.Frame, a.Busy))
			}
			if e.Size.X <= 0 || e.Size.Y <= 0 {
				errs = multierr.Append(errs, fmt.Errorf("attack %q event %d: size must be positive", a.Name, j))
			}
		}
	}

	m := sheet.Movement
	if m.Gravity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("movement: gravity %v must be positive", m.Gravity))
	}
	if m.JumpHeight <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("movement: jump_height %v must be positive", m.JumpHeight))
	}
	for name, v := range map[string]float64{
		"walk_speed":          m.WalkSpeed,
		"back_walk_speed":     m.BackWalkSpeed,
		"dash_speed":          m.DashSpeed,
		"air_dash_speed":      m.AirDashSpeed,
		"air_back_dash_speed": m.AirBackDashSpeed,
	} {
		if v < 0 {
			errs = multierr.Append(errs, fmt.Errorf("movement: %s %v is negative", name, v))
		}
	}
	if m.AirJumps < 0 || m.Airdashes < 0 || m.Jumpsquat < 0 {
		errs = multierr.Append(errs, errors.New("movement: counts must not be negative"))
	}

	b := m.Backdash
	if b.Busy < 0 || b.MotionDuration < 0 {
		errs = multierr.Append(errs, errors.New("backdash: busy and motion_duration must not be negative"))
	}
	if b.Style == BackdashTeleport && b.MotionDuration == 0 {
		errs = multierr.Append(errs, errors.New("backdash: Teleport needs a motion_duration"))
	}
	if _, ok := gamemath.Easings[b.Easing]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("backdash: unknown easing %q", b.Easing))
	}

	return errs
}
