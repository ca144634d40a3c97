package chardata

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/multierr"

	"github.com/automoto/beatchain/assets"
)

func loadBundled(t *testing.T) *Library {
	t.Helper()
	lib := NewLibrary()
	names, err := lib.LoadAll(assets.FS(), assets.CharactersDir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("loaded %v, want at least two characters", names)
	}
	return lib
}

func TestLoadBundledCharacters(t *testing.T) {
	lib := loadBundled(t)

	p, err := lib.Profile("ronin")
	if err != nil {
		t.Fatal(err)
	}
	if p.WalkSpeed != 4 || p.BackWalkSpeed != 2.5 || p.Jumpsquat != 3 {
		t.Fatalf("unexpected movement: %+v", p.MovementDef)
	}
	if p.Backdash.Style != BackdashStandard || p.Backdash.Speed != 25 || p.Backdash.Busy != 20 || p.Backdash.MotionDuration != 20 {
		t.Fatalf("unexpected backdash: %+v", p.Backdash)
	}
	if p.Attacks[0] != "5A" {
		t.Fatalf("attack order = %v", p.Attacks)
	}

	w, err := lib.Profile("wraith")
	if err != nil {
		t.Fatal(err)
	}
	if w.Backdash.Style != BackdashTeleport || w.Backdash.Distance != 90 {
		t.Fatalf("unexpected wraith backdash: %+v", w.Backdash)
	}
	if w.HurtboxWidth != 26 {
		t.Fatalf("hurtbox width = %v, want sheet override 26", w.HurtboxWidth)
	}
}

func TestNamesAreNamespaced(t *testing.T) {
	lib := loadBundled(t)

	anim, ok := lib.Animation("ronin_walk")
	if !ok {
		t.Fatal("ronin_walk missing")
	}
	if anim.FinalFrame != anim.FirstFrame+7 {
		t.Fatalf("final frame = %d, want first+length-1", anim.FinalFrame)
	}
	if _, ok := lib.Animation("walk"); ok {
		t.Fatal("un-prefixed name resolved")
	}

	if _, err := lib.Hitbox("ronin_jab"); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Hitbox("wraith_jab"); !errors.Is(err, ErrUnknownHitbox) {
		t.Fatalf("wraith_jab: err = %v, want ErrUnknownHitbox", err)
	}

	a, err := lib.Attack("ronin", "623C")
	if err != nil {
		t.Fatal(err)
	}
	if len(a.HitboxEvents) != 2 || a.HitboxEvents[0].Template.Name != "uppercut" {
		t.Fatalf("623C events not resolved: %+v", a.HitboxEvents)
	}
	if _, err := lib.Profile("nobody"); !errors.Is(err, ErrUnknownCharacter) {
		t.Fatalf("err = %v, want ErrUnknownCharacter", err)
	}
}

func TestEventsOnFrame(t *testing.T) {
	lib := loadBundled(t)
	a, err := lib.Attack("ronin", "5A")
	if err != nil {
		t.Fatal(err)
	}
	// busy 12, event frame 4: due when 8 frames remain
	if got := a.EventsOnFrame(8); len(got) != 1 {
		t.Fatalf("EventsOnFrame(8) = %d events, want 1", len(got))
	}
	if got := a.EventsOnFrame(9); len(got) != 0 {
		t.Fatalf("EventsOnFrame(9) = %d events, want 0", len(got))
	}
}

func TestAirborneAttacks(t *testing.T) {
	if !(&Attack{Name: "j.2B"}).Airborne() {
		t.Fatal("j.2B should be airborne")
	}
	if (&Attack{Name: "2B"}).Airborne() {
		t.Fatal("2B should be grounded")
	}
}

const minimalSheet = `{
  "animations": [{"name": "idle", "first_frame": 0, "length": 1, "loopable": true, "hold": 1}],
  "hitboxes": [{"name": "h", "attack_level": 0, "damage": 1, "proration": 1, "force": {"x": 0, "y": 0},
    "air_blockable": false, "property": "Low", "duration": 2, "chip": false, "projectile": false}],
  "attacks": [{"name": "5A", "busy": 5, "hitbox_events": [
    {"hitbox": "h", "position": {"x": 1, "y": 1}, "size": {"x": 1, "y": 1}, "frame": 1}]}],
  "movement": {"jumpsquat": 0, "air_jumps": 1, "airdashes": 1, "air_dash_speed": 8,
    "air_back_dash_speed": 6, "walk_speed": 4, "back_walk_speed": 2.5, "dash_speed": 8,
    "gravity": 1, "jump_height": 20, "max_airdash_time": 25, "max_air_backdash_time": 15,
    "backdash": {"Leap": {"busy": 16, "motion_duration": 12}}}
}`

func TestLoadDefaultsAndLeap(t *testing.T) {
	lib := NewLibrary()
	if err := lib.Load("tiny", strings.NewReader(minimalSheet)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := lib.Profile("tiny")
	if err != nil {
		t.Fatal(err)
	}
	if p.Jumpsquat != 3 {
		t.Fatalf("jumpsquat = %d, want default 3", p.Jumpsquat)
	}
	if p.Backdash.Style != BackdashLeap || p.Backdash.Busy != 16 {
		t.Fatalf("backdash = %+v", p.Backdash)
	}
	h, _ := lib.Hitbox("tiny_h")
	if h.Property != PropertyLow {
		t.Fatalf("property = %s, want Low", h.Property)
	}
}

func TestLoadRejectsBadSheets(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s string) string
		wantErr string
	}{
		{
			name:    "unknown field",
			mutate:  func(s string) string { return strings.Replace(s, `"hold": 1`, `"hold": 1, "speed": 3`, 1) },
			wantErr: "unknown field",
		},
		{
			name:    "unknown hitbox reference",
			mutate:  func(s string) string { return strings.Replace(s, `{"hitbox": "h"`, `{"hitbox": "missing"`, 1) },
			wantErr: "unknown hitbox",
		},
		{
			name:    "bad property",
			mutate:  func(s string) string { return strings.Replace(s, `"Low"`, `"Overhead"`, 1) },
			wantErr: "unknown hitbox property",
		},
		{
			name:    "bad backdash style",
			mutate:  func(s string) string { return strings.Replace(s, `"Leap"`, `"Roll"`, 1) },
			wantErr: "unknown style",
		},
		{
			name:    "zero gravity",
			mutate:  func(s string) string { return strings.Replace(s, `"gravity": 1`, `"gravity": 0`, 1) },
			wantErr: "gravity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLibrary().Load("bad", strings.NewReader(tt.mutate(minimalSheet)))
			if err == nil {
				t.Fatal("Load accepted a bad sheet")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidationReportsEveryProblem(t *testing.T) {
	sheet := Sheet{
		Animations: []AnimationDef{{Name: "idle", Length: 0}},
		Hitboxes:   []HitboxTemplate{{Name: "h", Duration: 0}},
		Attacks:    []AttackDef{{Name: "5A", Busy: 0}},
		Movement: MovementDef{
			Gravity:    1,
			JumpHeight: 10,
			Backdash:   Backdash{Style: BackdashStandard, Busy: 1, MotionDuration: 1},
		},
	}
	err := NewLibrary().Add("broken", sheet)
	if got := len(multierr.Errors(err)); got != 3 {
		t.Fatalf("got %d errors, want 3: %v", got, err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	fsys := fstest.MapFS{}
	if err := NewLibrary().LoadFile(fsys, "characters", "ghost"); err == nil {
		t.Fatal("missing sheet loaded")
	}
}

func TestBackdashRoundTrip(t *testing.T) {
	in := Backdash{Style: BackdashTeleport, Busy: 18, Distance: 90, MotionDuration: 6}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `{"Teleport":`) {
		t.Fatalf("marshalled as %s", data)
	}
	var out Backdash
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestSchemaDescribesSheet(t *testing.T) {
	data, err := json.Marshal(Schema())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"hitbox_events", "air_back_dash_speed", "Character Sheet"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("schema does not mention %q", want)
		}
	}
}
