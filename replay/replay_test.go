package replay

import (
	"errors"
	"testing"

	"github.com/automoto/beatchain/assets"
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/core"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/messages"
)

type memoryBackend struct {
	items map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{items: make(map[string][]byte)}
}

func (b *memoryBackend) LoadItem(key string) ([]byte, error) {
	return b.items[key], nil
}

func (b *memoryBackend) SaveItem(key string, data []byte) error {
	b.items[key] = data
	return nil
}

func loadLibrary(t *testing.T) *chardata.Library {
	t.Helper()
	lib := chardata.NewLibrary()
	if _, err := lib.LoadAll(assets.FS(), assets.CharactersDir); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return lib
}

// script walks both fighters in, jumps and throws a few attacks.
func script() *Recording {
	rec := &Recording{Characters: [2]string{"ronin", "wraith"}, Stage: "dojo"}
	push := func(n int, m0 cfg.Motion, b0 cfg.Button, m1 cfg.Motion, b1 cfg.Button) {
		for i := 0; i < n; i++ {
			rec.Frames = append(rec.Frames, [2]messages.FighterInput{
				{CharacterID: 0, Motion: m0, Buttons: b0},
				{CharacterID: 1, Motion: m1, Buttons: b1},
			})
		}
	}
	push(15, cfg.MotionForward, 0, cfg.MotionForward, 0)
	push(1, cfg.MotionForward, cfg.ButtonA, cfg.MotionBack, 0)
	push(20, cfg.MotionNeutral, 0, cfg.MotionDownBack, 0)
	push(1, cfg.MotionUp, 0, cfg.MotionDown, cfg.ButtonB)
	push(40, cfg.MotionNeutral, 0, cfg.MotionNeutral, 0)
	return rec
}

func TestRecorderCopiesFrames(t *testing.T) {
	r := NewRecorder([2]string{"ronin", "wraith"}, "dojo")
	in := [2]messages.FighterInput{messages.NeutralInput(0), messages.NeutralInput(1)}
	r.Record(in)

	rec := r.Recording()
	r.Record(in)

	if len(rec.Frames) != 1 {
		t.Errorf("snapshot frames = %d, want 1", len(rec.Frames))
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRecordedSource(t *testing.T) {
	src := script()
	r := NewRecorder(src.Characters, src.Stage)
	wrapped := r.Recorded(src.Source())

	var n int
	for {
		if _, ok := wrapped.Next(uint64(n)); !ok {
			break
		}
		n++
	}
	if n != len(src.Frames) || r.Len() != n {
		t.Fatalf("recorded %d of %d frames", r.Len(), len(src.Frames))
	}
	if r.Recording().Frames[15] != src.Frames[15] {
		t.Errorf("frame 15 = %+v, want %+v", r.Recording().Frames[15], src.Frames[15])
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(newMemoryBackend())
	want := script()

	if err := store.Save("Sparring", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("sparring")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Characters != want.Characters || got.Stage != want.Stage {
		t.Errorf("header = %v %q, want %v %q", got.Characters, got.Stage, want.Characters, want.Stage)
	}
	if len(got.Frames) != len(want.Frames) {
		t.Fatalf("frames = %d, want %d", len(got.Frames), len(want.Frames))
	}
	for i := range want.Frames {
		if got.Frames[i] != want.Frames[i] {
			t.Fatalf("frame %d = %+v, want %+v", i, got.Frames[i], want.Frames[i])
		}
	}
}

func TestStoreMissing(t *testing.T) {
	store := NewStore(newMemoryBackend())
	if _, err := store.Load("nothing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load missing = %v, want ErrNotFound", err)
	}

	if err := store.Save("gone", script()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load deleted = %v, want ErrNotFound", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Error("Decode accepted malformed data")
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	lib := loadLibrary(t)
	rec := script()

	results, err := Play(lib, nil, rec)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(results) != len(rec.Frames) {
		t.Fatalf("results = %d, want %d", len(results), len(rec.Frames))
	}
	if results[0].Tick != 1 || results[len(results)-1].Tick != uint64(len(rec.Frames)) {
		t.Errorf("ticks run %d..%d", results[0].Tick, results[len(results)-1].Tick)
	}
	if err := Verify(lib, nil, rec); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestPlayUnknownCharacter(t *testing.T) {
	rec := script()
	rec.Characters[1] = "nobody"
	if _, err := Play(loadLibrary(t), nil, rec); err == nil {
		t.Error("Play accepted an unknown character")
	}
}

func TestCompare(t *testing.T) {
	a := []core.TickResult{{Tick: 1}, {Tick: 2}, {Tick: 3}}
	b := []core.TickResult{{Tick: 1}, {Tick: 2}, {Tick: 3}}

	if _, ok := Compare(a, b); !ok {
		t.Error("identical runs compared unequal")
	}

	b[1].Fighters[0].Position.X = 1
	if tick, ok := Compare(a, b); ok || tick != 2 {
		t.Errorf("Compare = %d, %v; want 2, false", tick, ok)
	}

	if tick, ok := Compare(a, a[:2]); ok || tick != 3 {
		t.Errorf("Compare short = %d, %v; want 3, false", tick, ok)
	}
}
