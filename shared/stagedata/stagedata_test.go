package stagedata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/beatchain/assets"
	cfg "github.com/automoto/beatchain/config"
)

func TestLoadDojo(t *testing.T) {
	s, err := LoadStage(assets.FS(), assets.StagesDir+"/dojo.tmx")
	if err != nil {
		t.Fatalf("LoadStage: %v", err)
	}
	if s.Name != "dojo" || s.Width != 640 || s.Height != 320 {
		t.Fatalf("stage = %+v", s)
	}
	if len(s.Spawns) != 2 || s.SpawnX(0) != 270 || s.SpawnX(1) != 370 {
		t.Fatalf("spawns = %+v", s.Spawns)
	}
}

func TestLoadAll(t *testing.T) {
	stages, names, err := LoadAll(assets.FS(), assets.StagesDir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) == 0 || stages[names[0]] == nil {
		t.Fatalf("names %v stages %v", names, stages)
	}
}

func TestLoadAllEmpty(t *testing.T) {
	_, _, err := LoadAll(fstest.MapFS{}, "stages")
	if !errors.Is(err, ErrNoStages) {
		t.Fatalf("err = %v, want ErrNoStages", err)
	}
}

func TestSpawnFallback(t *testing.T) {
	s := &Stage{Width: 100}
	if s.SpawnX(0) != cfg.Stage.SpawnLeft || s.SpawnX(1) != cfg.Stage.SpawnRight {
		t.Fatal("fallback spawns not used")
	}
}

func TestClamp(t *testing.T) {
	s := Default()
	tests := []struct {
		x, want float64
	}{
		{-5, 0},
		{100, 100},
		{s.Width, s.Width - 30},
	}
	for _, tt := range tests {
		if got := s.Clamp(tt.x, 30); got != tt.want {
			t.Fatalf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
