package main

import (
	"testing"

	"github.com/automoto/beatchain/replay"
	"github.com/automoto/beatchain/shared/stagedata"
)

func TestSelectStage(t *testing.T) {
	stages := map[string]*stagedata.Stage{
		"dojo":   {Name: "dojo"},
		"bridge": {Name: "bridge"},
	}
	tests := []struct {
		name     string
		recorded string
		fallback string
		want     string
		wantErr  bool
	}{
		{"recording names the stage", "bridge", "dojo", "bridge", false},
		{"recording without a stage", "", "dojo", "dojo", false},
		{"recorded stage missing", "rooftop", "dojo", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &replay.Recording{Stage: tt.recorded}
			got, err := selectStage(stages, rec, tt.fallback)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("selectStage picked %q", got.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("selectStage: %v", err)
			}
			if got.Name != tt.want {
				t.Fatalf("stage = %q, want %q", got.Name, tt.want)
			}
		})
	}
}
