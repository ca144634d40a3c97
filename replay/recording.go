// Package replay records match inputs, stores them and re-simulates them
// to check that a match is deterministic.
package replay

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/beatchain/core"
	"github.com/automoto/beatchain/shared/messages"
)

// Recording is everything needed to replay a match.
type Recording struct {
	Characters [2]string                   `json:"characters"`
	Stage      string                      `json:"stage"`
	Frames     [][2]messages.FighterInput `json:"frames"`
}

// Source returns the recording's frames as a loop input source.
func (r *Recording) Source() core.Frames {
	return core.Frames(r.Frames)
}

// Encode serializes the recording as JSON.
func (r *Recording) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode recording: %w", err)
	}
	return data, nil
}

// Decode parses a recording produced by Encode.
func Decode(data []byte) (*Recording, error) {
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	return &r, nil
}

// Recorder collects the inputs of a running match.
type Recorder struct {
	rec Recording
}

func NewRecorder(characters [2]string, stage string) *Recorder {
	return &Recorder{rec: Recording{Characters: characters, Stage: stage}}
}

// Record appends one tick of input.
func (r *Recorder) Record(inputs [2]messages.FighterInput) {
	r.rec.Frames = append(r.rec.Frames, inputs)
}

// Len is the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() *Recording {
	out := r.rec
	out.Frames = append([][2]messages.FighterInput(nil), r.rec.Frames...)
	return &out
}

// Recorded wraps src so every frame it hands out is also recorded.
func (r *Recorder) Recorded(src core.InputSource) core.InputSource {
	return recordingSource{src: src, rec: r}
}

type recordingSource struct {
	src core.InputSource
	rec *Recorder
}

func (s recordingSource) Next(tick uint64) ([2]messages.FighterInput, bool) {
	inputs, ok := s.src.Next(tick)
	if ok {
		s.rec.Record(inputs)
	}
	return inputs, ok
}
