package replay

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/automoto/beatchain/core"
	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/stagedata"
)

// ErrDiverged is returned when two runs of one recording disagree.
var ErrDiverged = errors.New("simulation diverged")

// Play runs rec on a fresh match and returns every tick's result.
func Play(lib *chardata.Library, stage *stagedata.Stage, rec *Recording) ([]core.TickResult, error) {
	m, err := core.NewMatch(lib, stage, rec.Characters)
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	results := make([]core.TickResult, 0, len(rec.Frames))
	for _, inputs := range rec.Frames {
		results = append(results, m.Step(inputs))
	}
	return results, nil
}

// Verify plays rec twice and compares the runs tick by tick.
func Verify(lib *chardata.Library, stage *stagedata.Stage, rec *Recording) error {
	first, err := Play(lib, stage, rec)
	if err != nil {
		return err
	}
	second, err := Play(lib, stage, rec)
	if err != nil {
		return err
	}
	if tick, ok := Compare(first, second); !ok {
		return fmt.Errorf("tick %d: %w", tick, ErrDiverged)
	}
	logging.Log.Infow("replay verified", "ticks", len(first))
	return nil
}

// Compare returns the first tick where a and b differ.
func Compare(a, b []core.TickResult) (uint64, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !reflect.DeepEqual(a[i], b[i]) {
			return a[i].Tick, false
		}
	}
	if len(a) != len(b) {
		return uint64(n + 1), false
	}
	return 0, true
}
