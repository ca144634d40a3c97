package stagedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoStages is returned when a stage directory holds no .tmx files.
var ErrNoStages = errors.New("no stages found")

// spawnGroup is the object group holding fighter spawn points.
const spawnGroup = "PlayerSpawn"

// LoadStage parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	if stage.Width <= 0 || stage.Height <= 0 {
		return nil, fmt.Errorf("stage %s: empty bounds %vx%v", tmxPath, stage.Width, stage.Height)
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			stage.Spawns = append(stage.Spawns, SpawnPoint{
				X:     o.X,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Left to right so player one always starts on the left.
	sort.Slice(stage.Spawns, func(i, j int) bool {
		return stage.Spawns[i].X < stage.Spawns[j].X
	})
	return stage, nil
}

// LoadAll loads every .tmx in dir, keyed by file stem, plus the sorted
// stem names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoStages)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		s, err := LoadStage(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stages[s.Name] = s
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return stages, names, nil
}
