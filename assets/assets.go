package assets

import (
	"embed"
	"io/fs"
)

const (
	CharactersDir = "characters"
	StagesDir     = "stages"
)

var (
	//go:embed all:characters all:stages
	assetFS embed.FS
)

// FS exposes the bundled character sheets and stages.
func FS() fs.FS {
	return assetFS
}
