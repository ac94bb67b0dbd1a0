package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/dracula/shared/leveldata"
)

var (
	//go:embed levels/*.tmx tuning.yaml
	assetFS embed.FS
)

// TuningPath is the embedded default tuning file.
const TuningPath = "tuning.yaml"

// FS exposes the embedded levels and tuning file.
func FS() fs.FS {
	return assetFS
}

// LoadLevel parses an embedded TMX level.
func LoadLevel(path string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, path)
}
