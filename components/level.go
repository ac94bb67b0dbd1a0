package components

import (
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	*leveldata.Level
	Path string
}

var Level = donburi.NewComponentType[LevelData]()
