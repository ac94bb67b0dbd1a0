package components

import (
	"github.com/automoto/dracula/presentation"
	"github.com/yohamta/donburi"
)

// PresenterData is the singleton handle systems use to notify the UI.
type PresenterData struct {
	presentation.Port
}

var Presenter = donburi.NewComponentType[PresenterData]()
