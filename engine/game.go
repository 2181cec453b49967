package engine

import (
	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
)

// Game plugs application code into the engine loop. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown
}

// Initialize returns the collection to visualize when the configuration names
// no scene document. start is the clock start time.
type Initialize func(start core.JulianDate) (*dynamicscene.DynamicObjectCollection, error)

// Update runs once per frame, before the visualizers, at simulation time.
type Update func(time core.JulianDate, deltaTime float64) error
type Shutdown func() error
