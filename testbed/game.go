package testbed

import (
	"github.com/spaghettifunk/geoscene/engine"
	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	collection *dynamicscene.DynamicObjectCollection
	frames     uint64
	lastLogged core.JulianDate
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
		config.Name = "GeoScene Testbed"
		config.LogLevel = "debug"
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize(start core.JulianDate) (*dynamicscene.DynamicObjectCollection, error) {
	core.LogInfo("initializing testbed...")
	state := g.State.(*gameState)
	state.collection = NewDemoCollection(start)
	state.lastLogged = start
	return state.collection, nil
}

func (g *TestGame) Update(time core.JulianDate, deltaTime float64) error {
	state := g.State.(*gameState)
	state.frames++
	if time.SecondsDifference(state.lastLogged) >= 3600 || time.Before(state.lastLogged) {
		core.LogDebug("testbed at %s after %d frames", time, state.frames)
		state.lastLogged = time
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	return nil
}
