package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/geoscene/engine/assets"
	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/scene"
	"github.com/spaghettifunk/geoscene/engine/visualizers"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released everything it owned
	EngineStageShutdown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *ApplicationConfig

	scene       *scene.Scene
	collection  *dynamicscene.DynamicObjectCollection
	visualizers *visualizers.VisualizerCollection
	watcher     *assets.DocumentWatcher
	clock       *core.Clock
	metrics     *core.Metrics
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		err := fmt.Errorf("func New - game and its configuration are required: %w", core.ErrInvalidArgument)
		core.LogError(err.Error())
		return nil, err
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       g.ApplicationConfig,
		metrics:      core.NewMetrics(),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine already initialized: %w", core.ErrInvalidArgument)
	}
	e.currentStage = EngineStageInitializing
	core.SetLogLevel(e.config.logLevel())

	clock, err := e.config.NewClock(time.Now())
	if err != nil {
		return err
	}
	e.clock = clock

	collection, err := e.loadCollection()
	if err != nil {
		return err
	}
	e.collection = collection

	e.scene = scene.New()
	vc, err := visualizers.NewVisualizerCollection(e.scene, e.collection, visualizers.ConeFactory)
	if err != nil {
		return err
	}
	e.visualizers = vc

	if e.config.Watch {
		w, err := assets.NewDocumentWatcher(e.config.Scene)
		if err != nil {
			return fmt.Errorf("failed to watch '%s': %w", e.config.Scene, err)
		}
		e.watcher = w
		core.LogInfo("watching '%s' for changes", e.config.Scene)
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized with %d objects, clock at %s", e.config.Name, e.collection.Len(), e.clock.CurrentTime())
	return nil
}

func (e *Engine) loadCollection() (*dynamicscene.DynamicObjectCollection, error) {
	if e.config.Scene != "" {
		return assets.LoadCollection(e.config.Scene)
	}
	if e.gameInstance.FnInitialize != nil {
		collection, err := e.gameInstance.FnInitialize(e.clock.StartTime)
		if err != nil {
			return nil, err
		}
		if collection != nil {
			return collection, nil
		}
	}
	core.LogWarn("no scene document and no game collection, starting empty")
	return dynamicscene.NewDynamicObjectCollection(), nil
}

// Run drives frames until ctx is cancelled or a frame fails.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine is not initialized: %w", core.ErrInvalidArgument)
	}
	e.currentStage = EngineStageRunning

	ticker := time.NewTicker(e.config.frameDuration())
	defer ticker.Stop()

	var reloads <-chan *dynamicscene.DynamicObjectCollection
	var reloadErrors <-chan error
	if e.watcher != nil {
		reloads = e.watcher.Collections()
		reloadErrors = e.watcher.Errors()
	}

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			core.LogInfo("stopping after %d frames", e.metrics.TotalFrames())
			return nil
		case collection := <-reloads:
			e.SetDynamicObjectCollection(collection)
		case err := <-reloadErrors:
			core.LogWarn("scene reload failed, keeping the current collection: %s", err)
		case now := <-ticker.C:
			delta := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := e.frame(delta); err != nil {
				core.LogError("frame failed, shutting down: %s", err)
				return err
			}
		}
	}
}

// frame advances the clock by deltaTime real seconds and brings the scene up
// to date.
func (e *Engine) frame(deltaTime float64) error {
	frameStartTime := time.Now()

	current := e.clock.Tick(deltaTime)
	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(current, deltaTime); err != nil {
			return err
		}
	}
	if err := e.visualizers.Update(&current); err != nil {
		return err
	}

	e.metrics.Update(time.Since(frameStartTime).Seconds())
	if e.metrics.TotalFrames()%uint64(e.config.FramesPerSecond*10) == 0 {
		fps, ms := e.metrics.Frame()
		core.LogInfo("%s: %d primitives, %.0f fps, %.3f ms/frame", current, e.scene.Primitives().Len(), fps, ms)
	}
	return nil
}

// SetDynamicObjectCollection swaps the visualized collection. It must be
// called from the goroutine that runs the engine.
func (e *Engine) SetDynamicObjectCollection(collection *dynamicscene.DynamicObjectCollection) {
	if e.visualizers == nil {
		return
	}
	e.collection = collection
	e.visualizers.SetDynamicObjectCollection(collection)
	n := 0
	if collection != nil {
		n = collection.Len()
	}
	core.LogInfo("switched to a collection of %d objects", n)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var err error
	if e.watcher != nil {
		err = e.watcher.Close()
		e.watcher = nil
	}
	if e.visualizers != nil {
		e.visualizers.Destroy()
	}
	if e.scene != nil {
		e.scene.Destroy()
	}
	if e.gameInstance.FnShutdown != nil {
		if gerr := e.gameInstance.FnShutdown(); gerr != nil && err == nil {
			err = gerr
		}
	}
	e.currentStage = EngineStageShutdown
	return err
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

func (e *Engine) Clock() *core.Clock {
	return e.clock
}

func (e *Engine) DynamicObjectCollection() *dynamicscene.DynamicObjectCollection {
	return e.collection
}
