package visualizers

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

// Visualizer maps the objects of a collection onto scene primitives.
type Visualizer interface {
	Update(time *core.JulianDate) error
	SetDynamicObjectCollection(collection *dynamicscene.DynamicObjectCollection)
	Destroy()
	IsDestroyed() bool
}

// Factory creates a visualizer bound to a scene and collection.
type Factory func(s *scene.Scene, collection *dynamicscene.DynamicObjectCollection) (Visualizer, error)

// ConeFactory is the Factory for ConeVisualizer.
func ConeFactory(s *scene.Scene, collection *dynamicscene.DynamicObjectCollection) (Visualizer, error) {
	cv, err := NewConeVisualizer(s, collection)
	if err != nil {
		return nil, err
	}
	return cv, nil
}

// VisualizerCollection drives a group of visualizers that share a scene and a
// collection.
type VisualizerCollection struct {
	scene       *scene.Scene
	collection  *dynamicscene.DynamicObjectCollection
	visualizers []Visualizer
	destroyed   bool
}

// NewVisualizerCollection builds one visualizer per factory. When any factory
// fails, the visualizers created so far are destroyed.
func NewVisualizerCollection(s *scene.Scene, collection *dynamicscene.DynamicObjectCollection, factories ...Factory) (*VisualizerCollection, error) {
	if s == nil {
		err := fmt.Errorf("func NewVisualizerCollection - scene is required: %w", core.ErrInvalidArgument)
		core.LogError(err.Error())
		return nil, err
	}
	vc := &VisualizerCollection{
		scene:      s,
		collection: collection,
	}
	for _, factory := range factories {
		v, err := factory(s, collection)
		if err != nil {
			core.LogError(err.Error())
			vc.Destroy()
			return nil, err
		}
		vc.visualizers = append(vc.visualizers, v)
	}
	return vc, nil
}

func (vc *VisualizerCollection) Scene() *scene.Scene {
	return vc.scene
}

func (vc *VisualizerCollection) DynamicObjectCollection() *dynamicscene.DynamicObjectCollection {
	return vc.collection
}

func (vc *VisualizerCollection) Visualizers() []Visualizer {
	return vc.visualizers
}

// Update updates every visualizer, even when an earlier one fails, and
// returns all failures joined.
func (vc *VisualizerCollection) Update(time *core.JulianDate) error {
	if time == nil {
		return fmt.Errorf("func VisualizerCollection.Update - time is required: %w", core.ErrInvalidArgument)
	}
	if vc.destroyed {
		return fmt.Errorf("func VisualizerCollection.Update: %w", core.ErrDestroyed)
	}
	var errs []error
	for _, v := range vc.visualizers {
		if err := v.Update(time); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (vc *VisualizerCollection) SetDynamicObjectCollection(collection *dynamicscene.DynamicObjectCollection) {
	if vc.destroyed || vc.collection == collection {
		return
	}
	vc.collection = collection
	for _, v := range vc.visualizers {
		v.SetDynamicObjectCollection(collection)
	}
}

func (vc *VisualizerCollection) Destroy() {
	if vc.destroyed {
		return
	}
	for _, v := range vc.visualizers {
		v.Destroy()
	}
	vc.visualizers = nil
	vc.destroyed = true
}

func (vc *VisualizerCollection) IsDestroyed() bool {
	return vc.destroyed
}
