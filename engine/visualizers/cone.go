package visualizers

import (
	"fmt"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

type coneEntry struct {
	sensor *scene.ComplexConicSensor
	handle core.Handle
	// Set when the collection was cleared while the sensor was tracked.
	cleared bool
}

/**
 * @brief Keeps one ComplexConicSensor per dynamic object that carries a cone,
 * a position and an orientation. Sensors are created lazily by Update,
 * removed when their object leaves the collection, and hidden when the whole
 * collection is cleared.
 */
type ConeVisualizer struct {
	scene        *scene.Scene
	collection   *dynamicscene.DynamicObjectCollection
	subscription *core.Subscription
	cones        map[string]*coneEntry
	destroyed    bool
}

// NewConeVisualizer requires a scene. The collection may be nil, in which case
// Update does nothing until one is set.
func NewConeVisualizer(s *scene.Scene, collection *dynamicscene.DynamicObjectCollection) (*ConeVisualizer, error) {
	if s == nil {
		err := fmt.Errorf("func NewConeVisualizer - scene is required: %w", core.ErrInvalidArgument)
		core.LogError(err.Error())
		return nil, err
	}
	cv := &ConeVisualizer{
		scene: s,
		cones: make(map[string]*coneEntry),
	}
	cv.SetDynamicObjectCollection(collection)
	return cv, nil
}

func (cv *ConeVisualizer) Scene() *scene.Scene {
	return cv.scene
}

func (cv *ConeVisualizer) DynamicObjectCollection() *dynamicscene.DynamicObjectCollection {
	return cv.collection
}

// SetDynamicObjectCollection swaps the observed collection. Sensors whose
// object id is not part of the new collection are removed; the others are
// refreshed by the next Update.
func (cv *ConeVisualizer) SetDynamicObjectCollection(collection *dynamicscene.DynamicObjectCollection) {
	if cv.destroyed || cv.collection == collection {
		return
	}
	if cv.subscription != nil {
		cv.subscription.Cancel()
		cv.subscription = nil
	}
	for id := range cv.cones {
		if collection == nil || !collection.Contains(id) {
			cv.removeCone(id)
		}
	}
	cv.collection = collection
	if collection != nil {
		cv.subscription = collection.Subscribe(cv.onCollectionChanged)
	}
}

// Update samples every object of the collection at time and brings the
// sensors up to date.
func (cv *ConeVisualizer) Update(time *core.JulianDate) error {
	if time == nil {
		return fmt.Errorf("func ConeVisualizer.Update - time is required: %w", core.ErrInvalidArgument)
	}
	if cv.destroyed {
		return fmt.Errorf("func ConeVisualizer.Update: %w", core.ErrDestroyed)
	}
	if cv.collection == nil {
		return nil
	}
	for _, object := range cv.collection.Objects() {
		cv.updateObject(*time, object)
	}
	return nil
}

func (cv *ConeVisualizer) updateObject(time core.JulianDate, object *dynamicscene.DynamicObject) {
	cone := object.Cone
	if cone == nil || object.Position == nil || object.Orientation == nil {
		return
	}
	if !object.IsAvailable(time) {
		return
	}
	position, ok := object.Position.Value(time)
	if !ok {
		return
	}
	orientation, ok := object.Orientation.Value(time)
	if !ok {
		return
	}

	entry, ok := cv.cones[object.ID()]
	if !ok {
		sensor := scene.NewComplexConicSensor()
		entry = &coneEntry{
			sensor: sensor,
			handle: cv.scene.Primitives().Add(sensor),
		}
		cv.cones[object.ID()] = entry
		core.LogDebug("created cone sensor %s for object '%s'", entry.handle, object.ID())
	}
	sensor := entry.sensor
	sensor.DynamicObject = object
	if entry.cleared {
		// Hidden by a clear, not by the object.
		sensor.Show = true
		entry.cleared = false
	}

	sample(time, cone.Show, &sensor.Show)
	sample(time, cone.MinimumClockAngle, &sensor.MinimumClockAngle)
	sample(time, cone.MaximumClockAngle, &sensor.MaximumClockAngle)
	sample(time, cone.InnerHalfAngle, &sensor.InnerHalfAngle)
	sample(time, cone.OuterHalfAngle, &sensor.OuterHalfAngle)
	sample(time, cone.Radius, &sensor.Radius)
	sample(time, cone.ShowIntersection, &sensor.ShowIntersection)
	sample(time, cone.IntersectionColor, &sensor.IntersectionColor)
	sample(time, cone.CapMaterial, &sensor.CapMaterial)
	sample(time, cone.InnerMaterial, &sensor.InnerMaterial)
	sample(time, cone.OuterMaterial, &sensor.OuterMaterial)
	sample(time, cone.SilhouetteMaterial, &sensor.SilhouetteMaterial)

	sensor.ModelMatrix = math.NewMat4FromOrientation(orientation, position)
}

// sample writes the value of p at time into target. A nil or undefined
// property leaves target as it was.
func sample[T any](time core.JulianDate, p property.Property[T], target *T) {
	if p == nil {
		return
	}
	if v, ok := p.Value(time); ok {
		*target = v
	}
}

func (cv *ConeVisualizer) onCollectionChanged(e dynamicscene.CollectionChangedEvent) {
	switch e.Kind {
	case dynamicscene.ObjectRemoved:
		for _, object := range e.Objects {
			cv.removeCone(object.ID())
		}
	case dynamicscene.CollectionCleared:
		for _, entry := range cv.cones {
			entry.sensor.Show = false
			entry.cleared = true
		}
	}
}

func (cv *ConeVisualizer) removeCone(id string) {
	entry, ok := cv.cones[id]
	if !ok {
		return
	}
	cv.scene.Primitives().Remove(entry.handle)
	delete(cv.cones, id)
	core.LogDebug("removed cone sensor %s for object '%s'", entry.handle, id)
}

// Destroy removes every sensor this visualizer created and stops listening to
// the collection. The visualizer cannot be used afterwards.
func (cv *ConeVisualizer) Destroy() {
	if cv.destroyed {
		return
	}
	if cv.subscription != nil {
		cv.subscription.Cancel()
		cv.subscription = nil
	}
	for id := range cv.cones {
		cv.removeCone(id)
	}
	cv.collection = nil
	cv.destroyed = true
}

func (cv *ConeVisualizer) IsDestroyed() bool {
	return cv.destroyed
}
