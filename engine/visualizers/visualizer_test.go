package visualizers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

type failingVisualizer struct {
	updates   int
	destroyed bool
}

var errFailing = errors.New("failing visualizer")

func (f *failingVisualizer) Update(*core.JulianDate) error {
	f.updates++
	return errFailing
}

func (f *failingVisualizer) SetDynamicObjectCollection(*dynamicscene.DynamicObjectCollection) {}

func (f *failingVisualizer) Destroy() { f.destroyed = true }

func (f *failingVisualizer) IsDestroyed() bool { return f.destroyed }

func TestVisualizerCollectionDrivesVisualizers(t *testing.T) {
	s := scene.New()
	collection := dynamicscene.NewDynamicObjectCollection()
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())

	vc, err := NewVisualizerCollection(s, collection, ConeFactory)
	require.NoError(t, err)
	require.Len(t, vc.Visualizers(), 1)
	assert.Same(t, s, vc.Scene())

	require.NoError(t, vc.Update(&testTime))
	assert.Equal(t, 1, s.Primitives().Len())

	next := dynamicscene.NewDynamicObjectCollection()
	vc.SetDynamicObjectCollection(next)
	assert.Same(t, next, vc.DynamicObjectCollection())
	assert.Equal(t, 0, s.Primitives().Len())

	vc.Destroy()
	assert.True(t, vc.IsDestroyed())
	assert.ErrorIs(t, vc.Update(&testTime), core.ErrDestroyed)
}

func TestVisualizerCollectionJoinsErrors(t *testing.T) {
	s := scene.New()
	failing := &failingVisualizer{}
	vc, err := NewVisualizerCollection(s, nil,
		func(*scene.Scene, *dynamicscene.DynamicObjectCollection) (Visualizer, error) { return failing, nil },
		ConeFactory,
	)
	require.NoError(t, err)

	err = vc.Update(&testTime)
	assert.ErrorIs(t, err, errFailing)
	assert.Equal(t, 1, failing.updates)

	assert.ErrorIs(t, vc.Update(nil), core.ErrInvalidArgument)
	assert.Equal(t, 1, failing.updates)

	vc.Destroy()
	assert.True(t, failing.destroyed)
}

func TestVisualizerCollectionRequiresScene(t *testing.T) {
	_, err := NewVisualizerCollection(nil, nil, ConeFactory)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestVisualizerCollectionCleansUpOnFactoryError(t *testing.T) {
	created := &failingVisualizer{}
	_, err := NewVisualizerCollection(scene.New(), nil,
		func(*scene.Scene, *dynamicscene.DynamicObjectCollection) (Visualizer, error) { return created, nil },
		func(*scene.Scene, *dynamicscene.DynamicObjectCollection) (Visualizer, error) { return nil, errFailing },
	)
	assert.ErrorIs(t, err, errFailing)
	assert.True(t, created.destroyed)
}
