package scene

import (
	"github.com/spaghettifunk/geoscene/engine/core"
)

// Primitive is anything that can live in a PrimitiveCollection.
type Primitive interface {
	Destroy()
	IsDestroyed() bool
}

type primitiveEntry struct {
	handle    core.Handle
	primitive Primitive
}

// PrimitiveCollection is the ordered primitive registry of a scene.
type PrimitiveCollection struct {
	entries []primitiveEntry
}

func NewPrimitiveCollection() *PrimitiveCollection {
	return &PrimitiveCollection{}
}

// Add appends primitive and returns the handle used to remove it.
func (pc *PrimitiveCollection) Add(primitive Primitive) core.Handle {
	h := core.NewHandle()
	pc.entries = append(pc.entries, primitiveEntry{handle: h, primitive: primitive})
	return h
}

// Remove destroys and drops the primitive with the given handle. It reports
// whether the handle was found.
func (pc *PrimitiveCollection) Remove(handle core.Handle) bool {
	for i, e := range pc.entries {
		if e.handle == handle {
			pc.entries = append(pc.entries[:i], pc.entries[i+1:]...)
			e.primitive.Destroy()
			return true
		}
	}
	return false
}

// RemoveAll destroys every primitive in the collection.
func (pc *PrimitiveCollection) RemoveAll() {
	for _, e := range pc.entries {
		e.primitive.Destroy()
	}
	pc.entries = nil
}

func (pc *PrimitiveCollection) Contains(handle core.Handle) bool {
	for _, e := range pc.entries {
		if e.handle == handle {
			return true
		}
	}
	return false
}

func (pc *PrimitiveCollection) Len() int {
	return len(pc.entries)
}

// Get returns the primitive at index i, in insertion order.
func (pc *PrimitiveCollection) Get(i int) Primitive {
	return pc.entries[i].primitive
}

// Each visits the primitives in insertion order.
func (pc *PrimitiveCollection) Each(fn func(handle core.Handle, primitive Primitive)) {
	for _, e := range pc.entries {
		fn(e.handle, e.primitive)
	}
}
