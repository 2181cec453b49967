package dynamicscene

import (
	"github.com/spaghettifunk/geoscene/engine/core"
)

// ChangeKind tells listeners how a collection's membership changed.
type ChangeKind uint8

const (
	ObjectAdded ChangeKind = iota
	ObjectRemoved
	// Every object was removed at once.
	CollectionCleared
)

func (k ChangeKind) String() string {
	switch k {
	case ObjectAdded:
		return "added"
	case ObjectRemoved:
		return "removed"
	case CollectionCleared:
		return "cleared"
	}
	return "unknown"
}

// CollectionChangedEvent is delivered synchronously to subscribers.
type CollectionChangedEvent struct {
	Collection *DynamicObjectCollection
	Kind       ChangeKind
	// The objects added or removed by the change.
	Objects []*DynamicObject
}

// DynamicObjectCollection is an ordered set of objects keyed by id. It is not
// safe for concurrent use.
type DynamicObjectCollection struct {
	objects []*DynamicObject
	byID    map[string]*DynamicObject
	changed core.Event[CollectionChangedEvent]
}

func NewDynamicObjectCollection() *DynamicObjectCollection {
	return &DynamicObjectCollection{
		byID: make(map[string]*DynamicObject),
	}
}

// Subscribe registers a listener for membership changes.
func (c *DynamicObjectCollection) Subscribe(listener func(CollectionChangedEvent)) *core.Subscription {
	return c.changed.Subscribe(listener)
}

func (c *DynamicObjectCollection) GetObject(id string) (*DynamicObject, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// Contains reports whether an object with the given id is a member.
func (c *DynamicObjectCollection) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// GetOrCreateObject returns the object with the given id, creating and adding
// it when missing.
func (c *DynamicObjectCollection) GetOrCreateObject(id string) *DynamicObject {
	if o, ok := c.byID[id]; ok {
		return o
	}
	o := NewDynamicObject(id)
	c.add(o)
	return o
}

// Add inserts an existing object. It returns false when the id is taken.
func (c *DynamicObjectCollection) Add(o *DynamicObject) bool {
	if _, ok := c.byID[o.ID()]; ok {
		return false
	}
	c.add(o)
	return true
}

func (c *DynamicObjectCollection) add(o *DynamicObject) {
	c.objects = append(c.objects, o)
	c.byID[o.ID()] = o
	c.changed.Raise(CollectionChangedEvent{
		Collection: c,
		Kind:       ObjectAdded,
		Objects:    []*DynamicObject{o},
	})
}

// RemoveObject removes the object with the given id and reports whether it was
// a member.
func (c *DynamicObjectCollection) RemoveObject(id string) bool {
	o, ok := c.byID[id]
	if !ok {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.objects {
		if existing == o {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			break
		}
	}
	c.changed.Raise(CollectionChangedEvent{
		Collection: c,
		Kind:       ObjectRemoved,
		Objects:    []*DynamicObject{o},
	})
	return true
}

// Clear removes every object. Nothing is raised for an empty collection.
func (c *DynamicObjectCollection) Clear() {
	if len(c.objects) == 0 {
		return
	}
	removed := c.objects
	c.objects = nil
	c.byID = make(map[string]*DynamicObject)
	c.changed.Raise(CollectionChangedEvent{
		Collection: c,
		Kind:       CollectionCleared,
		Objects:    removed,
	})
}

// Objects returns the members in insertion order. The slice is a copy.
func (c *DynamicObjectCollection) Objects() []*DynamicObject {
	out := make([]*DynamicObject, len(c.objects))
	copy(out, c.objects)
	return out
}

func (c *DynamicObjectCollection) Len() int {
	return len(c.objects)
}
