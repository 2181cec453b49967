package assets

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
)

// DocumentWatcher reloads a scene document whenever it changes on disk and
// hands the freshly built collection to the consumer. The consumer decides
// when to swap it in, so visualizers are only touched from its goroutine.
type DocumentWatcher struct {
	path string

	mutex    sync.Mutex
	isClosed bool

	done        chan struct{}
	stopped     chan struct{}
	fsnotify    *fsnotify.Watcher
	collections chan *dynamicscene.DynamicObjectCollection
	errors      chan error
}

func NewDocumentWatcher(path string) (*DocumentWatcher, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace files instead of writing them, which drops a watch
	// on the file itself, so the parent directory is watched.
	if err := fsWatch.Add(filepath.Dir(absolute)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	dw := &DocumentWatcher{
		path:        absolute,
		fsnotify:    fsWatch,
		collections: make(chan *dynamicscene.DynamicObjectCollection, 1),
		errors:      make(chan error, 1),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	go dw.start()
	return dw, nil
}

// Collections delivers a new collection after every successful reload.
func (dw *DocumentWatcher) Collections() <-chan *dynamicscene.DynamicObjectCollection {
	return dw.collections
}

// Errors delivers reload and watch failures.
func (dw *DocumentWatcher) Errors() <-chan error {
	return dw.errors
}

func (dw *DocumentWatcher) Path() string {
	return dw.path
}

// Close stops watching. Closing twice returns an error.
func (dw *DocumentWatcher) Close() error {
	dw.mutex.Lock()
	if dw.isClosed {
		dw.mutex.Unlock()
		return errors.New("document watcher already closed")
	}
	dw.isClosed = true
	dw.mutex.Unlock()

	close(dw.done)
	<-dw.stopped
	return nil
}

func (dw *DocumentWatcher) start() {
	defer close(dw.stopped)
	for {
		select {
		case e, ok := <-dw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != dw.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				dw.reload()
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				core.LogWarn("scene document '%s' was removed, keeping the current scene", dw.path)
			}

		case err, ok := <-dw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			dw.deliverError(err)

		case <-dw.done:
			dw.fsnotify.Close()
			return
		}
	}
}

func (dw *DocumentWatcher) reload() {
	collection, err := LoadCollection(dw.path)
	if err != nil {
		core.LogError("failed to reload scene document: %s", err.Error())
		dw.deliverError(err)
		return
	}
	core.LogInfo("reloaded scene document '%s' (%d objects)", dw.path, collection.Len())

	// Only the newest collection matters; drop one the consumer has not read yet.
	select {
	case <-dw.collections:
	default:
	}
	select {
	case dw.collections <- collection:
	case <-dw.done:
	}
}

func (dw *DocumentWatcher) deliverError(err error) {
	select {
	case dw.errors <- err:
	default:
		// The consumer is behind; the error was already logged.
	}
}
