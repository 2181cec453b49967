package core

// Event is a synchronous, single-threaded notification channel. Listeners are
// called in registration order on the goroutine that raises the event.
type Event[T any] struct {
	listeners []*registeredListener[T]
}

type registeredListener[T any] struct {
	callback func(T)
}

// Subscription is returned by Event.Subscribe and detaches the listener when
// cancelled.
type Subscription struct {
	cancel    func()
	cancelled bool
}

// Cancel stops delivery to the listener. Calling it more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.cancel()
}

// Cancelled reports whether Cancel has been called.
func (s *Subscription) Cancelled() bool {
	return s != nil && s.cancelled
}

// Subscribe registers callback and returns the handle used to remove it.
func (e *Event[T]) Subscribe(callback func(T)) *Subscription {
	l := &registeredListener[T]{callback: callback}
	e.listeners = append(e.listeners, l)
	return &Subscription{
		cancel: func() { e.unsubscribe(l) },
	}
}

func (e *Event[T]) unsubscribe(l *registeredListener[T]) {
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Raise delivers data to every listener registered at the time of the call.
// Listeners removed while the event is being raised are not called.
func (e *Event[T]) Raise(data T) {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := make([]*registeredListener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		if !e.isRegistered(l) {
			continue
		}
		l.callback(data)
	}
}

func (e *Event[T]) isRegistered(l *registeredListener[T]) bool {
	for _, existing := range e.listeners {
		if existing == l {
			return true
		}
	}
	return false
}

func (e *Event[T]) NumberOfListeners() int {
	return len(e.listeners)
}
