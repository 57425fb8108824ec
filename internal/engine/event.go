package engine

// ListenerID identifies a subscription so it can be removed later.
// Function values can't be compared in Go, so listeners are tracked by ID.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Event is a Unity-style multi-cast event system.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	inner EventWithArg[struct{}]
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

// RemoveListener drops the subscription returned by AddListener.
func (e *Event) RemoveListener(id ListenerID) {
	e.inner.RemoveListener(id)
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return e.inner.GetListenerCount()
}

// EventWithArg is a generic event with one argument.
// Listeners run synchronously, in subscription order.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) Invoke(arg T) {
	// Snapshot so listeners may unsubscribe while the event is firing.
	snapshot := e.listeners
	for _, l := range snapshot {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
