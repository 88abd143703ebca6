// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is a dispatched event.
type Event struct {
	Type EventType
	Data any // payload, see types.go
}

// Listener receives events it subscribed to
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to listeners on the caller's goroutine.
// Systems that iterate component maps Queue their events and the game loop
// Flushes them at the end of the tick, so listeners never mutate a map
// that is being ranged over.
type Dispatcher struct {
	listeners map[EventType][]Listener
	pending   []Event
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener.
// Only comparable listeners (pointers) can be removed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers event immediately, in subscription order.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue holds event until the next Flush.
func (d *Dispatcher) Queue(event Event) {
	d.pending = append(d.pending, event)
}

// Flush dispatches queued events in the order they were queued. Events queued
// by listeners during the flush are delivered in the same call.
func (d *Dispatcher) Flush() {
	for i := 0; i < len(d.pending); i++ {
		d.Dispatch(d.pending[i])
	}
	d.pending = d.pending[:0]
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}
