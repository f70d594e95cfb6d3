package event

// Handler processes one published event.
type Handler func(Event)

// Bus is a synchronous, kind-keyed publish/subscribe registry.
//
//   - Publish calls handlers in the caller goroutine, in subscription order,
//     and returns after the last one.
//   - Handlers cannot be removed individually; Clear drops all of them.
//   - Each session owns its own Bus. It is not safe for concurrent use.
type Bus struct {
	handlers map[Kind][]Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe appends h to the handlers of kind.
func (b *Bus) Subscribe(kind Kind, h Handler) {
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Publish delivers ev to every handler subscribed to ev.Kind().
//
// The handler list is snapshotted when Publish starts: a handler subscribed
// during delivery does not receive the in-flight event. A handler may
// publish again (same kind or not); the nested delivery completes before the
// outer one continues.
func (b *Bus) Publish(ev Event) {
	for _, h := range b.handlers[ev.Kind()] {
		h(ev)
	}
}

// Clear drops every subscription for every kind.
func (b *Bus) Clear() {
	b.handlers = make(map[Kind][]Handler)
}

// Handlers returns the number of handlers subscribed to kind.
func (b *Bus) Handlers(kind Kind) int {
	return len(b.handlers[kind])
}

// On subscribes a handler typed by its payload. The kind is taken from the
// zero value of T.
func On[T Event](b *Bus, fn func(T)) {
	var zero T
	b.Subscribe(zero.Kind(), func(ev Event) {
		if v, ok := ev.(T); ok {
			fn(v)
		}
	})
}
