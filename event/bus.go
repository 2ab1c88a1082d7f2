// Package event implements a synchronous in-process event bus. Handlers
// for a name run in registration order on the emitting goroutine. A Bus
// is owned by the game's frame loop goroutine and does no locking.
package event

// Handler receives the arguments passed to Emit
type Handler func(args ...any)

// Event names emitted by the loop package
const (
	// Init fires once before the first frame
	Init = "init"

	// Tick fires before every fixed update step
	Tick = "tick"
)

// Subscription identifies one registration with a bus. The zero value is
// not a valid subscription and Off treats it as a no-op.
type Subscription struct {
	name string
	id   uint64
}

type registration struct {
	id uint64
	fn Handler
}

// Bus routes named events to handlers. Create with NewBus and pass by
// reference; there is no package-level bus.
type Bus struct {
	handlers map[string][]registration
	nextID   uint64
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]registration)}
}

// On registers fn to run on every Emit of name and returns its handle.
// The same func can be registered repeatedly; each call is a distinct
// subscription and fires separately.
func (b *Bus) On(name string, fn Handler) Subscription {
	b.nextID++
	id := b.nextID
	b.handlers[name] = append(b.handlers[name], registration{id: id, fn: fn})
	return Subscription{name: name, id: id}
}

// Off cancels a subscription. Unknown, stale, or zero handles are a
// silent no-op. The handler list is rebuilt rather than mutated so an
// emit already walking it is undisturbed.
func (b *Bus) Off(sub Subscription) {
	regs := b.handlers[sub.name]
	for i, r := range regs {
		if r.id == sub.id {
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, sub.name)
			} else {
				b.handlers[sub.name] = next
			}
			return
		}
	}
}

// Emit invokes name's handlers in registration order, passing args
// through. The list is captured at entry: handlers added during fan-out
// wait for the next emit, handlers removed during fan-out still run this
// one. A handler panic propagates to the caller and aborts the rest of
// the fan-out.
func (b *Bus) Emit(name string, args ...any) {
	for _, r := range b.handlers[name] {
		r.fn(args...)
	}
}
