package events

import "github.com/Rakly3/CursorDemo/engine/mathutil"

// Event represents a demo event
type Event struct {
	Type    Type
	Frame   uint64
	Payload interface{}
}

type Type uint16

const (
	EvtSpawn Type = iota
	EvtSceneChange
	EvtReset
	EvtClick
	EvtRightClick
	EvtConfigReload
	EvtAlert
	EvtQuit
)

// SpawnPayload asks the particle system for an effect burst.
type SpawnPayload struct {
	Effect string
	Pos    mathutil.Vec2
	Count  int
}

// ScenePayload announces the newly active scene.
type ScenePayload struct {
	Index int
	Name  string
}

// ClickPayload carries the cursor position of a click.
type ClickPayload struct {
	Pos mathutil.Vec2
}

// AlertPayload carries a performance warning for the HUD.
type AlertPayload struct {
	Message string
}

// Bus dispatches events to listeners
type Bus struct {
	listeners map[Type][]Handler
	queue     []Event
}

type Handler func(e Event)

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Type][]Handler),
	}
}

// On registers a handler for an event type
func (b *Bus) On(t Type, h Handler) {
	b.listeners[t] = append(b.listeners[t], h)
}

// Emit queues an event for dispatch
func (b *Bus) Emit(e Event) {
	b.queue = append(b.queue, e)
}

// Dispatch processes all queued events. Events emitted by handlers
// during dispatch are held for the next call.
func (b *Bus) Dispatch() {
	pending := b.queue
	b.queue = nil
	for _, e := range pending {
		if handlers, ok := b.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int { return len(b.queue) }
