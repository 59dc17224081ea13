package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventTypeCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	// CollisionEventEnemyContact fires every physics step the player overlaps
	// an enemy.
	CollisionEventEnemyContact CollisionEventKind = "enemy_contact"
	// CollisionEventFellOut fires when the player reaches the bottom edge.
	CollisionEventFellOut CollisionEventKind = "fell_out"
)

// CollisionEvent is emitted by the physics system and consumed later in the
// same frame.
type CollisionEvent struct {
	Entity   Entity
	Other    Entity
	Kind     CollisionEventKind
	Grounded bool
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushCollision adds a collision event.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	q.Push(Event{Type: EventTypeCollision, Data: evt})
}

// Collisions returns the queued collision events without consuming them.
func (q *EventQueue) Collisions() []CollisionEvent {
	if q == nil {
		return nil
	}
	var out []CollisionEvent
	for _, evt := range q.items {
		if c, ok := evt.Data.(CollisionEvent); ok && evt.Type == EventTypeCollision {
			out = append(out, c)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
