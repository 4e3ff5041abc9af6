package ecs

// EventType identifies world events.
type EventType string

const (
	EventBallGrabbed  EventType = "ball_grabbed"
	EventBallReleased EventType = "ball_released"
	EventBallBounced  EventType = "ball_bounced"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// Edge names the playfield edge a ball bounced off.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// BounceEvent is the payload of EventBallBounced.
type BounceEvent struct {
	Edge     Edge
	Velocity float64
}

// ReleaseEvent is the payload of EventBallReleased.
type ReleaseEvent struct {
	VelocityX float64
	VelocityY float64
	Elapsed   float64
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
