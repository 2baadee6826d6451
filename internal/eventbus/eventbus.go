// Package eventbus is an in-process publish/subscribe fan-out used to hand
// snapshot events from the sweep to the metrics collector and publishers.
package eventbus

// DefaultBuffer is the subscriber channel capacity used by Subscribe.
const DefaultBuffer = 8

// EventBus is a publish/subscribe bus for events of type T.
type EventBus[T any] interface {
	Publish(T)
	Subscribe() <-chan T
	SubscribeBuffered(n int) <-chan T
	Unsubscribe(<-chan T)
	Close()
}

var _ EventBus[int] = (*TypedBus[int])(nil)
