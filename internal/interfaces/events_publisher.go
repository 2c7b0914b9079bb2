package interfaces

// EventPublisher emits domain events (payment completed, friendship created)
// to an external broker. Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(topic string, event any) error
}
