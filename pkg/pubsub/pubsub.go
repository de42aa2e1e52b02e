package pubsub

import "context"

// Pack is one opaque message on the bus.
type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(ctx context.Context, topic string, pack *Pack) error
	Stop(ctx context.Context) error
}

type nopPublisher struct{}

// NewNopPublisher drops every message. It stands in for kafka when no broker
// is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(ctx context.Context, topic string, pack *Pack) error {
	return nil
}

func (nopPublisher) Stop(ctx context.Context) error {
	return nil
}
