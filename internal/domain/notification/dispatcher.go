package notification

import (
	"context"
	"encoding/json"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/pubsub"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

// Dispatcher hands events to the delivery transport. Delivery is owned by
// another service; this side is fire and forget and must never block or fail
// the calling operation.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID string, ev Event)
}

type dispatcher struct {
	publisher pubsub.Publisher
}

func NewDispatcher(publisher pubsub.Publisher) *dispatcher {
	return &dispatcher{publisher: publisher}
}

func (d *dispatcher) Dispatch(ctx context.Context, userID string, ev Event) {
	msg, err := json.Marshal(EventRequest{Op: ev.Op(), To: userID, Data: ev})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot marshal %s event: %v", ev.Op(), err)
		return
	}

	topic := xcontext.Configs(ctx).Notification.Topic
	err = d.publisher.Publish(ctx, topic, &pubsub.Pack{Key: []byte(userID), Msg: msg})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish %s event: %v", ev.Op(), err)
	}
}
