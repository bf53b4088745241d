package service

import (
	"context"

	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

// activity publishes an event after a committed mutation. Publishing is
// best effort: failures are logged and never reach the caller.
type activity struct {
	pub pubsub.Publisher
}

func newActivity(pub pubsub.Publisher) activity {
	if pub == nil {
		pub = pubsub.NopPublisher{}
	}
	return activity{pub: pub}
}

func (a activity) publish(ctx context.Context, entity, eventType, subjectID, actorID string, payload interface{}) {
	l := log.Ctx(ctx)

	event, err := pubsub.NewEvent(eventType, subjectID, actorID, payload)
	if err != nil {
		l.Warn().Err(err).Str("event", eventType).Msg("failed to build activity event")
		return
	}
	if err := a.pub.Publish(ctx, pubsub.ActivityChannel(entity), event); err != nil {
		l.Warn().Err(err).Str("event", eventType).Str(log.FieldTargetID, subjectID).Msg("failed to publish activity event")
	}
}
