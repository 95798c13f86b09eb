package main

import (
	"context"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/uniques/uniques"
)

// EventLogger echoes every committed event to the log.
type EventLogger struct{}

func (el *EventLogger) OnEvent(ctx context.Context, ev *uniques.Event) {
	if ev.Item != nil {
		logger.Printf("%s collection %d item %d %s\n", ev.KindName(), ev.Collection, *ev.Item, ev.Account)
		return
	}
	logger.Printf("%s collection %d %s\n", ev.KindName(), ev.Collection, ev.Account)
}
