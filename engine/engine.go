package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
)

// Engine drains queued actions in order and executes each one as a single
// atomic command against the store. Events reach sinks only after the
// command's transaction commits, a failed command flushes nothing.
type Engine struct {
	store  Store
	pallet *uniques.Pallet
	force  string
	sinks  []Sink
}

func Build(store Store, pallet *uniques.Pallet, force string) *Engine {
	return &Engine{
		store:  store,
		pallet: pallet,
		force:  force,
	}
}

func (e *Engine) AddSink(sink Sink) {
	e.sinks = append(e.sinks, sink)
}

// Queue appends a command for the sender. The trace id is deterministic in
// (sender, command), queueing the same command twice is a no-op and returns
// the original trace id.
func (e *Engine) Queue(ctx context.Context, sender string, cmd *Command) (string, error) {
	id, err := uuid.FromString(sender)
	if err != nil || id.String() == uuid.Nil.String() {
		return "", fmt.Errorf("invalid sender %s", sender)
	}
	raw := EncodeCommand(cmd)
	digest := crypto.NewHash(raw)
	traceId := mixin.UniqueConversationID(sender, digest.String())
	old, err := e.store.ReadAction(traceId)
	if err != nil || old != nil {
		return traceId, err
	}
	act := &Action{
		TraceID:   traceId,
		Sender:    sender,
		Command:   raw,
		State:     ActionStateInitial,
		CreatedAt: time.Now(),
	}
	return traceId, e.store.WriteAction(act)
}

func (e *Engine) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := e.Drain(ctx, 16)
		if err != nil {
			logger.Printf("engine.Drain %v\n", err)
		}
		if n == 0 {
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// Drain executes up to limit queued actions in queue order and returns how
// many it processed.
func (e *Engine) Drain(ctx context.Context, limit int) (int, error) {
	acts, err := e.store.ListActions(ActionStateInitial, limit)
	if err != nil {
		return 0, err
	}
	for _, act := range acts {
		err = e.executeAction(ctx, act)
		if err != nil {
			return 0, err
		}
	}
	return len(acts), nil
}

// executeAction runs the action's command in one store transaction, then
// marks the action done, recording the command error verbatim if any.
func (e *Engine) executeAction(ctx context.Context, act *Action) error {
	cmd, err := DecodeCommand(act.Command)
	if err != nil {
		return e.finishAction(act, nil, err)
	}
	origin := uniques.SignedOrigin(act.Sender)
	if e.force != "" && act.Sender == e.force {
		origin = uniques.ForceOrigin()
	}
	var evs []uniques.Event
	err = e.store.Update(func(s uniques.State) error {
		_, err := s.IncrementHeight()
		if err != nil {
			return err
		}
		evs, err = e.apply(s, origin, cmd)
		return err
	})
	if err != nil {
		evs = nil
	}
	ferr := e.finishAction(act, evs, err)
	if ferr != nil {
		return ferr
	}
	for i := range evs {
		for _, sink := range e.sinks {
			sink.OnEvent(ctx, &evs[i])
		}
	}
	return nil
}

func (e *Engine) finishAction(act *Action, evs []uniques.Event, cmdErr error) error {
	act.State = ActionStateDone
	if cmdErr != nil {
		act.Error = cmdErr.Error()
		logger.Verbosef("action %s failed: %v\n", act.TraceID, cmdErr)
	} else {
		logger.Verbosef("action %s done, %d events\n", act.TraceID, len(evs))
	}
	return e.store.WriteAction(act)
}
