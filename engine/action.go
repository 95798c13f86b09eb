package engine

import (
	"context"
	"time"

	"github.com/MixinNetwork/uniques/uniques"
)

const (
	ActionStateInitial = 10
	ActionStateDone    = 11
)

// Action is one queued command. The trace id is derived from the sender and
// the command digest, so resubmitting the same command is a no-op.
type Action struct {
	TraceID   string
	Sender    string
	Command   []byte
	State     int
	Error     string
	CreatedAt time.Time
}

// Store is what the engine needs from persistence: the transactional state
// commands run in, plus the action queue records.
type Store interface {
	Update(fn func(uniques.State) error) error
	View(fn func(uniques.State) error) error

	WriteAction(act *Action) error
	ReadAction(traceID string) (*Action, error)
	ListActions(state int, limit int) ([]*Action, error)
}

// Sink receives events for committed commands, in commit order.
type Sink interface {
	OnEvent(ctx context.Context, ev *uniques.Event)
}
