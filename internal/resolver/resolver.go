// Package resolver matches inbound Responses to outbound Pendings and
// expires Pendings whose deadline has elapsed. It implements spec.md §4.1.
package resolver

import (
	"time"

	"github.com/nodewire/rpcclient/appmessage"
)

// Pending is a tuple of (operation tag, optional correlation id,
// deadline, one-shot completion handle). A Pending exists iff a caller
// is waiting for a matching response.
type Pending struct {
	Op       appmessage.RPCOp
	ID       uint64
	HasID    bool
	Key      string // distinguishing key for queue mode; unused in id mode
	Deadline time.Time
	done     chan *appmessage.Response
}

// Wait blocks until the Pending is completed (naturally, by timeout, or
// by cancellation) and returns the delivered Response.
func (p *Pending) Wait() *appmessage.Response {
	return <-p.done
}

func newPending(op appmessage.RPCOp, id uint64, hasID bool, key string, deadline time.Time) *Pending {
	return &Pending{Op: op, ID: id, HasID: hasID, Key: key, Deadline: deadline, done: make(chan *appmessage.Response, 1)}
}

func (p *Pending) complete(resp *appmessage.Response) {
	p.done <- resp
}

// Resolver is the capability-set interface spec.md §9 calls for: a small
// tagged-variant contract dispatched statically by the Session rather
// than through inheritance.
type Resolver interface {
	// Register assigns correlation state (for id mode, a fresh id is
	// written back onto req) and returns a Pending the caller awaits.
	Register(op appmessage.RPCOp, req *appmessage.Request, timeout time.Duration) (*Pending, error)

	// Complete delivers resp to its matching Pending, if any. A response
	// with no match is dropped (diagnostic only), never attached to an
	// arbitrary Pending.
	Complete(resp *appmessage.Response)

	// Reap removes and times out every Pending whose deadline is <= now.
	Reap(now time.Time)

	// CancelAll completes every outstanding Pending with
	// appmessage.ErrCallCancelled. Used by Session.Shutdown.
	CancelAll()

	// Len reports the number of outstanding Pendings (for tests/metrics).
	Len() int
}
