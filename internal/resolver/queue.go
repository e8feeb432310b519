package resolver

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
)

// queueResolver correlates responses to Pendings by arrival order per
// operation, for servers that do not support per-message ids
// (has_message_id=false). Requests whose payload carries a distinguishing
// key are queued under that key so interleaved calls for different
// blocks/transactions/etc. do not cross-match (spec.md §4.1).
type queueResolver struct {
	mu     sync.Mutex
	queues map[string]*list.List // key -> *list.List of *Pending
}

// NewQueue constructs the queue-based Resolver variant.
func NewQueue() Resolver {
	return &queueResolver{queues: make(map[string]*list.List)}
}

// distinguishingKey returns the FIFO queue key for a request payload: the
// operation tag, optionally refined by a payload-specific identifier for
// operations whose requests are not idempotent under reordering. Only
// GetBlock and GetMempoolEntry carry a key the corresponding response
// also echoes back (Hash / TransactionID); every other operation falls
// back to plain per-operation FIFO, which assumes in-order responses
// per spec.md §9's open question on queue-resolver cross-matching.
func distinguishingKey(op appmessage.RPCOp, req *appmessage.Request) string {
	switch p := req.Payload.(type) {
	case *appmessage.GetBlockRequest:
		return fmt.Sprintf("%s:%x", op, p.Hash)
	case *appmessage.GetMempoolEntryRequest:
		return fmt.Sprintf("%s:%x", op, p.TransactionID)
	default:
		return op.String()
	}
}

// distinguishingKeyFromResponse mirrors distinguishingKey for the
// matching response payload, so Complete can recover the same queue key
// the original request was filed under.
func distinguishingKeyFromResponse(op appmessage.RPCOp, resp *appmessage.Response) string {
	switch p := resp.Payload.(type) {
	case *appmessage.GetBlockResponse:
		return fmt.Sprintf("%s:%x", op, p.Hash)
	case *appmessage.GetMempoolEntryResponse:
		return fmt.Sprintf("%s:%x", op, p.TransactionID)
	default:
		return op.String()
	}
}

func (r *queueResolver) Register(op appmessage.RPCOp, req *appmessage.Request, timeout time.Duration) (*Pending, error) {
	key := distinguishingKey(op, req)
	p := newPending(op, 0, false, key, time.Now().Add(timeout))

	r.mu.Lock()
	q, ok := r.queues[key]
	if !ok {
		q = list.New()
		r.queues[key] = q
	}
	q.PushBack(p)
	r.mu.Unlock()

	return p, nil
}

// Complete matches resp against the head of its operation's queue (or,
// for keyed operations, the head of that key's sub-queue). A response
// with no matching head is dropped (spec.md §4.1: "never attached to an
// arbitrary Pending").
func (r *queueResolver) Complete(resp *appmessage.Response) {
	key := distinguishingKeyFromResponse(resp.Op, resp)

	r.mu.Lock()
	q, ok := r.queues[key]
	var p *Pending
	if ok && q.Len() > 0 {
		front := q.Front()
		p = front.Value.(*Pending)
		q.Remove(front)
	}
	r.mu.Unlock()

	if p == nil {
		return
	}
	p.complete(resp)
}

func (r *queueResolver) Reap(now time.Time) {
	var expired []*Pending

	r.mu.Lock()
	for _, q := range r.queues {
		var next *list.Element
		for e := q.Front(); e != nil; e = next {
			next = e.Next()
			p := e.Value.(*Pending)
			if !now.Before(p.Deadline) {
				expired = append(expired, p)
				q.Remove(e)
			} else {
				// Queue order means later entries have later or equal
				// deadlines in practice, but a strict scan keeps the
				// invariant correct even if timeouts vary per call.
				continue
			}
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.complete(&appmessage.Response{Op: p.Op, Err: appmessage.ErrCallTimeout})
	}
}

func (r *queueResolver) CancelAll() {
	r.mu.Lock()
	var cancelled []*Pending
	for _, q := range r.queues {
		for e := q.Front(); e != nil; e = e.Next() {
			cancelled = append(cancelled, e.Value.(*Pending))
		}
	}
	r.queues = make(map[string]*list.List)
	r.mu.Unlock()

	for _, p := range cancelled {
		p.complete(&appmessage.Response{Op: p.Op, Err: appmessage.ErrCallCancelled})
	}
}

func (r *queueResolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, q := range r.queues {
		n += q.Len()
	}
	return n
}
