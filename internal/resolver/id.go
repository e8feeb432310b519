package resolver

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
)

// idResolver correlates responses to Pendings by a 64-bit id carried on
// the wire. Used when the server's GetInfo response reports
// has_message_id=true. Supports out-of-order responses on the same
// operation.
type idResolver struct {
	mu      sync.Mutex
	pending map[uint64]*Pending
}

// NewID constructs the id-based Resolver variant.
func NewID() Resolver {
	return &idResolver{pending: make(map[uint64]*Pending)}
}

func randomID() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("rpcclient: generate correlation id: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (r *idResolver) Register(op appmessage.RPCOp, req *appmessage.Request, timeout time.Duration) (*Pending, error) {
	id, err := randomID()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, collides := r.pending[id]; collides {
		// Negligible under uniform 64-bit ids; a collision with a live
		// Pending is a programmer/PRNG error and must be surfaced, not
		// silently merged (spec.md §3).
		return nil, fmt.Errorf("%w: id=%d", appmessage.ErrIDCollision, id)
	}

	req.ID = id
	req.HasID = true

	p := newPending(op, id, true, "", time.Now().Add(timeout))
	r.pending[id] = p
	return p, nil
}

func (r *idResolver) Complete(resp *appmessage.Response) {
	if !resp.HasID {
		return
	}

	r.mu.Lock()
	p, ok := r.pending[resp.ID]
	if ok {
		delete(r.pending, resp.ID)
	}
	r.mu.Unlock()

	if !ok {
		// Unexpected response: no matching Pending under id-based
		// resolver. Non-fatal per spec.md §4.1.
		return
	}
	p.complete(resp)
}

func (r *idResolver) Reap(now time.Time) {
	var expired []*Pending

	r.mu.Lock()
	for id, p := range r.pending {
		if !now.Before(p.Deadline) {
			expired = append(expired, p)
			delete(r.pending, id)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.complete(&appmessage.Response{Op: p.Op, ID: p.ID, HasID: true, Err: appmessage.ErrCallTimeout})
	}
}

func (r *idResolver) CancelAll() {
	r.mu.Lock()
	cancelled := make([]*Pending, 0, len(r.pending))
	for id, p := range r.pending {
		cancelled = append(cancelled, p)
		delete(r.pending, id)
	}
	r.mu.Unlock()

	for _, p := range cancelled {
		p.complete(&appmessage.Response{Op: p.Op, ID: p.ID, HasID: true, Err: appmessage.ErrCallCancelled})
	}
}

func (r *idResolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
