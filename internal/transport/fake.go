package transport

import (
	"sync"

	"github.com/nodewire/rpcclient/appmessage"
)

// Fake is an in-memory Stream used by tests in internal/session:
// everything sent with Send is observable via Sent(),
// and test code pushes inbound envelopes with Push for Recv to return.
type Fake struct {
	mu         sync.Mutex
	sent       []*appmessage.Envelope
	inbox      chan *appmessage.Envelope
	closed     bool
	inboxClosed bool
}

// NewFake returns a ready-to-use Fake with the given inbound buffer size.
func NewFake(inboxSize int) *Fake {
	return &Fake{inbox: make(chan *appmessage.Envelope, inboxSize)}
}

func (f *Fake) Send(env *appmessage.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return appmessage.ErrSendChannelClosed
	}
	f.sent = append(f.sent, env)
	return nil
}

func (f *Fake) Recv() (*appmessage.Envelope, error) {
	env, ok := <-f.inbox
	if !ok {
		return nil, appmessage.ErrStreamClosed
	}
	return env, nil
}

func (f *Fake) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Push makes env available to the next Recv call.
func (f *Fake) Push(env *appmessage.Envelope) {
	f.inbox <- env
}

// CloseInbox simulates the peer closing the stream: the next Recv
// observes end-of-stream. Idempotent.
func (f *Fake) CloseInbox() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inboxClosed {
		return
	}
	f.inboxClosed = true
	close(f.inbox)
}

// Close implements io.Closer so a *Fake can double as the Session's
// shutdown closer: it unblocks a Recv parked on the inbox channel the
// same way closing a real network connection would.
func (f *Fake) Close() error {
	f.CloseInbox()
	return nil
}

// Sent returns a snapshot of every envelope handed to Send so far.
func (f *Fake) Sent() []*appmessage.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*appmessage.Envelope, len(f.sent))
	copy(out, f.sent)
	return out
}
