// Package transport provides the duplex message stream the session reads
// from and writes to. Wire-format encoding of individual payloads is an
// external concern (spec.md §1 non-goals); Stream only moves opaque
// *appmessage.Envelope values.
package transport

import "github.com/nodewire/rpcclient/appmessage"

// Stream is the duplex byte/message channel the Session is built on top
// of. There is exactly one sender (the session's send-queue consumer)
// and exactly one receiver (the session's receive task) per Stream.
type Stream interface {
	// Send delivers env to the peer. Send is only ever called by the
	// session's single send-queue consumer goroutine.
	Send(env *appmessage.Envelope) error

	// Recv blocks until the next inbound Envelope is available, or
	// returns appmessage.ErrStreamClosed at end-of-stream.
	Recv() (*appmessage.Envelope, error)

	// CloseSend signals the peer that no further Requests will be sent.
	CloseSend() error
}
