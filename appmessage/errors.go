package appmessage

import "errors"

// Call errors (spec.md §7 "Call" and "Protocol" taxonomy).
var (
	// ErrMissingPayload is returned when a caller invokes Call with a nil
	// request payload. Programmer error, never a server condition.
	ErrMissingPayload = errors.New("rpcclient: request missing payload")

	// ErrSendChannelClosed is returned by Call once the session's send
	// queue has been closed, and by any operation attempted after
	// Shutdown has completed.
	ErrSendChannelClosed = errors.New("rpcclient: send channel closed")

	// ErrCallTimeout is delivered to a Pending's waiter when the reaper
	// observes its deadline has elapsed.
	ErrCallTimeout = errors.New("rpcclient: call timed out")

	// ErrCallCancelled is delivered to every outstanding Pending when the
	// session shuts down.
	ErrCallCancelled = errors.New("rpcclient: call cancelled")

	// ErrUnsupported is returned when a caller explicitly requests a
	// wire-level operation the server does not support (e.g. StopNotify
	// when has_notify_command is false).
	ErrUnsupported = errors.New("rpcclient: operation unsupported by server")

	// ErrIDCollision is a diagnostic error for the id-based resolver: a
	// freshly generated id collided with a still-live Pending. This is a
	// programmer/PRNG error and must never be silently merged.
	ErrIDCollision = errors.New("rpcclient: correlation id collision")

	// ErrStreamClosed marks a transport that has reached end-of-stream.
	ErrStreamClosed = errors.New("rpcclient: stream closed")
)
