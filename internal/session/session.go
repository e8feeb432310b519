// Package session owns the duplex transport stream and the three
// cooperating background tasks (send, receive, reaper) described in
// spec.md §4.2 and §5.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/nodewire/rpcclient/internal/resolver"
	"github.com/nodewire/rpcclient/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
)

// State is a Session's lifecycle stage (spec.md §4.2).
type State int32

const (
	StateConnecting State = iota
	StateReady
	StateDraining
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StateReady:
		return "Ready"
	case StateDraining:
		return "Draining"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// NotifyFunc is invoked synchronously by the receive task for every
// inbound notification. Implementations (the Notifier) must not block:
// per spec.md §5, dispatch itself never suspends.
type NotifyFunc func(*appmessage.Notification)

// Session implements spec.md §4.2.
type Session struct {
	cfg    Config
	stream transport.Stream
	closer io.Closer // optional: closing it unblocks a parked Recv during shutdown

	resolver         resolver.Resolver
	hasMessageID     bool
	hasNotifyCommand bool

	notify NotifyFunc

	sendCh   chan *appmessage.Request
	closedCh chan struct{}

	state atomic.Int32

	receive trigger
	reaper  trigger

	pendingGauge prometheus.Gauge

	shutdownOnce sync.Once
}

// Connect performs the mandatory initial GetInfo handshake (spec.md
// §4.2/§6), records capability flags, constructs the Resolver variant,
// and spawns the send, receive and reaper tasks.
func Connect(ctx context.Context, stream transport.Stream, closer io.Closer, notify NotifyFunc, cfg Config, registerer prometheus.Registerer) (*Session, error) {
	cfg = cfg.withDefaults()

	s := &Session{
		cfg:      cfg,
		stream:   stream,
		closer:   closer,
		notify:   notify,
		sendCh:   make(chan *appmessage.Request, cfg.SendQueueCapacity),
		closedCh: make(chan struct{}),
		receive:  newTrigger(),
		reaper:   newTrigger(),
	}
	s.state.Store(int32(StateConnecting))

	if registerer != nil {
		s.pendingGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rpcclient_pending_requests",
			Help: "Number of RPC calls currently awaiting a response.",
		})
		_ = registerer.Register(s.pendingGauge)
	}

	getInfoReq := &appmessage.Envelope{Request: &appmessage.Request{Op: appmessage.OpGetInfo, Payload: &appmessage.GetInfoRequest{}}}
	if err := stream.Send(getInfoReq); err != nil {
		return nil, fmt.Errorf("rpcclient: send GetInfo probe: %w", err)
	}

	env, err := stream.Recv()
	if err != nil {
		return nil, fmt.Errorf("rpcclient: read GetInfo response: %w", err)
	}
	if env.Response == nil {
		return nil, fmt.Errorf("rpcclient: GetInfo probe returned a request envelope")
	}
	info, ok := env.Response.Payload.(*appmessage.GetInfoResponse)
	if !ok {
		return nil, fmt.Errorf("rpcclient: unexpected GetInfo response payload %T", env.Response.Payload)
	}

	s.hasMessageID = info.HasMessageID
	s.hasNotifyCommand = info.HasNotifyCommand
	if s.hasMessageID {
		s.resolver = resolver.NewID()
	} else {
		s.resolver = resolver.NewQueue()
	}

	s.state.Store(int32(StateReady))

	go s.sendLoop()
	go s.receiveLoop()
	go s.reaperLoop()

	_ = ctx // reserved: Connect itself performs no suspension beyond the two I/O calls above

	return s, nil
}

// HasMessageID reports whether the server negotiated per-message ids.
func (s *Session) HasMessageID() bool { return s.hasMessageID }

// HasNotifyCommand reports whether the server supports wire
// Subscribe/Unsubscribe acknowledgement.
func (s *Session) HasNotifyCommand() bool { return s.hasNotifyCommand }

// State reports the Session's current lifecycle stage.
func (s *Session) State() State { return State(s.state.Load()) }

// Call assigns correlation, enqueues the request, and awaits the Pending
// (spec.md §4.2). The zero Duration uses the Session's configured
// RequestTimeout.
func (s *Session) Call(op appmessage.RPCOp, payload any, timeout time.Duration) (*appmessage.Response, error) {
	if payload == nil {
		return nil, appmessage.ErrMissingPayload
	}
	if s.State() != StateReady {
		return nil, appmessage.ErrSendChannelClosed
	}
	if timeout <= 0 {
		timeout = s.cfg.RequestTimeout
	}

	req := &appmessage.Request{Op: op, Payload: payload}
	pending, err := s.resolver.Register(op, req, timeout)
	if err != nil {
		return nil, err
	}
	if s.pendingGauge != nil {
		s.pendingGauge.Set(float64(s.resolver.Len()))
	}

	select {
	case s.sendCh <- req:
	case <-s.closedCh:
		return nil, appmessage.ErrSendChannelClosed
	}

	resp := pending.Wait()
	if s.pendingGauge != nil {
		s.pendingGauge.Set(float64(s.resolver.Len()))
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp, nil
}

// Shutdown is idempotent: it signals the receive and reaper tasks,
// awaits their termination, and cancels every outstanding Pending with
// appmessage.ErrCallCancelled. Safe to call exactly once per Session;
// subsequent calls are no-ops (spec.md §4.2).
func (s *Session) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.state.Store(int32(StateDraining))
		close(s.closedCh)

		_ = s.stream.CloseSend()
		s.reaper.requestStop()
		s.reaper.wait()

		s.receive.requestStop()
		if s.closer != nil {
			// Unblocks a Recv parked in the receive task.
			_ = s.closer.Close()
		}
		s.receive.wait()

		s.resolver.CancelAll()
		if s.pendingGauge != nil {
			s.pendingGauge.Set(0)
		}
		s.state.Store(int32(StateClosed))
	})
}

func (s *Session) sendLoop() {
	for {
		select {
		case req := <-s.sendCh:
			env := &appmessage.Envelope{Request: req}
			if err := s.stream.Send(env); err != nil {
				s.cfg.Logger.WithError(err).Warn("rpcclient: send path observed a transport error")
				s.state.CompareAndSwap(int32(StateReady), int32(StateDraining))
				return
			}
		case <-s.closedCh:
			return
		}
	}
}

func (s *Session) receiveLoop() {
	defer s.receive.acknowledge()

	for {
		select {
		case <-s.receive.stopRequested():
			return
		default:
		}

		env, err := s.stream.Recv()
		if err != nil {
			select {
			case <-s.receive.stopRequested():
				// Expected: Shutdown closed the underlying transport to
				// unblock this Recv.
				return
			default:
			}
			s.cfg.Logger.WithError(err).Info("rpcclient: receive task observed end of stream")
			s.state.CompareAndSwap(int32(StateReady), int32(StateDraining))
			return
		}

		if env.Response == nil {
			s.cfg.Logger.Warn("rpcclient: receive task got a request envelope, dropping")
			continue
		}

		resp := env.Response
		if resp.IsNotification {
			if s.notify != nil && resp.Notification != nil {
				s.notify(resp.Notification)
			}
			continue
		}

		s.resolver.Complete(resp)
		if s.pendingGauge != nil {
			s.pendingGauge.Set(float64(s.resolver.Len()))
		}
	}
}

func (s *Session) reaperLoop() {
	defer s.reaper.acknowledge()

	ticker := time.NewTicker(s.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.reaper.stopRequested():
			return
		case now := <-ticker.C:
			s.resolver.Reap(now)
			if s.pendingGauge != nil {
				s.pendingGauge.Set(float64(s.resolver.Len()))
			}
		}
	}
}
