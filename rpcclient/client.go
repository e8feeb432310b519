// Package rpcclient is the public facade: Connect dials a node, and the
// returned Client exposes one typed Call method per operation plus the
// listener/subscription surface described in spec.md §4.4 and §4.5.
package rpcclient

//go:generate go run ./gen

import (
	"context"
	"fmt"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/nodewire/rpcclient/internal/notifier"
	"github.com/nodewire/rpcclient/internal/session"
	"github.com/nodewire/rpcclient/internal/transport"
	"google.golang.org/grpc"
)

// ListenerID identifies a registered notification listener.
type ListenerID = notifier.ListenerID

// Client is a connected session plus its notification fan-out. The zero
// Client is not usable; construct one with Connect.
type Client struct {
	cfg      Config
	conn     *grpc.ClientConn
	sess     *session.Session
	notifier *notifier.Notifier
}

// Connect dials cfg.Address, performs the mandatory GetInfo handshake,
// and starts the session's background tasks (spec.md §4.2). The
// returned Client is ready for Call/Listen/Subscribe immediately.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	stream, conn, err := transport.Dial(ctx, cfg.Address, cfg.DialOptions)
	if err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, conn: conn}

	notifyFn := func(note *appmessage.Notification) {
		if c.notifier != nil {
			c.notifier.Dispatch(note)
		}
	}

	sess, err := session.Connect(ctx, stream, conn, notifyFn, cfg.SessionConfig, cfg.Registerer)
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.sess = sess

	adapter := &subscriptionAdapter{sess: sess}
	c.notifier = notifier.New(adapter, sess.HasNotifyCommand(), cfg.Logger, cfg.Registerer)

	return c, nil
}

// subscriptionAdapter lets the Notifier issue wire Subscribe/Unsubscribe
// commands without depending on *session.Session directly, breaking the
// Session<->Notifier ownership cycle (spec.md §9).
type subscriptionAdapter struct {
	sess *session.Session
}

func (a *subscriptionAdapter) StartNotify(_ context.Context, event appmessage.EventType, filter any) error {
	_, err := a.sess.Call(appmessage.NotifyOp(event), &appmessage.NotifyRequest{Command: appmessage.CommandStart, Filter: filter}, 0)
	return err
}

func (a *subscriptionAdapter) StopNotify(_ context.Context, event appmessage.EventType, filter any) error {
	_, err := a.sess.Call(appmessage.NotifyOp(event), &appmessage.NotifyRequest{Command: appmessage.CommandStop, Filter: filter}, 0)
	return err
}

// call is the shared plumbing every generated Call<Op> wrapper uses: send
// payload under op, and type-assert the response payload to T.
func call[T any](c *Client, op appmessage.RPCOp, payload any) (T, error) {
	var zero T
	resp, err := c.sess.Call(op, payload, 0)
	if err != nil {
		return zero, err
	}
	out, ok := resp.Payload.(T)
	if !ok {
		return zero, fmt.Errorf("rpcclient: unexpected %s response payload %T", op, resp.Payload)
	}
	return out, nil
}

// Listen registers a new notification listener. A nil ch gets a
// default-capacity channel allocated for it (spec.md §4.3).
func (c *Client) Listen(ch chan *appmessage.Notification) (ListenerID, <-chan *appmessage.Notification) {
	return c.notifier.RegisterListener(ch)
}

// Unlisten tears down a listener and, for every event type whose global
// count reaches zero as a result, issues a wire Unsubscribe.
func (c *Client) Unlisten(id ListenerID) {
	c.notifier.UnregisterListener(id)
}

// Subscribe activates delivery of event to listener id, issuing a wire
// Subscribe the first time any listener asks for this event type.
func (c *Client) Subscribe(id ListenerID, event appmessage.EventType, filter any) error {
	return c.notifier.StartNotify(id, event, filter)
}

// Unsubscribe deactivates delivery of event for listener id. When
// requireWireTeardown is true and the server never advertised
// NotifyCommand support, Unsubscribe returns appmessage.ErrUnsupported
// rather than silently downgrading to a local-only unsubscribe.
func (c *Client) Unsubscribe(id ListenerID, event appmessage.EventType, requireWireTeardown bool) error {
	return c.notifier.StopNotify(id, event, requireWireTeardown)
}

// HasMessageID reports whether the server negotiated per-message ids.
func (c *Client) HasMessageID() bool { return c.sess.HasMessageID() }

// HasNotifyCommand reports whether the server acknowledges wire
// Subscribe/Unsubscribe commands.
func (c *Client) HasNotifyCommand() bool { return c.sess.HasNotifyCommand() }

// Shutdown drains the session and closes the underlying connection. Safe
// to call once; the Client is unusable afterward.
func (c *Client) Shutdown() {
	c.sess.Shutdown()
	_ = c.conn.Close()
}
