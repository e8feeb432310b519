// Package notifier maintains the listener registry and per-event-type
// subscription state, and fans inbound notifications out to local
// subscribers. It implements spec.md §4.3 and §4.4.
package notifier

import (
	"context"
	"fmt"
	"sync"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// ListenerID is a monotonic local id identifying a registered listener.
type ListenerID uint64

// defaultChannelCapacity is the bounded buffer size for a listener's
// outbound notification channel when the caller does not supply one
// (spec.md §9 "deliver via non-blocking try-send with a bounded buffer").
const defaultChannelCapacity = 128

const eventCount = 9 // len(appmessage.AllEventTypes())

// SubscriptionManager is the narrow capability the Notifier uses to
// issue wire Subscribe/Unsubscribe commands. Spec.md §9 calls for exactly
// this cut to break the Session<->Notifier ownership cycle: the rpcclient
// facade implements it with an adapter over the Session, which retains
// ownership of the transport; the Notifier only ever sees
// {StartNotify, StopNotify}.
type SubscriptionManager interface {
	StartNotify(ctx context.Context, event appmessage.EventType, filter any) error
	StopNotify(ctx context.Context, event appmessage.EventType, filter any) error
}

// SubscriptionRecord is per-(listener, event-type) state.
type SubscriptionRecord struct {
	Active bool
	Filter any
}

type listener struct {
	id   ListenerID
	ch   chan *appmessage.Notification
	subs [eventCount]SubscriptionRecord
}

// Notifier implements spec.md §4.3/§4.4.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[ListenerID]*listener
	counts    [eventCount]int
	nextID    ListenerID

	subMgr            SubscriptionManager
	hasWireUnsubscribe bool
	logger            *logrus.Entry

	dispatched *prometheus.CounterVec
	dropped    *prometheus.CounterVec
	wireCmds   *prometheus.CounterVec
}

// New constructs a Notifier plugged into the given SubscriptionManager.
// hasWireUnsubscribe mirrors the session's frozen has_notify_command
// capability flag (spec.md §4.3: wire Unsubscribe is only issued when the
// server advertised support for it). registerer may be nil, in which
// case metrics are not collected.
func New(subMgr SubscriptionManager, hasWireUnsubscribe bool, logger *logrus.Entry, registerer prometheus.Registerer) *Notifier {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	n := &Notifier{
		listeners:          make(map[ListenerID]*listener),
		subMgr:             subMgr,
		hasWireUnsubscribe: hasWireUnsubscribe,
		logger:             logger,
	}

	if registerer != nil {
		n.dispatched = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpcclient_notifications_dispatched_total",
			Help: "Notifications delivered to a listener, by event type.",
		}, []string{"event"})
		n.dropped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpcclient_notifications_dropped_total",
			Help: "Notifications dropped undelivered, by event type and reason.",
		}, []string{"event", "reason"})
		n.wireCmds = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpcclient_wire_subscribe_commands_total",
			Help: "Wire Subscribe/Unsubscribe commands issued, by event type and command.",
		}, []string{"event", "command"})
		_ = registerer.Register(n.dispatched)
		_ = registerer.Register(n.dropped)
		_ = registerer.Register(n.wireCmds)
	}

	return n
}

// RegisterListener allocates an id, adopts or creates the outbound
// channel, and returns both to the caller (spec.md §4.3).
func (n *Notifier) RegisterListener(ch chan *appmessage.Notification) (ListenerID, <-chan *appmessage.Notification) {
	if ch == nil {
		ch = make(chan *appmessage.Notification, defaultChannelCapacity)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.listeners[id] = &listener{id: id, ch: ch}
	return id, ch
}

// UnregisterListener decrements every subscription count the listener
// held, triggers wire Unsubscribes where counts reach zero, and drops
// the channel (spec.md §4.3).
func (n *Notifier) UnregisterListener(id ListenerID) {
	n.mu.Lock()
	l, ok := n.listeners[id]
	if !ok {
		n.mu.Unlock()
		return
	}
	delete(n.listeners, id)

	type unsub struct {
		event  appmessage.EventType
		filter any
	}
	var toUnsubscribe []unsub
	for e := 0; e < eventCount; e++ {
		if !l.subs[e].Active {
			continue
		}
		n.counts[e]--
		if n.counts[e] == 0 {
			toUnsubscribe = append(toUnsubscribe, unsub{appmessage.EventType(e), l.subs[e].Filter})
		}
	}
	n.mu.Unlock()

	for _, u := range toUnsubscribe {
		n.issueWireUnsubscribe(u.event, u.filter)
	}
}

// StartNotify records the listener's interest (spec.md §4.3). If this is
// the listener's first activation for the event type and it raises the
// global count from 0 to 1, a wire Subscribe is issued.
func (n *Notifier) StartNotify(id ListenerID, event appmessage.EventType, filter any) error {
	n.mu.Lock()
	l, ok := n.listeners[id]
	if !ok {
		n.mu.Unlock()
		return fmt.Errorf("rpcclient: unknown listener %d", id)
	}

	rec := &l.subs[event]
	if rec.Active {
		rec.Filter = filter
		n.mu.Unlock()
		return nil
	}
	rec.Active = true
	rec.Filter = filter
	n.counts[event]++
	firstActivation := n.counts[event] == 1
	n.mu.Unlock()

	if firstActivation && n.subMgr != nil {
		if err := n.subMgr.StartNotify(context.Background(), event, filter); err != nil {
			return err
		}
		n.countWireCmd(event, "subscribe")
	}
	return nil
}

// StopNotify is the inverse of StartNotify. If requireWireTeardown is
// true and the server does not support wire Unsubscribe, StopNotify
// returns appmessage.ErrUnsupported instead of silently downgrading to a
// local-only operation (spec.md §4.3).
func (n *Notifier) StopNotify(id ListenerID, event appmessage.EventType, requireWireTeardown bool) error {
	if requireWireTeardown && !n.hasWireUnsubscribe {
		return appmessage.ErrUnsupported
	}

	n.mu.Lock()
	l, ok := n.listeners[id]
	if !ok {
		n.mu.Unlock()
		return fmt.Errorf("rpcclient: unknown listener %d", id)
	}

	rec := &l.subs[event]
	if !rec.Active {
		n.mu.Unlock()
		return nil
	}
	filter := rec.Filter
	rec.Active = false
	rec.Filter = nil
	n.counts[event]--
	lastDeactivation := n.counts[event] == 0
	n.mu.Unlock()

	if lastDeactivation {
		n.issueWireUnsubscribe(event, filter)
	}
	return nil
}

func (n *Notifier) issueWireUnsubscribe(event appmessage.EventType, filter any) {
	if n.subMgr == nil || !n.hasWireUnsubscribe {
		return
	}
	if err := n.subMgr.StopNotify(context.Background(), event, filter); err != nil {
		n.logger.WithError(err).WithField("event", event).Warn("rpcclient: wire unsubscribe failed")
		return
	}
	n.countWireCmd(event, "unsubscribe")
}

func (n *Notifier) countWireCmd(event appmessage.EventType, command string) {
	if n.wireCmds != nil {
		n.wireCmds.WithLabelValues(event.String(), command).Inc()
	}
}

// GlobalCount reports the number of active listeners for an event type,
// for tests and metrics.
func (n *Notifier) GlobalCount(event appmessage.EventType) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.counts[event]
}

// Dispatch fans a notification out to every active listener for its
// event type, applying each listener's filter. Dispatch never suspends:
// listener delivery is a non-blocking try-send (spec.md §4.3/§5).
func (n *Notifier) Dispatch(note *appmessage.Notification) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.counts[note.Type] == 0 {
		return
	}

	for _, l := range n.listeners {
		rec := l.subs[note.Type]
		if !rec.Active {
			continue
		}

		out := n.applyFilter(note, rec.Filter)
		if out == nil {
			continue
		}

		select {
		case l.ch <- out:
			n.countDispatched(note.Type)
		default:
			n.countDropped(note.Type, "channel_full")
			n.logger.WithField("listener", l.id).WithField("event", note.Type).Warn("rpcclient: listener channel full, dropping notification")
		}
	}
}

// applyFilter implements the per-event-type filter semantics of
// spec.md §4.3. Shared payload fields are never copied; only the
// chain-changed accepted-transaction-ids field is ever cleared, and only
// into a fresh copy.
func (n *Notifier) applyFilter(note *appmessage.Notification, filter any) *appmessage.Notification {
	switch f := filter.(type) {
	case *appmessage.ChainChangedFilter:
		return note.WithChainFilter(f.IncludeAcceptedTransactionIDs)
	case *appmessage.UtxosChangedFilter:
		// Address-level filtering is deferred to the consumer by design
		// (spec.md §9 open question): pass through unfiltered.
		return note
	default:
		return note
	}
}

func (n *Notifier) countDispatched(event appmessage.EventType) {
	if n.dispatched != nil {
		n.dispatched.WithLabelValues(event.String()).Inc()
	}
}

func (n *Notifier) countDropped(event appmessage.EventType, reason string) {
	if n.dropped != nil {
		n.dropped.WithLabelValues(event.String(), reason).Inc()
	}
}
