package notifier

import (
	"context"
	"sync"
	"testing"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubMgr struct {
	mu      sync.Mutex
	started []appmessage.EventType
	stopped []appmessage.EventType
	err     error
}

func (f *fakeSubMgr) StartNotify(_ context.Context, event appmessage.EventType, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.started = append(f.started, event)
	return nil
}

func (f *fakeSubMgr) StopNotify(_ context.Context, event appmessage.EventType, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, event)
	return nil
}

func (f *fakeSubMgr) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.started), len(f.stopped)
}

func TestStartNotifyIssuesWireSubscribeOnlyOnFirstActivation(t *testing.T) {
	mgr := &fakeSubMgr{}
	n := New(mgr, true, nil, nil)

	id1, _ := n.RegisterListener(nil)
	id2, _ := n.RegisterListener(nil)

	require.NoError(t, n.StartNotify(id1, appmessage.EventBlockAdded, nil))
	require.NoError(t, n.StartNotify(id2, appmessage.EventBlockAdded, nil))

	started, _ := mgr.counts()
	assert.Equal(t, 1, started)
	assert.Equal(t, 2, n.GlobalCount(appmessage.EventBlockAdded))
}

func TestStopNotifyIssuesWireUnsubscribeOnlyOnLastDeactivation(t *testing.T) {
	mgr := &fakeSubMgr{}
	n := New(mgr, true, nil, nil)

	id1, _ := n.RegisterListener(nil)
	id2, _ := n.RegisterListener(nil)
	require.NoError(t, n.StartNotify(id1, appmessage.EventBlockAdded, nil))
	require.NoError(t, n.StartNotify(id2, appmessage.EventBlockAdded, nil))

	require.NoError(t, n.StopNotify(id1, appmessage.EventBlockAdded, true))
	_, stopped := mgr.counts()
	assert.Equal(t, 0, stopped, "must not unsubscribe while another listener is still active")

	require.NoError(t, n.StopNotify(id2, appmessage.EventBlockAdded, true))
	_, stopped = mgr.counts()
	assert.Equal(t, 1, stopped)
	assert.Equal(t, 0, n.GlobalCount(appmessage.EventBlockAdded))
}

func TestStopNotifyRequiresWireSupportWhenDemanded(t *testing.T) {
	mgr := &fakeSubMgr{}
	n := New(mgr, false, nil, nil)

	id, _ := n.RegisterListener(nil)
	require.NoError(t, n.StartNotify(id, appmessage.EventBlockAdded, nil))

	err := n.StopNotify(id, appmessage.EventBlockAdded, true)
	assert.ErrorIs(t, err, appmessage.ErrUnsupported)
}

func TestUnregisterListenerUnwindsAllItsSubscriptions(t *testing.T) {
	mgr := &fakeSubMgr{}
	n := New(mgr, true, nil, nil)

	id, _ := n.RegisterListener(nil)
	require.NoError(t, n.StartNotify(id, appmessage.EventBlockAdded, nil))
	require.NoError(t, n.StartNotify(id, appmessage.EventUtxosChanged, &appmessage.UtxosChangedFilter{Addresses: []string{"a"}}))

	n.UnregisterListener(id)

	assert.Equal(t, 0, n.GlobalCount(appmessage.EventBlockAdded))
	assert.Equal(t, 0, n.GlobalCount(appmessage.EventUtxosChanged))
	started, stopped := mgr.counts()
	assert.Equal(t, 2, started)
	assert.Equal(t, 2, stopped)
}

func TestDispatchDeliversOnlyToActiveSubscribers(t *testing.T) {
	n := New(nil, true, nil, nil)

	id1, ch1 := n.RegisterListener(nil)
	id2, _ := n.RegisterListener(nil)
	require.NoError(t, n.StartNotify(id1, appmessage.EventBlockAdded, nil))
	_ = id2 // never subscribes

	n.Dispatch(&appmessage.Notification{Type: appmessage.EventBlockAdded, BlockAdded: &appmessage.BlockAddedNotification{}})

	select {
	case note := <-ch1:
		assert.Equal(t, appmessage.EventBlockAdded, note.Type)
	default:
		t.Fatal("subscribed listener did not receive the notification")
	}
}

func TestDispatchAppliesChainFilterPerListener(t *testing.T) {
	n := New(nil, true, nil, nil)

	idFull, chFull := n.RegisterListener(nil)
	idFiltered, chFiltered := n.RegisterListener(nil)

	require.NoError(t, n.StartNotify(idFull, appmessage.EventVirtualSelectedParentChainChanged, &appmessage.ChainChangedFilter{IncludeAcceptedTransactionIDs: true}))
	require.NoError(t, n.StartNotify(idFiltered, appmessage.EventVirtualSelectedParentChainChanged, &appmessage.ChainChangedFilter{IncludeAcceptedTransactionIDs: false}))

	n.Dispatch(&appmessage.Notification{
		Type: appmessage.EventVirtualSelectedParentChainChanged,
		VirtualSelectedParentChainChanged: &appmessage.VirtualSelectedParentChainChangedNotification{
			AcceptedTransactionIDs: []*appmessage.TransactionID{{1}},
		},
	})

	full := <-chFull
	assert.Len(t, full.VirtualSelectedParentChainChanged.AcceptedTransactionIDs, 1)

	filtered := <-chFiltered
	assert.Empty(t, filtered.VirtualSelectedParentChainChanged.AcceptedTransactionIDs)
}

func TestDispatchDropsWhenListenerChannelIsFull(t *testing.T) {
	mgr := &fakeSubMgr{}
	n := New(mgr, true, nil, nil)

	ch := make(chan *appmessage.Notification) // unbuffered, nobody reads
	id, _ := n.RegisterListener(ch)
	require.NoError(t, n.StartNotify(id, appmessage.EventBlockAdded, nil))

	assert.NotPanics(t, func() {
		n.Dispatch(&appmessage.Notification{Type: appmessage.EventBlockAdded, BlockAdded: &appmessage.BlockAddedNotification{}})
	})
}
