package session

import (
	"context"
	"testing"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/nodewire/rpcclient/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectFake(t *testing.T, info *appmessage.GetInfoResponse, notify NotifyFunc) (*Session, *transport.Fake) {
	t.Helper()
	fake := transport.NewFake(8)
	fake.Push(&appmessage.Envelope{Response: &appmessage.Response{Op: appmessage.OpGetInfo, Payload: info}})

	cfg := DefaultConfig()
	cfg.ReaperInterval = 10 * time.Millisecond

	sess, err := Connect(context.Background(), fake, fake, notify, cfg, nil)
	require.NoError(t, err)
	return sess, fake
}

func TestConnectNegotiatesIDResolver(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true, HasNotifyCommand: true}, nil)
	defer sess.Shutdown()

	assert.True(t, sess.HasMessageID())
	assert.True(t, sess.HasNotifyCommand())
	assert.Equal(t, StateReady, sess.State())
}

func TestConnectNegotiatesQueueResolver(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: false}, nil)
	defer sess.Shutdown()

	assert.False(t, sess.HasMessageID())
}

func TestCallRoundTrip(t *testing.T) {
	sess, fake := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)
	defer sess.Shutdown()

	done := make(chan struct{})
	var resp *appmessage.Response
	var callErr error
	go func() {
		resp, callErr = sess.Call(appmessage.OpGetBlockCount, &appmessage.GetBlockCountRequest{}, time.Second)
		close(done)
	}()

	// Wait for the request to reach the fake transport, then answer it
	// with the same correlation id the id resolver attached.
	require.Eventually(t, func() bool { return len(fake.Sent()) == 2 }, time.Second, time.Millisecond)
	sent := fake.Sent()[1] // [0] is the GetInfo probe
	require.NotNil(t, sent.Request)

	fake.Push(&appmessage.Envelope{Response: &appmessage.Response{
		Op: appmessage.OpGetBlockCount, ID: sent.Request.ID, HasID: true,
		Payload: &appmessage.GetBlockCountResponse{BlockCount: 42},
	}})

	<-done
	require.NoError(t, callErr)
	assert.Equal(t, uint64(42), resp.Payload.(*appmessage.GetBlockCountResponse).BlockCount)
}

func TestCallTimesOut(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)
	defer sess.Shutdown()

	_, err := sess.Call(appmessage.OpGetBlockCount, &appmessage.GetBlockCountRequest{}, 20*time.Millisecond)
	assert.ErrorIs(t, err, appmessage.ErrCallTimeout)
}

func TestCallRejectsNilPayload(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)
	defer sess.Shutdown()

	_, err := sess.Call(appmessage.OpGetBlockCount, nil, time.Second)
	assert.ErrorIs(t, err, appmessage.ErrMissingPayload)
}

func TestNotificationsBypassResolver(t *testing.T) {
	received := make(chan *appmessage.Notification, 1)
	sess, fake := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, func(n *appmessage.Notification) {
		received <- n
	})
	defer sess.Shutdown()

	fake.Push(&appmessage.Envelope{Response: &appmessage.Response{
		Op: appmessage.OpNotifyBlockAdded, IsNotification: true,
		Notification: &appmessage.Notification{Type: appmessage.EventBlockAdded, BlockAdded: &appmessage.BlockAddedNotification{}},
	}})

	select {
	case n := <-received:
		assert.Equal(t, appmessage.EventBlockAdded, n.Type)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestShutdownCancelsPendingCalls(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := sess.Call(appmessage.OpGetBlockCount, &appmessage.GetBlockCountRequest{}, time.Minute)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return sess.resolver.Len() == 1 }, time.Second, time.Millisecond)

	sess.Shutdown()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, appmessage.ErrCallCancelled)
	case <-time.After(time.Second):
		t.Fatal("pending call was not cancelled by shutdown")
	}

	assert.Equal(t, StateClosed, sess.State())
}

func TestShutdownIsIdempotent(t *testing.T) {
	sess, _ := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)
	assert.NotPanics(t, func() {
		sess.Shutdown()
		sess.Shutdown()
	})
}

func TestServerClosedStreamDrainsSession(t *testing.T) {
	sess, fake := connectFake(t, &appmessage.GetInfoResponse{HasMessageID: true}, nil)
	defer sess.Shutdown()

	fake.CloseInbox()

	require.Eventually(t, func() bool { return sess.State() == StateDraining }, time.Second, time.Millisecond)
}
