package resolver

import (
	"testing"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDResolverCompletesByID(t *testing.T) {
	r := NewID()

	req := &appmessage.Request{Op: appmessage.OpGetBlockCount}
	pending, err := r.Register(appmessage.OpGetBlockCount, req, time.Minute)
	require.NoError(t, err)
	require.True(t, req.HasID)
	assert.Equal(t, 1, r.Len())

	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlockCount, ID: req.ID, HasID: true, Payload: &appmessage.GetBlockCountResponse{BlockCount: 7}})

	resp := pending.Wait()
	require.NoError(t, resp.Err)
	assert.Equal(t, uint64(7), resp.Payload.(*appmessage.GetBlockCountResponse).BlockCount)
	assert.Equal(t, 0, r.Len())
}

func TestIDResolverOutOfOrderCompletion(t *testing.T) {
	r := NewID()

	req1 := &appmessage.Request{Op: appmessage.OpGetBlock}
	p1, err := r.Register(appmessage.OpGetBlock, req1, time.Minute)
	require.NoError(t, err)

	req2 := &appmessage.Request{Op: appmessage.OpGetBlock}
	p2, err := r.Register(appmessage.OpGetBlock, req2, time.Minute)
	require.NoError(t, err)

	// Complete the second request first: id-based correlation does not
	// assume in-order delivery.
	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlock, ID: req2.ID, HasID: true})
	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlock, ID: req1.ID, HasID: true})

	assert.Equal(t, req2.ID, p2.Wait().ID)
	assert.Equal(t, req1.ID, p1.Wait().ID)
}

func TestIDResolverUnmatchedResponseIsDropped(t *testing.T) {
	r := NewID()
	assert.NotPanics(t, func() {
		r.Complete(&appmessage.Response{Op: appmessage.OpPing, ID: 12345, HasID: true})
	})
	assert.Equal(t, 0, r.Len())
}

func TestIDResolverReapTimesOutExpired(t *testing.T) {
	r := NewID()
	req := &appmessage.Request{Op: appmessage.OpPing}
	pending, err := r.Register(appmessage.OpPing, req, time.Millisecond)
	require.NoError(t, err)

	r.Reap(time.Now().Add(time.Second))

	resp := pending.Wait()
	assert.ErrorIs(t, resp.Err, appmessage.ErrCallTimeout)
	assert.Equal(t, 0, r.Len())
}

func TestIDResolverCancelAll(t *testing.T) {
	r := NewID()
	req := &appmessage.Request{Op: appmessage.OpPing}
	pending, err := r.Register(appmessage.OpPing, req, time.Minute)
	require.NoError(t, err)

	r.CancelAll()

	resp := pending.Wait()
	assert.ErrorIs(t, resp.Err, appmessage.ErrCallCancelled)
	assert.Equal(t, 0, r.Len())
}
