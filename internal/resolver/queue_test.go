package resolver

import (
	"testing"
	"time"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueResolverFIFOPerOperation(t *testing.T) {
	r := NewQueue()

	req1 := &appmessage.Request{Op: appmessage.OpGetBlockCount}
	p1, err := r.Register(appmessage.OpGetBlockCount, req1, time.Minute)
	require.NoError(t, err)

	req2 := &appmessage.Request{Op: appmessage.OpGetBlockCount}
	p2, err := r.Register(appmessage.OpGetBlockCount, req2, time.Minute)
	require.NoError(t, err)

	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlockCount, Payload: &appmessage.GetBlockCountResponse{BlockCount: 1}})
	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlockCount, Payload: &appmessage.GetBlockCountResponse{BlockCount: 2}})

	assert.Equal(t, uint64(1), p1.Wait().Payload.(*appmessage.GetBlockCountResponse).BlockCount)
	assert.Equal(t, uint64(2), p2.Wait().Payload.(*appmessage.GetBlockCountResponse).BlockCount)
}

func TestQueueResolverKeyedOperationsDoNotCrossMatch(t *testing.T) {
	r := NewQueue()

	hashA := appmessage.Hash{0xaa}
	hashB := appmessage.Hash{0xbb}

	reqA := &appmessage.Request{Op: appmessage.OpGetBlock, Payload: &appmessage.GetBlockRequest{Hash: hashA}}
	pA, err := r.Register(appmessage.OpGetBlock, reqA, time.Minute)
	require.NoError(t, err)

	reqB := &appmessage.Request{Op: appmessage.OpGetBlock, Payload: &appmessage.GetBlockRequest{Hash: hashB}}
	pB, err := r.Register(appmessage.OpGetBlock, reqB, time.Minute)
	require.NoError(t, err)

	// Complete B's response first; A must not receive it despite being
	// registered earlier.
	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlock, Payload: &appmessage.GetBlockResponse{Hash: hashB, Block: &appmessage.Block{Header: []byte("b")}}})
	r.Complete(&appmessage.Response{Op: appmessage.OpGetBlock, Payload: &appmessage.GetBlockResponse{Hash: hashA, Block: &appmessage.Block{Header: []byte("a")}}})

	assert.Equal(t, "a", string(pA.Wait().Payload.(*appmessage.GetBlockResponse).Block.Header))
	assert.Equal(t, "b", string(pB.Wait().Payload.(*appmessage.GetBlockResponse).Block.Header))
}

func TestQueueResolverUnmatchedResponseIsDropped(t *testing.T) {
	r := NewQueue()
	assert.NotPanics(t, func() {
		r.Complete(&appmessage.Response{Op: appmessage.OpPing})
	})
	assert.Equal(t, 0, r.Len())
}

func TestQueueResolverReapTimesOutExpired(t *testing.T) {
	r := NewQueue()
	req := &appmessage.Request{Op: appmessage.OpPing}
	pending, err := r.Register(appmessage.OpPing, req, time.Millisecond)
	require.NoError(t, err)

	r.Reap(time.Now().Add(time.Second))

	assert.ErrorIs(t, pending.Wait().Err, appmessage.ErrCallTimeout)
	assert.Equal(t, 0, r.Len())
}

func TestQueueResolverCancelAll(t *testing.T) {
	r := NewQueue()
	req := &appmessage.Request{Op: appmessage.OpPing}
	pending, err := r.Register(appmessage.OpPing, req, time.Minute)
	require.NoError(t, err)

	r.CancelAll()

	assert.ErrorIs(t, pending.Wait().Err, appmessage.ErrCallCancelled)
	assert.Equal(t, 0, r.Len())
}
