package appmessage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithChainFilterClearsAcceptedIDsWhenExcluded(t *testing.T) {
	hash := &Hash{1}
	txID := &TransactionID{2}
	payload := &VirtualSelectedParentChainChangedNotification{
		AddedChainBlockHashes:  []*Hash{hash},
		AcceptedTransactionIDs: []*TransactionID{txID},
	}
	note := &Notification{Type: EventVirtualSelectedParentChainChanged, VirtualSelectedParentChainChanged: payload}

	filtered := note.WithChainFilter(false)
	require.NotSame(t, note, filtered)
	require.NotNil(t, filtered.VirtualSelectedParentChainChanged)
	assert.Empty(t, filtered.VirtualSelectedParentChainChanged.AcceptedTransactionIDs)
	assert.Same(t, hash, filtered.VirtualSelectedParentChainChanged.AddedChainBlockHashes[0])

	// original payload is untouched: the filter never mutates shared state.
	assert.Len(t, payload.AcceptedTransactionIDs, 1)
}

func TestWithChainFilterPassesThroughWhenIncluded(t *testing.T) {
	payload := &VirtualSelectedParentChainChangedNotification{
		AcceptedTransactionIDs: []*TransactionID{{2}},
	}
	note := &Notification{Type: EventVirtualSelectedParentChainChanged, VirtualSelectedParentChainChanged: payload}

	filtered := note.WithChainFilter(true)
	assert.Same(t, note, filtered)
}

func TestWithChainFilterPassesThroughWhenNoAcceptedIDs(t *testing.T) {
	payload := &VirtualSelectedParentChainChangedNotification{}
	note := &Notification{Type: EventVirtualSelectedParentChainChanged, VirtualSelectedParentChainChanged: payload}

	filtered := note.WithChainFilter(false)
	assert.Same(t, note, filtered)
}

func TestWithChainFilterIgnoresOtherEventTypes(t *testing.T) {
	note := &Notification{Type: EventBlockAdded, BlockAdded: &BlockAddedNotification{}}
	filtered := note.WithChainFilter(false)
	assert.Same(t, note, filtered)
}

func TestNotifyOpRoundTripsEveryEventType(t *testing.T) {
	for _, e := range AllEventTypes() {
		op := NotifyOp(e)
		assert.NotEqual(t, OpUnknown, op, "event %s has no wire op", e)
	}
}
