package appmessage

// Hash, TransactionID and Block are opaque reference types: the domain
// model of blocks/transactions/UTXOs is explicitly out of scope for this
// module (see spec.md §1). They exist only so notification payloads have
// something concrete to carry by reference.
type Hash [32]byte

type TransactionID [32]byte

type Block struct {
	Header []byte
	Body   []byte
}

// UTXODiff is an opaque accumulated diff, shared by reference across
// listener deliveries.
type UTXODiff struct {
	Added   []byte
	Removed []byte
}

// Notification is a tagged union over every notifiable server event.
// Exactly one of the typed fields below is non-nil, selected by Type.
type Notification struct {
	Type EventType

	BlockAdded                            *BlockAddedNotification
	VirtualSelectedParentChainChanged     *VirtualSelectedParentChainChangedNotification
	FinalityConflict                      *FinalityConflictNotification
	FinalityConflictResolved              *FinalityConflictResolvedNotification
	UtxosChanged                          *UtxosChangedNotification
	VirtualSelectedParentBlueScoreChanged *VirtualSelectedParentBlueScoreChangedNotification
	VirtualDaaScoreChanged                *VirtualDaaScoreChangedNotification
	PruningPointUtxoSetOverride           *PruningPointUtxoSetOverrideNotification
	NewBlockTemplate                      *NewBlockTemplateNotification
}

type BlockAddedNotification struct {
	Block *Block
}

type VirtualSelectedParentChainChangedNotification struct {
	AddedChainBlockHashes   []*Hash
	RemovedChainBlockHashes []*Hash
	AcceptedTransactionIDs  []*TransactionID
}

// withEmptyAcceptedTransactionIDs returns a shallow copy of n with
// AcceptedTransactionIDs replaced by an empty slice. The hash slices are
// shared, not copied, per spec.md §4.3 ("shared payload fields MUST NOT
// be copied").
func (n *VirtualSelectedParentChainChangedNotification) withEmptyAcceptedTransactionIDs() *VirtualSelectedParentChainChangedNotification {
	return &VirtualSelectedParentChainChangedNotification{
		AddedChainBlockHashes:   n.AddedChainBlockHashes,
		RemovedChainBlockHashes: n.RemovedChainBlockHashes,
		AcceptedTransactionIDs:  []*TransactionID{},
	}
}

type FinalityConflictNotification struct {
	ViolatingBlockHash *Hash
}

type FinalityConflictResolvedNotification struct {
	FinalityBlockHash *Hash
}

type UtxosChangedNotification struct {
	AccumulatedUTXODiff *UTXODiff
}

type VirtualSelectedParentBlueScoreChangedNotification struct {
	VirtualSelectedParentBlueScore uint64
}

type VirtualDaaScoreChangedNotification struct {
	VirtualDAAScore uint64
}

type PruningPointUtxoSetOverrideNotification struct{}

type NewBlockTemplateNotification struct{}

// WithChainFilter returns a copy of the notification with
// AcceptedTransactionIDs cleared when includeAccepted is false and the
// notification actually carries accepted ids; otherwise it returns n
// unchanged (not copied), per spec.md §4.3.
func (n *Notification) WithChainFilter(includeAccepted bool) *Notification {
	if n.Type != EventVirtualSelectedParentChainChanged {
		return n
	}
	payload := n.VirtualSelectedParentChainChanged
	if includeAccepted || len(payload.AcceptedTransactionIDs) == 0 {
		return n
	}
	clipped := *n
	clipped.VirtualSelectedParentChainChanged = payload.withEmptyAcceptedTransactionIDs()
	return &clipped
}
