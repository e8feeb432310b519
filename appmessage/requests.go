package appmessage

// Request/response payload types, one pair per RPCOp. Fields are the
// minimal opaque set needed to exercise correlation, keying and the
// facade; the full domain model of blocks/transactions is out of scope
// (spec.md §1).

type PingRequest struct{}
type PingResponse struct{}

type GetInfoRequest struct{}

type GetProcessMetricsRequest struct{}
type GetProcessMetricsResponse struct {
	ResidentSetSizeBytes uint64
	UptimeSeconds        uint64
}

type SubmitBlockRequest struct {
	Block *Block
}
type SubmitBlockResponse struct {
	Accepted bool
	Reason   string
}

type GetBlockTemplateRequest struct {
	PayAddress string
}
type GetBlockTemplateResponse struct {
	Block    *Block
	IsSynced bool
}

// GetBlockRequest identifies the block by hash: the distinguishing key
// for queue-mode resolution (spec.md §4.1).
type GetBlockRequest struct {
	Hash                Hash
	IncludeTransactions bool
}
type GetBlockResponse struct {
	Hash  Hash
	Block *Block
}

type GetCurrentNetworkRequest struct{}
type GetCurrentNetworkResponse struct {
	Network string
}

type GetPeerAddressesRequest struct{}
type GetPeerAddressesResponse struct {
	Addresses []string
}

type GetSelectedTipHashRequest struct{}
type GetSelectedTipHashResponse struct {
	SelectedTipHash Hash
}

// GetMempoolEntryRequest identifies the entry by transaction id: the
// distinguishing key for queue-mode resolution.
type GetMempoolEntryRequest struct {
	TransactionID         TransactionID
	IncludeOrphanPool     bool
	FilterTransactionPool bool
}
type GetMempoolEntryResponse struct {
	TransactionID TransactionID
	Fee           uint64
}

type GetMempoolEntriesRequest struct {
	IncludeOrphanPool     bool
	FilterTransactionPool bool
}
type GetMempoolEntriesResponse struct {
	Count int
}

type GetConnectedPeerInfoRequest struct{}
type GetConnectedPeerInfoResponse struct {
	PeerCount int
}

type AddPeerRequest struct {
	Address     string
	IsPermanent bool
}
type AddPeerResponse struct{}

type SubmitTransactionRequest struct {
	Transaction []byte
	AllowOrphan bool
}
type SubmitTransactionResponse struct {
	TransactionID TransactionID
}

type GetSubnetworkRequest struct {
	SubnetworkID string
}
type GetSubnetworkResponse struct {
	GasLimit uint64
}

// GetVirtualSelectedParentChainFromBlockRequest identifies its starting
// point by block hash. The response does not echo that hash, so
// queue-mode resolution matches these calls by operation tag alone, in
// FIFO order.
type GetVirtualSelectedParentChainFromBlockRequest struct {
	StartHash                     Hash
	IncludeAcceptedTransactionIDs bool
}
type GetVirtualSelectedParentChainFromBlockResponse struct {
	RemovedChainBlockHashes []Hash
	AddedChainBlockHashes   []Hash
	AcceptedTransactionIDs  []TransactionID
}

type GetBlocksRequest struct {
	LowHash             Hash
	IncludeBlocks       bool
	IncludeTransactions bool
}
type GetBlocksResponse struct {
	BlockHashes []Hash
	Blocks      []*Block
}

type GetBlockCountRequest struct{}
type GetBlockCountResponse struct {
	BlockCount  uint64
	HeaderCount uint64
}

type GetBlockDagInfoRequest struct{}
type GetBlockDagInfoResponse struct {
	NetworkName     string
	BlockCount      uint64
	VirtualDAAScore uint64
}

type ResolveFinalityConflictRequest struct {
	FinalityBlockHash Hash
}
type ResolveFinalityConflictResponse struct{}

type ShutdownRequest struct{}
type ShutdownResponse struct{}

// GetHeadersRequest identifies its starting point by hash. The response
// does not echo that hash, so queue-mode resolution matches these calls
// by operation tag alone, in FIFO order.
type GetHeadersRequest struct {
	StartHash   Hash
	Limit       uint64
	IsAscending bool
}
type GetHeadersResponse struct {
	Headers [][]byte
}

type GetUtxosByAddressesRequest struct {
	Addresses []string
}
type GetUtxosByAddressesResponse struct {
	Entries int
}

type GetBalanceByAddressRequest struct {
	Address string
}
type GetBalanceByAddressResponse struct {
	Balance uint64
}

type GetBalancesByAddressesRequest struct {
	Addresses []string
}
type GetBalancesByAddressesResponse struct {
	Balances map[string]uint64
}

type GetVirtualSelectedParentBlueScoreRequest struct{}
type GetVirtualSelectedParentBlueScoreResponse struct {
	BlueScore uint64
}

type BanRequest struct {
	IP string
}
type BanResponse struct{}

type UnbanRequest struct {
	IP string
}
type UnbanResponse struct{}

type EstimateNetworkHashesPerSecondRequest struct {
	WindowSize uint32
	StartHash  *Hash
}
type EstimateNetworkHashesPerSecondResponse struct {
	NetworkHashesPerSecond uint64
}

type GetMempoolEntriesByAddressesRequest struct {
	Addresses             []string
	IncludeOrphanPool     bool
	FilterTransactionPool bool
}
type GetMempoolEntriesByAddressesResponse struct {
	Count int
}

type GetCoinSupplyRequest struct{}
type GetCoinSupplyResponse struct {
	CirculatingSompi uint64
	MaxSompi         uint64
}

// NotifyRequest is the payload of every NotifyXxx operation: a command
// plus an event-specific filter (spec.md §6 "Subscribe commands").
type NotifyRequest struct {
	Command SubscribeCommand
	Filter  any
}
type NotifyResponse struct{}

// UtxosChangedFilter watches a set of addresses.
type UtxosChangedFilter struct {
	Addresses []string
}

// ChainChangedFilter controls whether accepted transaction ids are
// included in VirtualSelectedParentChainChanged notifications.
type ChainChangedFilter struct {
	IncludeAcceptedTransactionIDs bool
}
