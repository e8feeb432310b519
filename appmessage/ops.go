// Package appmessage defines the wire-level data model shared by the
// session, resolver and notifier packages: operation tags, event types,
// request/response envelopes and notification payloads.
package appmessage

// RPCOp identifies the kind of a Request/Response pair exchanged with the
// node. Every call the facade exposes maps to exactly one RPCOp.
type RPCOp int

const (
	OpUnknown RPCOp = iota
	OpPing
	OpGetProcessMetrics
	OpSubmitBlock
	OpGetBlockTemplate
	OpGetBlock
	OpGetInfo
	OpGetCurrentNetwork
	OpGetPeerAddresses
	OpGetSelectedTipHash
	OpGetMempoolEntry
	OpGetMempoolEntries
	OpGetConnectedPeerInfo
	OpAddPeer
	OpSubmitTransaction
	OpGetSubnetwork
	OpGetVirtualSelectedParentChainFromBlock
	OpGetBlocks
	OpGetBlockCount
	OpGetBlockDagInfo
	OpResolveFinalityConflict
	OpShutdown
	OpGetHeaders
	OpGetUtxosByAddresses
	OpGetBalanceByAddress
	OpGetBalancesByAddresses
	OpGetVirtualSelectedParentBlueScore
	OpBan
	OpUnban
	OpEstimateNetworkHashesPerSecond
	OpGetMempoolEntriesByAddresses
	OpGetCoinSupply

	// Notify ops carry a SubscribeCommand and are issued by the
	// SubscriptionManager, never directly by facade callers.
	OpNotifyBlockAdded
	OpNotifyVirtualSelectedParentChainChanged
	OpNotifyFinalityConflict
	OpNotifyUtxosChanged
	OpNotifyVirtualSelectedParentBlueScoreChanged
	OpNotifyVirtualDaaScoreChanged
	OpNotifyPruningPointUtxoSetOverride
	OpNotifyNewBlockTemplate
)

func (op RPCOp) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "Unknown"
}

var opNames = map[RPCOp]string{
	OpUnknown:                                     "Unknown",
	OpPing:                                        "Ping",
	OpGetProcessMetrics:                           "GetProcessMetrics",
	OpSubmitBlock:                                 "SubmitBlock",
	OpGetBlockTemplate:                            "GetBlockTemplate",
	OpGetBlock:                                    "GetBlock",
	OpGetInfo:                                     "GetInfo",
	OpGetCurrentNetwork:                           "GetCurrentNetwork",
	OpGetPeerAddresses:                            "GetPeerAddresses",
	OpGetSelectedTipHash:                          "GetSelectedTipHash",
	OpGetMempoolEntry:                             "GetMempoolEntry",
	OpGetMempoolEntries:                           "GetMempoolEntries",
	OpGetConnectedPeerInfo:                        "GetConnectedPeerInfo",
	OpAddPeer:                                     "AddPeer",
	OpSubmitTransaction:                           "SubmitTransaction",
	OpGetSubnetwork:                               "GetSubnetwork",
	OpGetVirtualSelectedParentChainFromBlock:      "GetVirtualSelectedParentChainFromBlock",
	OpGetBlocks:                                   "GetBlocks",
	OpGetBlockCount:                               "GetBlockCount",
	OpGetBlockDagInfo:                             "GetBlockDagInfo",
	OpResolveFinalityConflict:                     "ResolveFinalityConflict",
	OpShutdown:                                    "Shutdown",
	OpGetHeaders:                                  "GetHeaders",
	OpGetUtxosByAddresses:                         "GetUtxosByAddresses",
	OpGetBalanceByAddress:                         "GetBalanceByAddress",
	OpGetBalancesByAddresses:                      "GetBalancesByAddresses",
	OpGetVirtualSelectedParentBlueScore:           "GetVirtualSelectedParentBlueScore",
	OpBan:                                         "Ban",
	OpUnban:                                       "Unban",
	OpEstimateNetworkHashesPerSecond:              "EstimateNetworkHashesPerSecond",
	OpGetMempoolEntriesByAddresses:                "GetMempoolEntriesByAddresses",
	OpGetCoinSupply:                               "GetCoinSupply",
	OpNotifyBlockAdded:                            "NotifyBlockAdded",
	OpNotifyVirtualSelectedParentChainChanged:     "NotifyVirtualSelectedParentChainChanged",
	OpNotifyFinalityConflict:                      "NotifyFinalityConflict",
	OpNotifyUtxosChanged:                          "NotifyUtxosChanged",
	OpNotifyVirtualSelectedParentBlueScoreChanged: "NotifyVirtualSelectedParentBlueScoreChanged",
	OpNotifyVirtualDaaScoreChanged:                "NotifyVirtualDaaScoreChanged",
	OpNotifyPruningPointUtxoSetOverride:           "NotifyPruningPointUtxoSetOverride",
	OpNotifyNewBlockTemplate:                      "NotifyNewBlockTemplate",
}

// EventType is the discriminant over notifiable server events.
type EventType int

const (
	EventBlockAdded EventType = iota
	EventVirtualSelectedParentChainChanged
	EventFinalityConflict
	EventFinalityConflictResolved
	EventUtxosChanged
	EventVirtualSelectedParentBlueScoreChanged
	EventVirtualDaaScoreChanged
	EventPruningPointUtxoSetOverride
	EventNewBlockTemplate

	eventTypeCount
)

func (e EventType) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return "UnknownEvent"
}

var eventNames = map[EventType]string{
	EventBlockAdded:                            "BlockAdded",
	EventVirtualSelectedParentChainChanged:     "VirtualSelectedParentChainChanged",
	EventFinalityConflict:                      "FinalityConflict",
	EventFinalityConflictResolved:              "FinalityConflictResolved",
	EventUtxosChanged:                          "UtxosChanged",
	EventVirtualSelectedParentBlueScoreChanged: "VirtualSelectedParentBlueScoreChanged",
	EventVirtualDaaScoreChanged:                "VirtualDaaScoreChanged",
	EventPruningPointUtxoSetOverride:           "PruningPointUtxoSetOverride",
	EventNewBlockTemplate:                      "NewBlockTemplate",
}

// AllEventTypes enumerates every notifiable event, in declaration order.
func AllEventTypes() []EventType {
	out := make([]EventType, 0, int(eventTypeCount))
	for e := EventBlockAdded; e < eventTypeCount; e++ {
		out = append(out, e)
	}
	return out
}

// notifyOpForEvent maps an event type to the wire operation that
// subscribes/unsubscribes to it. Provided by the caller of the Notifier
// constructor in spec terms; here it is a fixed table since the mapping
// is determined by the protocol, not by the application.
var notifyOpForEvent = map[EventType]RPCOp{
	EventBlockAdded:                            OpNotifyBlockAdded,
	EventVirtualSelectedParentChainChanged:     OpNotifyVirtualSelectedParentChainChanged,
	EventFinalityConflict:                      OpNotifyFinalityConflict,
	EventFinalityConflictResolved:              OpNotifyFinalityConflict,
	EventUtxosChanged:                          OpNotifyUtxosChanged,
	EventVirtualSelectedParentBlueScoreChanged: OpNotifyVirtualSelectedParentBlueScoreChanged,
	EventVirtualDaaScoreChanged:                OpNotifyVirtualDaaScoreChanged,
	EventPruningPointUtxoSetOverride:           OpNotifyPruningPointUtxoSetOverride,
	EventNewBlockTemplate:                      OpNotifyNewBlockTemplate,
}

// NotifyOp returns the wire Subscribe/Unsubscribe operation for an event type.
func NotifyOp(e EventType) RPCOp {
	return notifyOpForEvent[e]
}

// SubscribeCommand is the command carried by a Subscribe message payload.
type SubscribeCommand int

const (
	CommandStart SubscribeCommand = iota
	CommandStop
)
