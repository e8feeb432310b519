// Code generated by rpcclient/gen from the operation table in
// rpcclient/gen/main.go. DO NOT EDIT.

package rpcclient

import "github.com/nodewire/rpcclient/appmessage"

// CallPing issues a Ping request.
func (c *Client) CallPing(req *appmessage.PingRequest) (*appmessage.PingResponse, error) {
	return call[*appmessage.PingResponse](c, appmessage.OpPing, req)
}

// CallGetInfo issues a GetInfo request. Note: the initial GetInfo
// handshake performed by Connect does not go through this method; this
// is for callers that want to re-query server info mid-session.
func (c *Client) CallGetInfo(req *appmessage.GetInfoRequest) (*appmessage.GetInfoResponse, error) {
	return call[*appmessage.GetInfoResponse](c, appmessage.OpGetInfo, req)
}

// CallGetProcessMetrics issues a GetProcessMetrics request.
func (c *Client) CallGetProcessMetrics(req *appmessage.GetProcessMetricsRequest) (*appmessage.GetProcessMetricsResponse, error) {
	return call[*appmessage.GetProcessMetricsResponse](c, appmessage.OpGetProcessMetrics, req)
}

// CallSubmitBlock issues a SubmitBlock request.
func (c *Client) CallSubmitBlock(req *appmessage.SubmitBlockRequest) (*appmessage.SubmitBlockResponse, error) {
	return call[*appmessage.SubmitBlockResponse](c, appmessage.OpSubmitBlock, req)
}

// CallGetBlockTemplate issues a GetBlockTemplate request.
func (c *Client) CallGetBlockTemplate(req *appmessage.GetBlockTemplateRequest) (*appmessage.GetBlockTemplateResponse, error) {
	return call[*appmessage.GetBlockTemplateResponse](c, appmessage.OpGetBlockTemplate, req)
}

// CallGetBlock issues a GetBlock request, keyed by block hash under the
// queue resolver (spec.md §4.1).
func (c *Client) CallGetBlock(req *appmessage.GetBlockRequest) (*appmessage.GetBlockResponse, error) {
	return call[*appmessage.GetBlockResponse](c, appmessage.OpGetBlock, req)
}

// CallGetCurrentNetwork issues a GetCurrentNetwork request.
func (c *Client) CallGetCurrentNetwork(req *appmessage.GetCurrentNetworkRequest) (*appmessage.GetCurrentNetworkResponse, error) {
	return call[*appmessage.GetCurrentNetworkResponse](c, appmessage.OpGetCurrentNetwork, req)
}

// CallGetPeerAddresses issues a GetPeerAddresses request.
func (c *Client) CallGetPeerAddresses(req *appmessage.GetPeerAddressesRequest) (*appmessage.GetPeerAddressesResponse, error) {
	return call[*appmessage.GetPeerAddressesResponse](c, appmessage.OpGetPeerAddresses, req)
}

// CallGetSelectedTipHash issues a GetSelectedTipHash request.
func (c *Client) CallGetSelectedTipHash(req *appmessage.GetSelectedTipHashRequest) (*appmessage.GetSelectedTipHashResponse, error) {
	return call[*appmessage.GetSelectedTipHashResponse](c, appmessage.OpGetSelectedTipHash, req)
}

// CallGetMempoolEntry issues a GetMempoolEntry request, keyed by
// transaction id under the queue resolver (spec.md §4.1).
func (c *Client) CallGetMempoolEntry(req *appmessage.GetMempoolEntryRequest) (*appmessage.GetMempoolEntryResponse, error) {
	return call[*appmessage.GetMempoolEntryResponse](c, appmessage.OpGetMempoolEntry, req)
}

// CallGetMempoolEntries issues a GetMempoolEntries request.
func (c *Client) CallGetMempoolEntries(req *appmessage.GetMempoolEntriesRequest) (*appmessage.GetMempoolEntriesResponse, error) {
	return call[*appmessage.GetMempoolEntriesResponse](c, appmessage.OpGetMempoolEntries, req)
}

// CallGetConnectedPeerInfo issues a GetConnectedPeerInfo request.
func (c *Client) CallGetConnectedPeerInfo(req *appmessage.GetConnectedPeerInfoRequest) (*appmessage.GetConnectedPeerInfoResponse, error) {
	return call[*appmessage.GetConnectedPeerInfoResponse](c, appmessage.OpGetConnectedPeerInfo, req)
}

// CallAddPeer issues an AddPeer request.
func (c *Client) CallAddPeer(req *appmessage.AddPeerRequest) (*appmessage.AddPeerResponse, error) {
	return call[*appmessage.AddPeerResponse](c, appmessage.OpAddPeer, req)
}

// CallSubmitTransaction issues a SubmitTransaction request.
func (c *Client) CallSubmitTransaction(req *appmessage.SubmitTransactionRequest) (*appmessage.SubmitTransactionResponse, error) {
	return call[*appmessage.SubmitTransactionResponse](c, appmessage.OpSubmitTransaction, req)
}

// CallGetSubnetwork issues a GetSubnetwork request.
func (c *Client) CallGetSubnetwork(req *appmessage.GetSubnetworkRequest) (*appmessage.GetSubnetworkResponse, error) {
	return call[*appmessage.GetSubnetworkResponse](c, appmessage.OpGetSubnetwork, req)
}

// CallGetVirtualSelectedParentChainFromBlock issues a
// GetVirtualSelectedParentChainFromBlock request. The queue resolver
// matches it by operation tag alone, in FIFO order.
func (c *Client) CallGetVirtualSelectedParentChainFromBlock(req *appmessage.GetVirtualSelectedParentChainFromBlockRequest) (*appmessage.GetVirtualSelectedParentChainFromBlockResponse, error) {
	return call[*appmessage.GetVirtualSelectedParentChainFromBlockResponse](c, appmessage.OpGetVirtualSelectedParentChainFromBlock, req)
}

// CallGetBlocks issues a GetBlocks request.
func (c *Client) CallGetBlocks(req *appmessage.GetBlocksRequest) (*appmessage.GetBlocksResponse, error) {
	return call[*appmessage.GetBlocksResponse](c, appmessage.OpGetBlocks, req)
}

// CallGetBlockCount issues a GetBlockCount request.
func (c *Client) CallGetBlockCount(req *appmessage.GetBlockCountRequest) (*appmessage.GetBlockCountResponse, error) {
	return call[*appmessage.GetBlockCountResponse](c, appmessage.OpGetBlockCount, req)
}

// CallGetBlockDagInfo issues a GetBlockDagInfo request.
func (c *Client) CallGetBlockDagInfo(req *appmessage.GetBlockDagInfoRequest) (*appmessage.GetBlockDagInfoResponse, error) {
	return call[*appmessage.GetBlockDagInfoResponse](c, appmessage.OpGetBlockDagInfo, req)
}

// CallResolveFinalityConflict issues a ResolveFinalityConflict request.
func (c *Client) CallResolveFinalityConflict(req *appmessage.ResolveFinalityConflictRequest) (*appmessage.ResolveFinalityConflictResponse, error) {
	return call[*appmessage.ResolveFinalityConflictResponse](c, appmessage.OpResolveFinalityConflict, req)
}

// CallShutdown issues a Shutdown request to the remote node. This is
// distinct from Client.Shutdown, which tears down the local session.
func (c *Client) CallShutdown(req *appmessage.ShutdownRequest) (*appmessage.ShutdownResponse, error) {
	return call[*appmessage.ShutdownResponse](c, appmessage.OpShutdown, req)
}

// CallGetHeaders issues a GetHeaders request. The queue resolver
// matches it by operation tag alone, in FIFO order.
func (c *Client) CallGetHeaders(req *appmessage.GetHeadersRequest) (*appmessage.GetHeadersResponse, error) {
	return call[*appmessage.GetHeadersResponse](c, appmessage.OpGetHeaders, req)
}

// CallGetUtxosByAddresses issues a GetUtxosByAddresses request.
func (c *Client) CallGetUtxosByAddresses(req *appmessage.GetUtxosByAddressesRequest) (*appmessage.GetUtxosByAddressesResponse, error) {
	return call[*appmessage.GetUtxosByAddressesResponse](c, appmessage.OpGetUtxosByAddresses, req)
}

// CallGetBalanceByAddress issues a GetBalanceByAddress request.
func (c *Client) CallGetBalanceByAddress(req *appmessage.GetBalanceByAddressRequest) (*appmessage.GetBalanceByAddressResponse, error) {
	return call[*appmessage.GetBalanceByAddressResponse](c, appmessage.OpGetBalanceByAddress, req)
}

// CallGetBalancesByAddresses issues a GetBalancesByAddresses request.
func (c *Client) CallGetBalancesByAddresses(req *appmessage.GetBalancesByAddressesRequest) (*appmessage.GetBalancesByAddressesResponse, error) {
	return call[*appmessage.GetBalancesByAddressesResponse](c, appmessage.OpGetBalancesByAddresses, req)
}

// CallGetVirtualSelectedParentBlueScore issues a
// GetVirtualSelectedParentBlueScore request.
func (c *Client) CallGetVirtualSelectedParentBlueScore(req *appmessage.GetVirtualSelectedParentBlueScoreRequest) (*appmessage.GetVirtualSelectedParentBlueScoreResponse, error) {
	return call[*appmessage.GetVirtualSelectedParentBlueScoreResponse](c, appmessage.OpGetVirtualSelectedParentBlueScore, req)
}

// CallBan issues a Ban request.
func (c *Client) CallBan(req *appmessage.BanRequest) (*appmessage.BanResponse, error) {
	return call[*appmessage.BanResponse](c, appmessage.OpBan, req)
}

// CallUnban issues an Unban request.
func (c *Client) CallUnban(req *appmessage.UnbanRequest) (*appmessage.UnbanResponse, error) {
	return call[*appmessage.UnbanResponse](c, appmessage.OpUnban, req)
}

// CallEstimateNetworkHashesPerSecond issues an
// EstimateNetworkHashesPerSecond request.
func (c *Client) CallEstimateNetworkHashesPerSecond(req *appmessage.EstimateNetworkHashesPerSecondRequest) (*appmessage.EstimateNetworkHashesPerSecondResponse, error) {
	return call[*appmessage.EstimateNetworkHashesPerSecondResponse](c, appmessage.OpEstimateNetworkHashesPerSecond, req)
}

// CallGetMempoolEntriesByAddresses issues a GetMempoolEntriesByAddresses
// request.
func (c *Client) CallGetMempoolEntriesByAddresses(req *appmessage.GetMempoolEntriesByAddressesRequest) (*appmessage.GetMempoolEntriesByAddressesResponse, error) {
	return call[*appmessage.GetMempoolEntriesByAddressesResponse](c, appmessage.OpGetMempoolEntriesByAddresses, req)
}

// CallGetCoinSupply issues a GetCoinSupply request.
func (c *Client) CallGetCoinSupply(req *appmessage.GetCoinSupplyRequest) (*appmessage.GetCoinSupplyResponse, error) {
	return call[*appmessage.GetCoinSupplyResponse](c, appmessage.OpGetCoinSupply, req)
}
