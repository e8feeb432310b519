package appmessage

// Request is created by the facade for every call and consumed by the
// session's send path. Payload is the operation-specific request body;
// its concrete shape is an external concern (wire-format encoding of
// individual payloads is out of scope for this module).
type Request struct {
	Op      RPCOp
	ID      uint64
	HasID   bool
	Payload any
}

// Response is produced by the receive task from an inbound message. A
// notification Response carries IsNotification=true and Notification
// populated; otherwise Payload/Err answer a Pending.
type Response struct {
	Op             RPCOp
	ID             uint64
	HasID          bool
	Payload        any
	Err            error
	IsNotification bool
	Notification   *Notification
}

// Envelope is the unit of exchange on the duplex transport stream: a
// tagged union carrying either a Request (client to server) or a
// Response (server to client) and an optional correlation id.
type Envelope struct {
	Request  *Request
	Response *Response
}

// GetInfoResponse carries the capability flags negotiated at handshake.
type GetInfoResponse struct {
	ServerVersion    string
	IsUtxoIndexed    bool
	IsSynced         bool
	HasNotifyCommand bool
	HasMessageID     bool
}
