// Command gen renders rpcclient/ops_generated.go from opTable below. It
// is invoked by `go generate ./...` against a go:generate directive in
// rpcclient/client.go; the generated output is checked in so the module
// has no build-time codegen dependency, matching how the teacher checks
// in its generated protobuf client bindings rather than regenerating
// them on every build.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

type op struct {
	// Op is the appmessage.RPCOp constant name, without the "Op" prefix.
	Op string
	// Doc, if set, overrides the default one-line doc comment.
	Doc string
}

var opTable = []op{
	{Op: "Ping"},
	{Op: "GetInfo", Doc: "issues a GetInfo request. Note: the initial GetInfo\n// handshake performed by Connect does not go through this method; this\n// is for callers that want to re-query server info mid-session."},
	{Op: "GetProcessMetrics"},
	{Op: "SubmitBlock"},
	{Op: "GetBlockTemplate"},
	{Op: "GetBlock", Doc: "issues a GetBlock request, keyed by block hash under the\n// queue resolver (spec.md §4.1)."},
	{Op: "GetCurrentNetwork"},
	{Op: "GetPeerAddresses"},
	{Op: "GetSelectedTipHash"},
	{Op: "GetMempoolEntry", Doc: "issues a GetMempoolEntry request, keyed by\n// transaction id under the queue resolver (spec.md §4.1)."},
	{Op: "GetMempoolEntries"},
	{Op: "GetConnectedPeerInfo"},
	{Op: "AddPeer"},
	{Op: "SubmitTransaction"},
	{Op: "GetSubnetwork"},
	{Op: "GetVirtualSelectedParentChainFromBlock", Doc: "issues a\n// GetVirtualSelectedParentChainFromBlock request. The queue resolver\n// matches it by operation tag alone, in FIFO order."},
	{Op: "GetBlocks"},
	{Op: "GetBlockCount"},
	{Op: "GetBlockDagInfo"},
	{Op: "ResolveFinalityConflict"},
	{Op: "Shutdown", Doc: "issues a Shutdown request to the remote node. This is\n// distinct from Client.Shutdown, which tears down the local session."},
	{Op: "GetHeaders", Doc: "issues a GetHeaders request. The queue resolver\n// matches it by operation tag alone, in FIFO order."},
	{Op: "GetUtxosByAddresses"},
	{Op: "GetBalanceByAddress"},
	{Op: "GetBalancesByAddresses"},
	{Op: "GetVirtualSelectedParentBlueScore"},
	{Op: "Ban"},
	{Op: "Unban"},
	{Op: "EstimateNetworkHashesPerSecond"},
	{Op: "GetMempoolEntriesByAddresses"},
	{Op: "GetCoinSupply"},
}

const tmplText = `// Code generated by rpcclient/gen from the operation table in
// rpcclient/gen/main.go. DO NOT EDIT.

package rpcclient

import "github.com/nodewire/rpcclient/appmessage"
{{range .}}
// Call{{.Op}} {{.Doc}}
func (c *Client) Call{{.Op}}(req *appmessage.{{.Op}}Request) (*appmessage.{{.Op}}Response, error) {
	return call[*appmessage.{{.Op}}Response](c, appmessage.Op{{.Op}}, req)
}
{{end}}`

func main() {
	for i := range opTable {
		if opTable[i].Doc == "" {
			opTable[i].Doc = fmt.Sprintf("issues a %s request.", opTable[i].Op)
		}
	}

	tmpl := template.Must(template.New("ops").Parse(tmplText))
	var buf strings.Builder
	if err := tmpl.Execute(&buf, opTable); err != nil {
		fmt.Fprintln(os.Stderr, "rpcclient/gen:", err)
		os.Exit(1)
	}

	if err := os.WriteFile("ops_generated.go", []byte(buf.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "rpcclient/gen:", err)
		os.Exit(1)
	}
}
