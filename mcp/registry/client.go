package registry

import (
	"context"

	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// defaultClient answers server initiated requests with MethodNotFound; the
// registry only ever lists and calls tools.
type defaultClient struct {
	implements map[string]bool
}

func (d *defaultClient) Init(ctx context.Context, capabilities *mcpschema.ClientCapabilities) {
	if len(d.implements) == 0 {
		d.implements = make(map[string]bool)
	}
	if capabilities == nil {
		return
	}
	if capabilities.Elicitation != nil {
		d.implements[mcpschema.MethodElicitationCreate] = true
	}
	if capabilities.Roots != nil {
		d.implements[mcpschema.MethodRootsList] = true
	}
	if capabilities.Sampling != nil {
		d.implements[mcpschema.MethodSamplingCreateMessage] = true
	}
}

func (*defaultClient) OnNotification(context.Context, *jsonrpc.Notification) {}

func (d *defaultClient) Implements(method string) bool {
	return d.implements[method]
}

func (*defaultClient) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func notImplemented() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func newClientHandler() protoclient.Handler { return &defaultClient{} }
