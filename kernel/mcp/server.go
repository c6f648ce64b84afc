package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openbmc-tools/hwguard/kernel/bus"
	"github.com/openbmc-tools/hwguard/kernel/config"
	"github.com/openbmc-tools/hwguard/kernel/inventory"
	"github.com/openbmc-tools/hwguard/kernel/isolation"
	"github.com/openbmc-tools/hwguard/kernel/rest"
	"github.com/openbmc-tools/hwguard/kernel/status"
)

// HwGuardMCPServer exposes hardware isolation operations as MCP tools.
type HwGuardMCPServer struct {
	server       *server.MCPServer
	cfg          *config.Config
	orchestrator *isolation.Orchestrator
	aggregator   *status.Aggregator
	resolver     *inventory.Resolver
}

func NewHwGuardMCPServer(client bus.Client, cfg *config.Config) *HwGuardMCPServer {
	srv := server.NewMCPServer(
		"HwGuard Hardware Isolation",
		"v1.0.0",
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(true),
	)

	hs := &HwGuardMCPServer{
		server:       srv,
		cfg:          cfg,
		orchestrator: isolation.NewOrchestrator(client),
		aggregator:   status.NewAggregator(client),
		resolver:     inventory.NewResolver(client),
	}

	hs.registerTools()
	hs.registerResources()

	return hs
}

func (hs *HwGuardMCPServer) ServeStdio() error {
	return server.ServeStdio(hs.server)
}

func (hs *HwGuardMCPServer) registerTools() {
	isolate := mcp.NewTool("isolate_resource",
		mcp.WithDescription("Isolate a hardware resource from system boot"),
		mcp.WithString("kind",
			mcp.Description("Resource kind (e.g. processor, memory, core, pcie-device)"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Resource id (e.g. cpu0, dimm12)"),
			mcp.Required(),
		),
	)
	hs.server.AddTool(isolate, hs.isolateHandler(false))

	deisolate := mcp.NewTool("deisolate_resource",
		mcp.WithDescription("De-isolate a hardware resource so it rejoins system boot"),
		mcp.WithString("kind",
			mcp.Description("Resource kind (e.g. processor, memory, core, pcie-device)"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Resource id (e.g. cpu0, dimm12)"),
			mcp.Required(),
		),
	)
	hs.server.AddTool(deisolate, hs.isolateHandler(true))

	getStatus := mcp.NewTool("get_hardware_status",
		mcp.WithDescription("Get the isolation status conditions of a hardware resource"),
		mcp.WithString("kind",
			mcp.Description("Resource kind"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Resource id"),
			mcp.Required(),
		),
	)
	hs.server.AddTool(getStatus, hs.statusHandler)
}

func (hs *HwGuardMCPServer) registerResources() {
	resource := mcp.NewResource("hwguard://kinds", "Resource Kinds",
		mcp.WithResourceDescription("Resource kinds that support hardware isolation"),
		mcp.WithMIMEType("application/json"),
	)
	hs.server.AddResource(resource, hs.kindsHandler)
}

func (hs *HwGuardMCPServer) isolateHandler(enabled bool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := request.RequireString("kind")
		if err != nil {
			return mcp.NewToolResultError("kind argument is required"), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id argument is required"), nil
		}
		resource, err := hs.cfg.Resource(kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		resp := rest.NewResponse()
		hs.orchestrator.Process(ctx, isolation.Request{
			ResourceName: resource.Name,
			ResourceID:   id,
			Enabled:      enabled,
			Interfaces:   resource.Interfaces,
		}, resp)

		data, err := resp.JSON()
		if err != nil {
			return nil, fmt.Errorf("failed to render outcome: %w", err)
		}
		if resp.HTTPStatus() >= 400 {
			return mcp.NewToolResultError(string(data)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func (hs *HwGuardMCPServer) statusHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind argument is required"), nil
	}
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required"), nil
	}
	resource, err := hs.cfg.Resource(kind)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, err := hs.resolver.Resolve(ctx, bus.InventoryRoot, resource.Interfaces, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unable to resolve %s '%s': %v", resource.Name, id, err)), nil
	}

	resp := rest.NewResponse()
	hs.aggregator.Render(ctx, path, resp)

	data, err := resp.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render status: %w", err)
	}
	if resp.Terminal() {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (hs *HwGuardMCPServer) kindsHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	kinds := make(map[string]string)
	for _, kind := range hs.cfg.Kinds() {
		resource, _ := hs.cfg.Resource(kind)
		kinds[kind] = resource.Name
	}
	data, err := json.Marshal(map[string]interface{}{"count": len(kinds), "kinds": kinds})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal kinds: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "hwguard://kinds",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
