package cmd

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"simaudit/internal/telemetry"
)

// mcpServer wraps the MCP server with the bridge client and snapshot cache.
type mcpServer struct {
	bridge *telemetry.Bridge
	cache  *snapshotCache
	udid   string
	mcp    *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	BridgeURL string
	UDID      string
}

// newMCPServer creates and configures an MCP server with all simaudit tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	s := &mcpServer{
		bridge: telemetry.NewBridge(cfg.BridgeURL),
		cache:  newSnapshotCache(cfg.CacheTTL),
		udid:   cfg.UDID,
	}

	s.mcp = mcpserver.NewMCPServer(
		"simaudit",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list_devices
	s.mcp.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List iOS simulators known to simctl. Read-only."),
			mcp.WithBoolean("booted", mcp.Description("Only show booted simulators")),
		),
		s.handleListDevices,
	)

	// describe_ui
	s.mcp.AddTool(
		mcp.NewTool("describe_ui",
			mcp.WithDescription("Dump the raw view-hierarchy snapshot from the instrumented app. Returns elements with viewIds, types, labels, values, and frames."),
			mcp.WithNumber("depth", mcp.Description("Max tree depth (0 = unlimited)")),
			mcp.WithString("type", mcp.Description("Comma-separated element types to include")),
		),
		s.handleDescribeUI,
	)

	// screenshot
	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture a PNG screenshot of the booted simulator"),
			mcp.WithBoolean("annotate-failures", mcp.Description("Draw boxes around failing touch targets")),
			mcp.WithNumber("display-scale", mcp.Description("Device pixel scale for annotation (default: 3)")),
		),
		s.handleScreenshot,
	)

	// audit_touch_targets
	s.mcp.AddTool(
		mcp.NewTool("audit_touch_targets",
			mcp.WithDescription("Check interactive elements against the 44×44pt HIG minimum touch-target size"),
			mcp.WithString("format", mcp.Description("Output mode: text (rendered) or json (structured). Default: text")),
		),
		s.handleAuditTouchTargets,
	)

	// audit_contrast
	s.mcp.AddTool(
		mcp.NewTool("audit_contrast",
			mcp.WithDescription("Check sampled text colors against WCAG AA/AAA contrast requirements"),
			mcp.WithString("format", mcp.Description("Output mode: text (rendered) or json (structured). Default: text")),
		),
		s.handleAuditContrast,
	)

	// audit_layout
	s.mcp.AddTool(
		mcp.NewTool("audit_layout",
			mcp.WithDescription("Report Auto Layout problems (ambiguous layout, autoresizing-mask conflicts) the app is currently exhibiting"),
			mcp.WithString("format", mcp.Description("Output mode: text (rendered) or json (structured). Default: text")),
		),
		s.handleAuditLayout,
	)

	// audit_accessibility
	s.mcp.AddTool(
		mcp.NewTool("audit_accessibility",
			mcp.WithDescription("Find interactive elements missing accessibility labels or sized below the touch-target minimum, ranked by severity"),
			mcp.WithString("format", mcp.Description("Output mode: text (rendered) or json (structured). Default: text")),
		),
		s.handleAuditAccessibility,
	)

	// audit_full
	s.mcp.AddTool(
		mcp.NewTool("audit_full",
			mcp.WithDescription("Run every audit category and merge the results into one report. Never fails: categories whose telemetry is unavailable are flagged and excluded from the issue total."),
			mcp.WithString("format", mcp.Description("Output mode: text (rendered) or json (structured). Default: text")),
		),
		s.handleAuditFull,
	)
}
