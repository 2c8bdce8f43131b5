package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"simaudit/internal/annotate"
	"simaudit/internal/audit"
	"simaudit/internal/model"
	"simaudit/internal/simulator"
)

// auditToolResult serializes an audit result for an MCP response in either
// of the two output modes: rendered text or structured JSON.
func auditToolResult(v interface{}, render func() string, format string) (*mcp.CallToolResult, error) {
	if format == "json" {
		b, err := json.Marshal(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	}
	return mcp.NewToolResultText(render()), nil
}

func (s *mcpServer) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	bootedOnly := boolParam(params, "booted", false)

	devices, err := simulator.ListDevices(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if bootedOnly {
		filtered := devices[:0]
		for _, d := range devices {
			if d.State == "Booted" {
				filtered = append(filtered, d)
			}
		}
		devices = filtered
	}

	b, _ := yaml.Marshal(devices)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleDescribeUI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	depth := intParam(params, "depth", 0)
	typeFilter := stringParam(params, "type", "")

	nodes, err := s.cache.snapshot(ctx, s.bridge)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if typeFilter != "" {
		nodes = model.FilterByType(nodes, strings.Split(typeFilter, ","))
	}
	nodes = model.PruneDepth(nodes, depth)

	b, _ := yaml.Marshal(nodes)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	annotateFailures := boolParam(params, "annotate-failures", false)
	displayScale := floatParam(params, "display-scale", 3)

	device, err := simulator.BootedDevice(ctx, s.udid)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := simulator.Screenshot(ctx, device.UDID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if annotateFailures {
		result, err := audit.AuditTouchTargets(ctx, s.bridge)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err = annotate.FailingTouchTargets(data, result.Findings, displayScale)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *mcpServer) handleAuditTouchTargets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := stringParam(request.GetArguments(), "format", "text")
	result, err := audit.AuditTouchTargets(ctx, s.bridge)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return auditToolResult(result, func() string { return audit.RenderTouchTargets(result) }, format)
}

func (s *mcpServer) handleAuditContrast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := stringParam(request.GetArguments(), "format", "text")
	result, err := audit.AuditContrast(ctx, s.bridge)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return auditToolResult(result, func() string { return audit.RenderContrast(result) }, format)
}

func (s *mcpServer) handleAuditLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := stringParam(request.GetArguments(), "format", "text")
	result, err := audit.AuditLayout(ctx, s.bridge)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return auditToolResult(result, func() string { return audit.RenderLayout(result) }, format)
}

func (s *mcpServer) handleAuditAccessibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := stringParam(request.GetArguments(), "format", "text")
	result, err := audit.AuditAccessibility(ctx, s.bridge)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return auditToolResult(result, func() string { return audit.RenderAccessibility(result) }, format)
}

func (s *mcpServer) handleAuditFull(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := stringParam(request.GetArguments(), "format", "text")
	report := audit.RunFullAudit(ctx, s.bridge)
	return auditToolResult(report, func() string { return audit.RenderReport(report) }, format)
}
