package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gitroast/core"
	"github.com/huangsam/gitroast/core/algo"
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	logger  *zap.SugaredLogger
}

func (h *toolHandler) handleRateMessage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	result := core.RoastMessage("", message, request.GetBool("explain", false))

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRateCommit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if r := request.GetString("ref", ""); r != "" {
		cfg.Ref = r
	}
	cfg.Explain = request.GetBool("explain", false)

	result, err := core.RoastCommit(ctx, cfg, h.client, h.logger)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("roast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTopCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	cfg.Count = request.GetInt("count", cfg.Count)
	cfg.Limit = request.GetInt("limit", cfg.Limit)

	if cfg.Count <= 0 || cfg.Count > contract.MaxCount {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: count must be between 1 and %d", contract.MaxCount)), nil
	}
	if cfg.Limit <= 0 || cfg.Limit > contract.MaxCount {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: limit must be between 1 and %d", contract.MaxCount)), nil
	}

	ranked, err := core.RoastTop(ctx, cfg, h.client, h.logger)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("roast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(algo.ToRankedCommits(ranked), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
