// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitroast/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewMCPServer initializes and configures the gitroast MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger) *server.MCPServer {
	s := server.NewMCPServer(
		"Git Roast Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		logger:  logger,
	}

	// --- 1. Tool: rate_message ---
	s.AddTool(mcp.NewTool("rate_message",
		mcp.WithDescription("Rate the entertainment value of a commit message on a 1-10 scale."),
		mcp.WithString("message", mcp.Description("The full commit message to rate."), mcp.Required()),
		mcp.WithBoolean("explain", mcp.Description("Include the contribution of each scoring signal.")),
	), h.handleRateMessage)

	// --- 2. Tool: rate_commit ---
	s.AddTool(mcp.NewTool("rate_commit",
		mcp.WithDescription("Read a commit from a Git repository and rate its message."),
		mcp.WithString("ref", mcp.Description("Commit reference such as HEAD, a branch or a hash. Defaults to HEAD.")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithBoolean("explain", mcp.Description("Include the contribution of each scoring signal.")),
	), h.handleRateCommit)

	// --- 3. Tool: top_commits ---
	s.AddTool(mcp.NewTool("top_commits",
		mcp.WithDescription("Rank the most entertaining messages among recent commits."),
		mcp.WithNumber("count", mcp.Description("Number of recent commits to scan. Defaults to 100.")),
		mcp.WithNumber("limit", mcp.Description("Number of commits to return. Defaults to 10.")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleTopCommits)

	return s
}

// StartMCPServer starts the gitroast MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger) error {
	s := NewMCPServer(baseCfg, client, logger)
	return server.ServeStdio(s)
}
