// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Raidscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.SnapshotStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Raidscope Inference Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: estimate_players ---
	s.AddTool(mcp.NewTool("estimate_players",
		mcp.WithDescription("Estimate hidden battle/bonus/extra parameters and max scores for every player in a guild."),
		mcp.WithString("guild", mcp.Description("Guild directory name under the data directory."), mcp.Required()),
		mcp.WithString("date", mcp.Description("Event date to analyze (digits only, e.g. '0315'). Defaults to all dates.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of players returned.")),
	), h.handleEstimatePlayers)

	// --- 2. Tool: guild_summary ---
	s.AddTool(mcp.NewTool("guild_summary",
		mcp.WithDescription("Aggregate guild-level totals: observed score, estimated maximum, achievement rate."),
		mcp.WithString("guild", mcp.Description("Guild directory name under the data directory."), mcp.Required()),
		mcp.WithString("date", mcp.Description("Event date to analyze. Defaults to all dates.")),
	), h.handleGuildSummary)

	// --- 3. Tool: calc_max_score ---
	s.AddTool(mcp.NewTool("calc_max_score",
		mcp.WithDescription("Compute the per-wave score and theoretical maximum score for given parameters."),
		mcp.WithNumber("battle", mcp.Description("Battle rating."), mcp.Required()),
		mcp.WithNumber("bonus", mcp.Description("Flat bonus tier (0, 500, 1000, 1500, 2000, 2500, 3000).")),
		mcp.WithNumber("extra", mcp.Description("Extra seconds purchased (0, 20, 60, 120).")),
	), h.handleCalcMaxScore)

	return s
}

// StartMCPServer starts the Raidscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.SnapshotStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
