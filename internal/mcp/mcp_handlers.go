package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.SnapshotStore
}

func (h *toolHandler) handleEstimatePlayers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Guild = request.GetString("guild", "")
	if d := request.GetString("date", ""); d != "" {
		cfg.Date = d
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	results, err := core.GetPlayerResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolution failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGuildSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Guild = request.GetString("guild", "")
	if d := request.GetString("date", ""); d != "" {
		cfg.Date = d
	}

	summary, err := core.GetGuildSummary(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// calcResult is the JSON payload returned by the calc_max_score tool.
type calcResult struct {
	Battle       float64 `json:"battle"`
	Bonus        int     `json:"bonus"`
	ExtraSeconds int     `json:"extra_seconds"`
	PerWaveScore int     `json:"per_wave_score"`
	MaxScore     int     `json:"max_score"`
}

func (h *toolHandler) handleCalcMaxScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := h.baseCfg.Rules
	battle := request.GetFloat("battle", 0)
	bonus := request.GetInt("bonus", 0)
	extra := request.GetInt("extra", 0)

	if err := contract.RevalidateCalc(rules, battle, bonus, extra); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid calc parameters: %v", err)), nil
	}

	battle = schema.SnapBattle(battle)
	result := calcResult{
		Battle:       battle,
		Bonus:        bonus,
		ExtraSeconds: extra,
		PerWaveScore: core.PerWaveScore(battle),
		MaxScore:     core.MaxScore(rules, battle, bonus, extra),
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
