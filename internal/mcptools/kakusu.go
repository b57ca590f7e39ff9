package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/phrazzld/seimei-api/internal/service"
)

// KakusuTool handles the seimei_kakusu MCP tool.
type KakusuTool struct {
	svc service.SeimeiService
}

// NewKakusuTool creates a KakusuTool backed by svc.
func NewKakusuTool(svc service.SeimeiService) *KakusuTool {
	return &KakusuTool{svc: svc}
}

// Definition returns the MCP tool definition for seimei_kakusu.
func (t *KakusuTool) Definition() mcp.Tool {
	return mcp.NewTool("seimei_kakusu",
		mcp.WithDescription(
			"Compute the five stroke counts (heaven, personality, earth, total, outer) of a Japanese name.",
		),
		mcp.WithString("sei",
			mcp.Required(),
			mcp.Description("Surname, e.g. 田中"),
		),
		mcp.WithString("mei",
			mcp.Required(),
			mcp.Description("Given name, e.g. 太郎"),
		),
	)
}

// Handle processes the seimei_kakusu tool call.
func (t *KakusuTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, errResult := nameArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	res, err := t.svc.Kakusu(ctx, in)
	if err != nil {
		return toolError("stroke count", err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s %s\n\n", res.Name.SurnameText(), res.Name.GivenText())
	fmt.Fprintf(&sb, "- **天格 Heaven**: %d\n", res.Counts.Heaven)
	fmt.Fprintf(&sb, "- **人格 Personality**: %d\n", res.Counts.Personality)
	fmt.Fprintf(&sb, "- **地格 Earth**: %d\n", res.Counts.Earth)
	fmt.Fprintf(&sb, "- **総格 Total**: %d\n", res.Counts.Total)
	if res.Counts.HasOuter {
		fmt.Fprintf(&sb, "- **外格 Outer**: %d\n", res.Counts.Outer)
	}
	sb.WriteString("\n")
	writeCharacters(&sb, res.Characters)

	return mcp.NewToolResultText(sb.String()), nil
}
