package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/phrazzld/seimei-api/internal/service"
)

// AnalyzeTool handles the seimei_analyze MCP tool.
type AnalyzeTool struct {
	svc service.SeimeiService
}

// NewAnalyzeTool creates an AnalyzeTool backed by svc.
func NewAnalyzeTool(svc service.SeimeiService) *AnalyzeTool {
	return &AnalyzeTool{svc: svc}
}

// Definition returns the MCP tool definition for seimei_analyze.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("seimei_analyze",
		mcp.WithDescription(
			"Score a Japanese name by stroke-count fortune telling. Returns a markdown report with "+
				"the five counts, their fortunes, each category score, the total score and an assessment.",
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

// Handle processes the seimei_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, errResult := nameArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	a, err := t.svc.Analyze(ctx, service.AnalyzeInput{NameInput: in})
	if err != nil {
		return toolError("analysis", err), nil
	}

	return mcp.NewToolResultText(Report(a)), nil
}

// Report renders an analysis as markdown.
func Report(a *service.Analysis) string {
	res := a.Result

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s %s\n\n", a.Name.SurnameText(), a.Name.GivenText())
	fmt.Fprintf(&sb, "**Score**: %d / 100 (grade %s, %s)\n\n", res.TotalScore, res.Grade, res.Classification.Label())
	if res.Assessment.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", res.Assessment.Summary)
	}

	writeCharacters(&sb, a.Characters)

	sb.WriteString("\n### Fortunes\n\n")
	for _, f := range res.Fortune.Counts {
		fmt.Fprintf(&sb, "- **%s** %d: %s (%s)\n", f.Label, f.Strokes, f.Fortune.Title, f.Fortune.Grade.Kanji())
	}

	sb.WriteString("\n### Categories\n\n")
	sb.WriteString("| Category | Score | Weight |\n")
	sb.WriteString("|----------|-------|--------|\n")
	for _, c := range res.Categories {
		fmt.Fprintf(&sb, "| %s | %.0f | %.2f |\n", c.Category.Label(), c.NormalizedScore, c.Weight)
	}

	bulletList(&sb, "Strengths", res.Assessment.Strengths)
	bulletList(&sb, "Issues", res.Assessment.Issues)
	bulletList(&sb, "Recommendations", res.Assessment.Recommendations)

	return sb.String()
}
