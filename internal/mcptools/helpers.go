package mcptools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/phrazzld/seimei-api/internal/redact"
	"github.com/phrazzld/seimei-api/internal/service"
)

// nameArgs extracts the required sei and mei arguments.
func nameArgs(req mcp.CallToolRequest) (service.NameInput, *mcp.CallToolResult) {
	sei := strings.TrimSpace(req.GetString("sei", ""))
	mei := strings.TrimSpace(req.GetString("mei", ""))

	if sei == "" {
		return service.NameInput{}, mcp.NewToolResultError("'sei' is required")
	}
	if mei == "" {
		return service.NameInput{}, mcp.NewToolResultError("'mei' is required")
	}
	return service.NameInput{Sei: sei, Mei: mei}, nil
}

// toolError turns a service failure into a tool result. Unknown characters
// are listed; anything else is redacted.
func toolError(action string, err error) *mcp.CallToolResult {
	var unknown *service.UnknownCharacterError
	if errors.As(err, &unknown) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s failed: no stroke count known for %s", action, strings.Join(unknown.Glyphs, ", ")))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %s", action, redact.Error(err)))
}

func writeCharacters(sb *strings.Builder, chars []service.CharacterDetail) {
	sb.WriteString("| # | Glyph | Part | Strokes | Element | Polarity | Source |\n")
	sb.WriteString("|---|-------|------|---------|---------|----------|--------|\n")
	for _, c := range chars {
		fmt.Fprintf(sb, "| %d | %s | %s | %d | %s | %s | %s |\n",
			c.Position+1, c.Glyph, c.Part, c.Strokes, c.Element, c.Polarity, c.Source)
	}
}

func bulletList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}
