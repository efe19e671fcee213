package tools

import (
	"fmt"
	"strings"
)

// InvalidArgumentsError is returned when a call's arguments fail schema
// validation or cannot be turned into a request. No upstream request is made.
type InvalidArgumentsError struct {
	Tool    string
	Details []string
}

func (e *InvalidArgumentsError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("invalid arguments for %s", e.Tool)
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(e.Details, "; "))
}

// ToolNotFoundError is returned for a call to a tool that is not registered.
type ToolNotFoundError struct {
	Name        string
	Suggestions []Name
}

func (e *ToolNotFoundError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Unknown tool: %s", e.Name))

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n\nDid you mean:\n")
		for _, name := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString("\nUse tools/list to see the available tools")
	return sb.String()
}
