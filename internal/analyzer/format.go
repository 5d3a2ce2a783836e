package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders an Analysis for terminal inspection.
func Format(a Analysis) string {
	var sb strings.Builder

	sb.WriteString("Session Analysis\n")
	sb.WriteString("────────────────\n\n")

	if a.UserRequest != "" {
		sb.WriteString(fmt.Sprintf("Request:  %s\n", firstLine(a.UserRequest)))
	}
	sb.WriteString(fmt.Sprintf("Summary:  %s\n\n", a.Summary))

	if len(a.Operations) > 0 {
		sb.WriteString("Operations\n")

		// Count per tool, sorted by count descending
		counts := make(map[string]int)
		for _, op := range a.Operations {
			counts[op.Tool]++
		}
		type toolCount struct {
			name  string
			count int
		}
		var tools []toolCount
		for name, count := range counts {
			tools = append(tools, toolCount{name, count})
		}
		sort.Slice(tools, func(i, j int) bool {
			if tools[i].count != tools[j].count {
				return tools[i].count > tools[j].count
			}
			return tools[i].name < tools[j].name
		})
		for _, tc := range tools {
			sb.WriteString(fmt.Sprintf("   %-12s %d\n", tc.name+":", tc.count))
		}
		sb.WriteString("\n")
	}

	writeBucket(&sb, "Added", a.FilesChanged.Added)
	writeBucket(&sb, "Modified", a.FilesChanged.Modified)
	writeBucket(&sb, "Deleted", a.FilesChanged.Deleted)

	if len(a.AssistantResponses) > 0 {
		sb.WriteString(fmt.Sprintf("Responses: %d kept\n", len(a.AssistantResponses)))
	}

	return sb.String()
}

func writeBucket(sb *strings.Builder, label string, files []string) {
	if len(files) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d)\n", label, len(files)))
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("   %s\n", f))
	}
	sb.WriteString("\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
