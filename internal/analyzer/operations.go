package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/transcript"
)

// allowedTools is the fixed allow-list of tool names that become Operations.
var allowedTools = map[string]bool{
	"Write": true, "Edit": true, "Delete": true, "MultiEdit": true,
	"NotebookEdit": true, "NotebookWrite": true,
	"Read": true, "Bash": true, "WebFetch": true, "WebSearch": true,
	"TodoWrite": true, "Glob": true, "Grep": true, "LS": true,
}

func (a *Analyzer) buildOperation(tc transcript.ToolCall, ev transcript.Event) Operation {
	op := Operation{
		Tool:         tc.Name,
		FilePath:     derivePath(tc),
		Action:       locale.ActionVerb(a.lang, tc.Name),
		RawArguments: tc.Arguments,
		Summary:      a.summarize(tc),
		Timestamp:    ev.Timestamp,
	}

	switch tc.Name {
	case "Write", "NotebookWrite":
		op.ChangeDetails = a.writeDetails(tc.Arguments)
	case "Edit", "NotebookEdit":
		op.ChangeDetails = a.editDetails(tc.Arguments)
	case "MultiEdit":
		op.ChangeDetails = multiEditDetails(tc.Arguments)
	}

	if ev.Content != "" && !strings.HasPrefix(ev.Content, toolMarker) {
		op.Context = map[string]string{"assistant_message": truncate(ev.Content, 200)}
	}

	return op
}

// derivePath extracts the file-path-like field for a tool call; for
// non-file tools it carries a descriptive marker instead.
func derivePath(tc transcript.ToolCall) string {
	switch tc.Name {
	case "Write", "Edit", "Delete", "MultiEdit", "Read":
		return argString(tc.Arguments, "file_path")
	case "NotebookEdit", "NotebookWrite", "NotebookRead":
		return argString(tc.Arguments, "notebook_path")
	case "Bash":
		cmd := argString(tc.Arguments, "command")
		if strings.Contains(cmd, "git") {
			return "Git operation"
		}
		return truncate(cmd, 50)
	case "Glob":
		return "Pattern: " + argString(tc.Arguments, "pattern")
	case "Grep":
		return "Search: " + truncate(argString(tc.Arguments, "pattern"), 30)
	}
	return ""
}

// bashRule classifies a shell command by substring, first match wins.
type bashRule struct {
	substr string
	key    string
}

var gitCommandRules = []bashRule{
	{"commit", "op.git.commit"},
	{"push", "op.git.push"},
	{"status", "op.git.status"},
}

func (a *Analyzer) summarize(tc transcript.ToolCall) string {
	switch tc.Name {
	case "Write", "NotebookWrite":
		content := argString(tc.Arguments, "content")
		switch {
		case strings.Contains(strings.ToLower(content), "<html"):
			return locale.T(a.lang, "op.html")
		case strings.Contains(content, "def ") || strings.Contains(content, "class "):
			return locale.T(a.lang, "op.python")
		case strings.Contains(content, "{") && strings.Contains(content, "}"):
			return locale.T(a.lang, "op.config")
		}
		return locale.T(a.lang, "op.file")
	case "Edit", "NotebookEdit":
		if len(argString(tc.Arguments, "old_string")) > 100 {
			return locale.T(a.lang, "op.large")
		}
		return locale.T(a.lang, "op.partial")
	case "MultiEdit":
		total := 0
		for _, e := range argEdits(tc.Arguments) {
			total += len(argString(e, "old_string"))
		}
		if total > 100 {
			return locale.T(a.lang, "op.large")
		}
		return locale.T(a.lang, "op.partial")
	case "Bash":
		cmd := argString(tc.Arguments, "command")
		if strings.Contains(cmd, "git") {
			for _, r := range gitCommandRules {
				if strings.Contains(cmd, r.substr) {
					return locale.T(a.lang, r.key)
				}
			}
			return locale.T(a.lang, "op.git")
		}
		if strings.Contains(cmd, "npm") || strings.Contains(cmd, "pip") {
			return locale.T(a.lang, "op.pkg")
		}
		return locale.T(a.lang, "op.sys")
	}
	return ""
}

// featureRule maps a content marker to a feature label key.
type featureRule struct {
	substr string
	key    string
}

var htmlFeatureRules = []featureRule{
	{"<form", "feature.form"},
	{"<table", "feature.table"},
	{"<nav", "feature.nav"},
	{"<style", "feature.style"},
	{"style=", "feature.style"},
	{"<script", "feature.script"},
	{"@media", "feature.media"},
}

var jsFeatureRules = []featureRule{
	{"function", "feature.jsfunc"},
	{"addEventListener", "feature.events"},
	{"fetch", "feature.api"},
	{"axios", "feature.api"},
	{"useState", "feature.hooks"},
	{"useEffect", "feature.hooks"},
}

var (
	pyImportRe = regexp.MustCompile(`(?m)^\s*(import|from)\s`)
	pyClassRe  = regexp.MustCompile(`(?m)^\s*class\s`)
	pyDefRe    = regexp.MustCompile(`(?m)^\s*def\s`)
)

func (a *Analyzer) writeDetails(args map[string]interface{}) map[string]interface{} {
	content := argString(args, "content")
	details := map[string]interface{}{
		"lines_added": lineCount(content),
		"size":        len(content),
	}

	switch {
	case strings.Contains(strings.ToLower(content), "<html"):
		details["type"] = "HTML"
		var features []string
		seen := make(map[string]bool)
		for _, r := range htmlFeatureRules {
			if strings.Contains(content, r.substr) && !seen[r.key] {
				seen[r.key] = true
				features = append(features, locale.T(a.lang, r.key))
			}
		}
		if len(features) > 0 {
			details["features"] = features
		}
	case strings.Contains(content, "def ") || strings.Contains(content, "class "):
		details["type"] = "Python"
		var features []string
		if n := len(pyImportRe.FindAllString(content, -1)); n > 0 {
			features = append(features, fmt.Sprintf(locale.T(a.lang, "feature.imports"), n))
		}
		if n := len(pyClassRe.FindAllString(content, -1)); n > 0 {
			features = append(features, fmt.Sprintf(locale.T(a.lang, "feature.classes"), n))
		}
		if n := len(pyDefRe.FindAllString(content, -1)); n > 0 {
			features = append(features, fmt.Sprintf(locale.T(a.lang, "feature.funcs"), n))
		}
		if len(features) > 0 {
			details["features"] = features
		}
	case strings.Contains(content, "function") || strings.Contains(content, "const "):
		details["type"] = "JavaScript"
		var features []string
		seen := make(map[string]bool)
		for _, r := range jsFeatureRules {
			if strings.Contains(content, r.substr) && !seen[r.key] {
				seen[r.key] = true
				features = append(features, locale.T(a.lang, r.key))
			}
		}
		if len(features) > 0 {
			details["features"] = features
		}
	}

	return details
}

func (a *Analyzer) editDetails(args map[string]interface{}) map[string]interface{} {
	oldStr := argString(args, "old_string")
	newStr := argString(args, "new_string")

	return map[string]interface{}{
		"lines_removed": lineCount(oldStr),
		"lines_added":   lineCount(newStr),
		"change_type":   a.classifyEdit(oldStr, newStr),
	}
}

// classifyEdit tags a replacement by size ratio, then by keyword.
func (a *Analyzer) classifyEdit(oldStr, newStr string) string {
	oldLen, newLen := float64(len(oldStr)), float64(len(newStr))
	lower := strings.ToLower(newStr)
	switch {
	case newLen > oldLen*1.5:
		return locale.T(a.lang, "change.addition")
	case newLen < oldLen*0.5:
		return locale.T(a.lang, "change.deletion")
	case strings.Contains(lower, "bug") || strings.Contains(lower, "fix"):
		return locale.T(a.lang, "change.bugfix")
	case strings.Contains(lower, "improve"):
		return locale.T(a.lang, "change.improvement")
	}
	return locale.T(a.lang, "change.general")
}

func multiEditDetails(args map[string]interface{}) map[string]interface{} {
	edits := argEdits(args)
	total := 0
	for _, e := range edits {
		total += lineCount(argString(e, "old_string")) + lineCount(argString(e, "new_string"))
	}
	return map[string]interface{}{
		"edit_count":          len(edits),
		"total_lines_changed": total,
	}
}

func argString(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argEdits(args map[string]interface{}) []map[string]interface{} {
	if args == nil {
		return nil
	}
	raw, ok := args["edits"].([]interface{})
	if !ok {
		return nil
	}
	var edits []map[string]interface{}
	for _, e := range raw {
		if m, ok := e.(map[string]interface{}); ok {
			edits = append(edits, m)
		}
	}
	return edits
}
