package composer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// workTools produce file-change bullets; otherTools produce one-line notes.
var (
	workTools  = map[string]bool{"Write": true, "Edit": true, "MultiEdit": true}
	otherTools = map[string]bool{"Read": true, "Bash": true, "WebFetch": true, "TodoWrite": true, "Glob": true, "Grep": true}
)

// body builds the multi-section detail text. Sections that yield no content
// are dropped; consecutive blank lines are collapsed.
func (c *Composer) body(a analyzer.Analysis) string {
	var sections []string
	add := func(header string, lines []string) {
		if len(lines) == 0 {
			return
		}
		sections = append(sections, header+"\n"+strings.Join(lines, "\n"))
	}

	add(locale.T(c.lang, "header.work"), c.workLines(a.Operations))
	add(locale.T(c.lang, "header.other"), c.otherLines(a.Operations))

	fileLines := c.fileLines(a.FilesChanged)
	if c.files {
		add(locale.T(c.lang, "header.files"), fileLines)
	}

	add(locale.T(c.lang, "header.rollup"), c.rollupLines(a))

	if strings.TrimSpace(a.UserRequest) != "" {
		add(locale.T(c.lang, "header.request"), []string{a.UserRequest})
	}

	add(locale.T(c.lang, "header.notes"), c.responseLines(a.AssistantResponses))

	// Closing changed-files listing, reconstructed from operations when the
	// change set itself was empty.
	if c.files {
		closing := fileLines
		if len(closing) == 0 {
			closing = c.fileLines(changeSetFromOps(a.Operations))
		}
		add(locale.T(c.lang, "header.files"), closing)
	}

	return collapseBlankLines(strings.Join(sections, "\n\n"))
}

// workLines renders one bullet per file-writing operation, with sub-bullets
// drawn from its change details.
func (c *Composer) workLines(ops []analyzer.Operation) []string {
	var lines []string
	for _, op := range ops {
		if !workTools[op.Tool] || op.FilePath == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", op.Action, op.FilePath))
		subs := c.detailLines(op.ChangeDetails)
		if len(subs) == 0 {
			subs = c.rawFallbackLines(op.RawArguments)
		}
		lines = append(lines, subs...)
	}
	return lines
}

func (c *Composer) detailLines(details map[string]interface{}) []string {
	if len(details) == 0 {
		return nil
	}
	var lines []string
	if t, ok := details["type"].(string); ok && t != "" {
		lines = append(lines, "  - "+fmt.Sprintf(locale.T(c.lang, "detail.type"), t))
	}
	if features, ok := details["features"].([]string); ok {
		for _, f := range features {
			lines = append(lines, "  - "+f)
		}
	}
	if n, ok := details["lines_added"].(int); ok && n > 0 {
		lines = append(lines, "  - "+fmt.Sprintf(locale.T(c.lang, "detail.lines"), n))
	}
	if n, ok := details["lines_removed"].(int); ok && n > 0 {
		lines = append(lines, "  - "+fmt.Sprintf(locale.T(c.lang, "detail.removed"), n))
	}
	if n, ok := details["edit_count"].(int); ok && n > 0 {
		lines = append(lines, "  - "+fmt.Sprintf(locale.T(c.lang, "detail.edits"), n))
	}
	if n, ok := details["total_lines_changed"].(int); ok && n > 0 {
		lines = append(lines, "  - "+fmt.Sprintf(locale.T(c.lang, "detail.total"), n))
	}
	if ct, ok := details["change_type"].(string); ok && ct != "" {
		lines = append(lines, "  - "+ct)
	}
	return lines
}

// rawFallbackLines inspects the original arguments when no change details
// were computed.
func (c *Composer) rawFallbackLines(args map[string]interface{}) []string {
	size := 0
	for _, key := range []string{"content", "new_string"} {
		if v, ok := args[key].(string); ok {
			size += len(v)
		}
	}
	if size == 0 {
		return nil
	}
	return []string{"  - " + fmt.Sprintf(locale.T(c.lang, "detail.size"), size)}
}

func (c *Composer) otherLines(ops []analyzer.Operation) []string {
	var lines []string
	for _, op := range ops {
		if !otherTools[op.Tool] {
			continue
		}
		detail := op.FilePath
		if op.Tool == "WebFetch" {
			if url, ok := op.RawArguments["url"].(string); ok {
				detail = url
			}
		}
		if detail == "" {
			lines = append(lines, "- "+op.Action)
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", op.Action, detail))
	}
	return lines
}

func (c *Composer) fileLines(cs analyzer.FileChangeSet) []string {
	var lines []string
	if len(cs.Added) > 0 {
		lines = append(lines, fmt.Sprintf("- %s: %s", locale.T(c.lang, "files.added"), strings.Join(cs.Added, ", ")))
	}
	if len(cs.Modified) > 0 {
		lines = append(lines, fmt.Sprintf("- %s: %s", locale.T(c.lang, "files.modified"), strings.Join(cs.Modified, ", ")))
	}
	if len(cs.Deleted) > 0 {
		lines = append(lines, fmt.Sprintf("- %s: %s", locale.T(c.lang, "files.deleted"), strings.Join(cs.Deleted, ", ")))
	}
	return lines
}

// changeSetFromOps rebuilds the added/modified/deleted buckets from the
// operations' file paths and actions.
func changeSetFromOps(ops []analyzer.Operation) analyzer.FileChangeSet {
	var cs analyzer.FileChangeSet
	for _, op := range ops {
		if !fileTools[op.Tool] || op.FilePath == "" || op.Tool == "Read" {
			continue
		}
		switch op.Tool {
		case "Write", "NotebookWrite":
			cs.Added = append(cs.Added, op.FilePath)
		case "Delete":
			cs.Deleted = append(cs.Deleted, op.FilePath)
		default:
			cs.Modified = append(cs.Modified, op.FilePath)
		}
	}
	return cs
}

func (c *Composer) rollupLines(a analyzer.Analysis) []string {
	paths := changedPaths(a)
	if len(a.Operations) == 0 && len(paths) == 0 {
		return nil
	}

	lines := []string{
		"- " + fmt.Sprintf(locale.T(c.lang, "rollup.ops"), len(a.Operations)),
		"- " + fmt.Sprintf(locale.T(c.lang, "rollup.files"), len(paths)),
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		lower := strings.ToLower(p)
		for _, r := range workLabelRules {
			if strings.Contains(lower, r.substr) && !seen[r.key] {
				seen[r.key] = true
				lines = append(lines, "- "+locale.T(c.lang, r.key))
			}
		}
	}
	return lines
}

// Explanatory-line markers for assistant-response excerpts.
var explanatoryLineRe = regexp.MustCompile(`^(#{1,6}\s|[-*・]\s|.{1,30}[:：]\s*$)`)

// responseLines keeps only the lines of each response that look like an
// explanatory section, stopping each captured section at the next blank
// line. Duplicate responses are dropped, order preserved.
func (c *Composer) responseLines(responses []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, resp := range responses {
		if seen[resp] {
			continue
		}
		seen[resp] = true

		capturing := false
		for _, line := range strings.Split(resp, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				capturing = false
				continue
			}
			if capturing || explanatoryLineRe.MatchString(trimmed) {
				capturing = true
				out = append(out, line)
			}
		}
	}
	return out
}

func collapseBlankLines(s string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
