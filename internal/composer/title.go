package composer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// labelRule maps a file-path substring to a work-category label key.
// Evaluated in order; a path can contribute several labels.
type labelRule struct {
	substr string
	key    string
}

var workLabelRules = []labelRule{
	{"test", "label.tests"},
	{"readme", "label.readme"},
	{".md", "label.docs"},
	{".html", "label.html"},
	{".css", "label.styles"},
	{".js", "label.script"},
	{".ts", "label.script"},
	{".py", "label.python"},
	{".go", "label.gocode"},
	{".json", "label.config"},
	{".yml", "label.config"},
	{".yaml", "label.config"},
	{"config", "label.config"},
	{"fix", "label.fixes"},
}

// title synthesizes the one-line summary, trying each strategy in order and
// stopping at the first non-empty result.
func (c *Composer) title(a analyzer.Analysis) string {
	t := c.workTitle(a)
	if t == "" {
		t = c.requestTitle(a.UserRequest)
	}
	if t == "" {
		t = c.operationsTitle(a.Operations)
	}
	if t == "" {
		t = fmt.Sprintf(locale.T(c.lang, "title.lastresort"), len(changedPaths(a)))
	}
	return truncate(t, c.maxTitle)
}

// changedPaths unions transcript operation paths with added/modified files,
// deduplicated in discovery order.
func changedPaths(a analyzer.Analysis) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, op := range a.Operations {
		if fileTools[op.Tool] && op.Tool != "Read" {
			add(op.FilePath)
		}
	}
	for _, p := range a.FilesChanged.Added {
		add(p)
	}
	for _, p := range a.FilesChanged.Modified {
		add(p)
	}
	return paths
}

// workTitle infers the work performed from the changed file paths.
func (c *Composer) workTitle(a analyzer.Analysis) string {
	paths := changedPaths(a)
	if len(paths) == 0 {
		return ""
	}

	var labels []string
	labelSeen := make(map[string]bool)
	fixRelated := false
	for _, p := range paths {
		lower := strings.ToLower(p)
		for _, r := range workLabelRules {
			if strings.Contains(lower, r.substr) && !labelSeen[r.key] {
				labelSeen[r.key] = true
				labels = append(labels, locale.T(c.lang, r.key))
				if r.key == "label.fixes" {
					fixRelated = true
				}
			}
		}
	}
	sort.Strings(labels)
	if len(labels) > 2 {
		labels = labels[:2]
	}

	var actions []string
	actionSeen := make(map[string]bool)
	for _, op := range a.Operations {
		if op.Action != "" && !actionSeen[op.Action] {
			actionSeen[op.Action] = true
			actions = append(actions, op.Action)
		}
	}

	createVerb := locale.ActionVerb(c.lang, "Write")
	editVerb := locale.ActionVerb(c.lang, "Edit")

	if len(labels) > 0 && len(actions) > 0 {
		joined := strings.Join(labels, ", ")
		switch {
		case len(actions) == 1 && actions[0] == createVerb:
			return fmt.Sprintf(locale.T(c.lang, "title.create"), joined)
		case len(actions) == 1 && actions[0] == editVerb:
			return fmt.Sprintf(locale.T(c.lang, "title.improve"), joined)
		case fixRelated:
			return fmt.Sprintf(locale.T(c.lang, "title.fix"), joined)
		default:
			return fmt.Sprintf(locale.T(c.lang, "title.update"), joined)
		}
	}

	if len(paths) == 1 {
		name := filepath.Base(paths[0])
		if isCreated(a, paths[0], actions, createVerb) {
			return fmt.Sprintf(locale.T(c.lang, "title.file.created"), name)
		}
		return fmt.Sprintf(locale.T(c.lang, "title.file.updated"), name)
	}

	return ""
}

func isCreated(a analyzer.Analysis, path string, actions []string, createVerb string) bool {
	if len(actions) == 1 && actions[0] == createVerb {
		return true
	}
	if len(actions) > 0 {
		return false
	}
	for _, p := range a.FilesChanged.Added {
		if p == path {
			return true
		}
	}
	return false
}

// Leading verb+object clause patterns, per language.
var (
	jaRequestRe = regexp.MustCompile(`\S{1,30}(?:を|の)(?:作成|追加|実装|修正|削除|更新)`)
	enRequestRe = regexp.MustCompile(`(?i)\b(create|add|implement|fix|delete|update|build)\b[ \t]+([^\n.!?]+)`)
)

// requestTitle extracts a short clause from the raw user request.
func (c *Composer) requestTitle(request string) string {
	request = strings.TrimSpace(request)
	if request == "" {
		return ""
	}
	if m := jaRequestRe.FindString(request); m != "" {
		return truncate(m, 50)
	}
	if m := enRequestRe.FindStringSubmatch(request); m != nil {
		return truncate(strings.TrimSpace(m[1]+" "+m[2]), 50)
	}
	return truncate(request, 50)
}

// operationsTitle derives a phrase from the operations alone, grouping by
// file-extension homogeneity.
func (c *Composer) operationsTitle(ops []analyzer.Operation) string {
	var paths []string
	actionCount := make(map[string]int)
	for _, op := range ops {
		if fileTools[op.Tool] && op.Tool != "Read" && op.FilePath != "" {
			paths = append(paths, op.FilePath)
		}
		if op.Action != "" {
			actionCount[op.Action]++
		}
	}
	if len(paths) == 0 {
		return ""
	}

	exts := make(map[string]bool)
	hasTest := false
	codeOnly := true
	for _, p := range paths {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
		exts[ext] = true
		if strings.Contains(strings.ToLower(p), "test") {
			hasTest = true
		}
		switch ext {
		case "py", "js", "ts", "jsx", "tsx":
		default:
			codeOnly = false
		}
	}

	verb := c.batchVerb(topAction(actionCount))
	count := len(paths)

	switch {
	case len(exts) == 1 && exts["md"]:
		return fmt.Sprintf(locale.T(c.lang, "title.batch"), count, locale.T(c.lang, "category.docs"), verb)
	case hasTest:
		return fmt.Sprintf(locale.T(c.lang, "title.batch"), count, locale.T(c.lang, "category.tests"), verb)
	case codeOnly:
		return fmt.Sprintf(locale.T(c.lang, "title.batch"), count, locale.T(c.lang, "category.code"), verb)
	}
	return fmt.Sprintf(locale.T(c.lang, "title.batch.mixed"), count, "", verb)
}

func topAction(counts map[string]int) string {
	top, best := "", 0
	for action, n := range counts {
		if n > best || (n == best && action < top) {
			top, best = action, n
		}
	}
	return top
}

// batchVerb maps an action verb onto its batch-title form.
func (c *Composer) batchVerb(action string) string {
	switch action {
	case locale.ActionVerb(c.lang, "Write"):
		return locale.T(c.lang, "batch.verb.created")
	case locale.ActionVerb(c.lang, "Delete"):
		return locale.T(c.lang, "batch.verb.deleted")
	}
	return locale.T(c.lang, "batch.verb.updated")
}
