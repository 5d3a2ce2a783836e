package analyzer

import (
	"fmt"
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// FromStatus reconstructs an Analysis from repository status alone, for runs
// where no transcript is available. One synthetic Operation is built per
// changed file; the request phrase is guessed from file extensions.
func (a *Analyzer) FromStatus() Analysis {
	var changed FileChangeSet
	if a.status != nil {
		if cs, err := a.status.UnstagedChanges(); err == nil {
			changed = a.ExpandDirectories(cs)
		}
	}

	var ops []Operation
	for _, f := range changed.Added {
		ops = append(ops, a.syntheticOp("Write", f))
	}
	for _, f := range changed.Modified {
		ops = append(ops, a.syntheticOp("Edit", f))
	}
	for _, f := range changed.Deleted {
		ops = append(ops, a.syntheticOp("Delete", f))
	}

	return Analysis{
		UserRequest:  a.guessRequest(changed),
		Operations:   ops,
		FilesChanged: changed,
		Summary: fmt.Sprintf(locale.T(a.lang, "summary.counts"),
			len(changed.Added), len(changed.Modified), len(changed.Deleted)),
		AssistantResponses: nil,
	}
}

func (a *Analyzer) syntheticOp(tool, path string) Operation {
	return Operation{
		Tool:     tool,
		FilePath: path,
		Action:   locale.ActionVerb(a.lang, tool),
	}
}

// ExpandDirectories replaces untracked directory entries (reported by git
// with a trailing separator) with the untracked files they contain.
func (a *Analyzer) ExpandDirectories(cs FileChangeSet) FileChangeSet {
	out := FileChangeSet{Modified: cs.Modified, Deleted: cs.Deleted}
	for _, p := range cs.Added {
		if strings.HasSuffix(p, "/") && a.status != nil {
			if files, err := a.status.ListUntrackedUnder(p); err == nil && len(files) > 0 {
				out.Added = append(out.Added, files...)
				continue
			}
		}
		out.Added = append(out.Added, p)
	}
	return out
}

var docExtensions = []string{".md", ".txt", ".rst", ".doc", ".docx"}

// guessRequest picks a generic request phrase from the changed files'
// extensions when the real user request is unknown.
func (a *Analyzer) guessRequest(cs FileChangeSet) string {
	all := make([]string, 0, cs.Total())
	all = append(all, cs.Added...)
	all = append(all, cs.Modified...)
	all = append(all, cs.Deleted...)
	if len(all) == 0 {
		return locale.T(a.lang, "request.files")
	}

	allDocs, allTests := true, true
	for _, f := range all {
		lower := strings.ToLower(f)
		if !hasAnySuffix(lower, docExtensions) {
			allDocs = false
		}
		if !strings.Contains(lower, "test") && !strings.Contains(lower, "spec") {
			allTests = false
		}
	}

	switch {
	case allDocs:
		return locale.T(a.lang, "request.docs")
	case allTests:
		return locale.T(a.lang, "request.tests")
	}
	return locale.T(a.lang, "request.files")
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
