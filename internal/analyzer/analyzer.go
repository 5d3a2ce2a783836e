package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/transcript"
)

// FileChangeSet is the added/modified/deleted partition of files relevant to
// a change. All three slices are always present (possibly empty, never nil
// in meaning); order is discovery order and duplicates are possible.
type FileChangeSet struct {
	Added    []string
	Modified []string
	Deleted  []string
}

// Empty reports whether no bucket holds any path.
func (cs FileChangeSet) Empty() bool {
	return len(cs.Added) == 0 && len(cs.Modified) == 0 && len(cs.Deleted) == 0
}

// Total returns the number of paths across all buckets.
func (cs FileChangeSet) Total() int {
	return len(cs.Added) + len(cs.Modified) + len(cs.Deleted)
}

// Operation is a normalized, classified tool call from the session log.
type Operation struct {
	Tool          string
	FilePath      string
	Action        string
	RawArguments  map[string]interface{}
	Summary       string
	ChangeDetails map[string]interface{}
	Context       map[string]string
	Timestamp     string
}

// Analysis is the analyzer's output: one structured record per session.
type Analysis struct {
	UserRequest        string
	Operations         []Operation
	FilesChanged       FileChangeSet
	Summary            string
	AssistantResponses []string
}

// StatusProvider supplies repository status for enriching file-change data.
type StatusProvider interface {
	StagedChanges() (FileChangeSet, error)
	UnstagedChanges() (FileChangeSet, error)
	ListUntrackedUnder(path string) ([]string, error)
}

// Analyzer turns a session event log into an Analysis.
type Analyzer struct {
	lang   locale.Lang
	status StatusProvider
}

// New creates an analyzer for the given language. status may be nil, in
// which case file-change enrichment is skipped.
func New(lang locale.Lang, status StatusProvider) *Analyzer {
	return &Analyzer{lang: lang, status: status}
}

// toolMarker prefixes assistant content that merely echoes a tool
// invocation; such content is never treated as an explanation.
const toolMarker = "[Tool"

// userRequestMax is the cap on the extracted user request.
const userRequestMax = 1000

// Analyze produces an Analysis from an event log. A nil log means no
// transcript was available and triggers the status-derived fallback;
// Analyze never fails.
func (a *Analyzer) Analyze(events []transcript.Event) Analysis {
	if events == nil {
		return a.FromStatus()
	}

	// Recent window: everything from the last user turn onward.
	k := 0
	userRequest := ""
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Role == transcript.RoleUser {
			k = i
			// Plain cut, no ellipsis: the request is echoed verbatim in
			// the message body.
			if r := []rune(events[i].Content); len(r) > userRequestMax {
				userRequest = string(r[:userRequestMax])
			} else {
				userRequest = events[i].Content
			}
			break
		}
	}
	recent := events[k:]

	var ops []Operation
	assistantCount := 0
	var responses []string

	for _, ev := range recent {
		if ev.Role != transcript.RoleAssistant {
			continue
		}
		assistantCount++

		for _, tc := range ev.ToolCalls {
			if !allowedTools[tc.Name] {
				continue
			}
			ops = append(ops, a.buildOperation(tc, ev))
		}

		// Every qualifying response is kept; deduplication happens when
		// the message body is rendered.
		if resp, ok := extractResponse(ev.Content); ok {
			responses = append(responses, resp)
		}
	}

	var changed FileChangeSet
	if a.status != nil {
		if cs, err := a.status.StagedChanges(); err == nil {
			changed = cs
		}
	}

	return Analysis{
		UserRequest:        userRequest,
		Operations:         ops,
		FilesChanged:       changed,
		Summary:            fmt.Sprintf(locale.T(a.lang, "summary.ops"), assistantCount),
		AssistantResponses: responses,
	}
}

// explanatoryCues mark assistant content worth keeping at full length.
var explanatoryCues = []string{
	"created", "completed", "implemented", "added", "fixed",
	"the following", "as follows", "# ", "## ",
	"作成", "完了", "実装", "追加", "修正", "以下",
}

var colonLabelRe = regexp.MustCompile(`(?m)^[^\n:：]{1,30}[:：]\s*$`)

// extractResponse applies the assistant-response retention rule: explanatory
// content keeps up to 2000 characters, other long content up to 500, short
// content is discarded.
func extractResponse(content string) (string, bool) {
	if content == "" || strings.HasPrefix(content, toolMarker) {
		return "", false
	}
	lower := strings.ToLower(content)
	for _, cue := range explanatoryCues {
		if strings.Contains(lower, cue) {
			return truncate(content, 2000), true
		}
	}
	if colonLabelRe.MatchString(content) {
		return truncate(content, 2000), true
	}
	if len([]rune(content)) > 50 {
		return truncate(content, 500), true
	}
	return "", false
}

// truncate caps s at max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
