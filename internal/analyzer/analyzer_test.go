package analyzer

import (
	"strings"
	"testing"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/transcript"
)

// fakeStatus is a canned StatusProvider.
type fakeStatus struct {
	staged    FileChangeSet
	unstaged  FileChangeSet
	untracked map[string][]string
}

func (f *fakeStatus) StagedChanges() (FileChangeSet, error)   { return f.staged, nil }
func (f *fakeStatus) UnstagedChanges() (FileChangeSet, error) { return f.unstaged, nil }
func (f *fakeStatus) ListUntrackedUnder(path string) ([]string, error) {
	return f.untracked[path], nil
}

func toolCall(name string, args map[string]interface{}) transcript.ToolCall {
	return transcript.ToolCall{Name: name, Arguments: args}
}

func TestAnalyze_RecentWindow(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "first request"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "old.go", "content": "x"}),
		}},
		{Role: "user", Content: "second request"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "new.go", "content": "y"}),
		}},
	}

	a := New(locale.English, nil)
	got := a.Analyze(events)

	if got.UserRequest != "second request" {
		t.Errorf("UserRequest = %q, want the last user turn", got.UserRequest)
	}
	if len(got.Operations) != 1 {
		t.Fatalf("Operations = %d, want 1 (only after the last user turn)", len(got.Operations))
	}
	if got.Operations[0].FilePath != "new.go" {
		t.Errorf("FilePath = %q, want %q", got.Operations[0].FilePath, "new.go")
	}
	if got.Summary != "1 operations executed" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestAnalyze_UserRequestTruncated(t *testing.T) {
	long := strings.Repeat("a", 1500)
	events := []transcript.Event{{Role: "user", Content: long}}

	got := New(locale.English, nil).Analyze(events)
	if len([]rune(got.UserRequest)) != 1000 {
		t.Errorf("UserRequest length = %d, want 1000", len([]rune(got.UserRequest)))
	}
	if strings.HasSuffix(got.UserRequest, "...") {
		t.Error("request cut must not carry an ellipsis marker")
	}
}

func TestAnalyze_AllowList(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "do things"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "a.go", "content": "x"}),
			toolCall("Task", map[string]interface{}{"prompt": "whatever"}),
			toolCall("SlashCommand", map[string]interface{}{"command": "/foo"}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	if len(got.Operations) != 1 {
		t.Errorf("Operations = %d, want 1 (tools outside the allow-list skipped)", len(got.Operations))
	}
}

func TestAnalyze_WriteHTMLDetails(t *testing.T) {
	content := "<html>\n<body>\n<form action=\"/login\">\n</form>\n<script>go()</script>\n</body>\n</html>"
	events := []transcript.Event{
		{Role: "user", Content: "make a login page"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "login.html", "content": content}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	op := got.Operations[0]

	if op.ChangeDetails["type"] != "HTML" {
		t.Errorf("type = %v, want HTML", op.ChangeDetails["type"])
	}
	features, _ := op.ChangeDetails["features"].([]string)
	if !containsString(features, "form elements") {
		t.Errorf("features = %v, want a form-related entry", features)
	}
	if !containsString(features, "embedded script") {
		t.Errorf("features = %v, want a script entry", features)
	}
	if op.ChangeDetails["lines_added"] != 7 {
		t.Errorf("lines_added = %v, want 7", op.ChangeDetails["lines_added"])
	}
	if op.Summary != "HTML file" {
		t.Errorf("Summary = %q", op.Summary)
	}
}

func TestAnalyze_WriteUppercaseHTML(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "make a page"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "page.html", "content": "<HTML>\n<BODY></BODY>\n</HTML>"}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	op := got.Operations[0]
	if op.ChangeDetails["type"] != "HTML" {
		t.Errorf("type = %v, want HTML for uppercase markup", op.ChangeDetails["type"])
	}
	if op.Summary != "HTML file" {
		t.Errorf("Summary = %q", op.Summary)
	}
}

func TestAnalyze_WritePythonDetails(t *testing.T) {
	content := "import os\nimport sys\n\nclass App:\n    def run(self):\n        pass\n\ndef main():\n    pass"
	events := []transcript.Event{
		{Role: "user", Content: "write the app"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Write", map[string]interface{}{"file_path": "app.py", "content": content}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	op := got.Operations[0]

	if op.ChangeDetails["type"] != "Python" {
		t.Errorf("type = %v, want Python", op.ChangeDetails["type"])
	}
	features, _ := op.ChangeDetails["features"].([]string)
	if !containsString(features, "2 imports") {
		t.Errorf("features = %v, want %q", features, "2 imports")
	}
	if !containsString(features, "1 classes") {
		t.Errorf("features = %v, want %q", features, "1 classes")
	}
	if !containsString(features, "2 functions") {
		t.Errorf("features = %v, want %q", features, "2 functions")
	}
}

func TestAnalyze_EditClassification(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{"large addition", "ab", "abcdefghij", "large addition"},
		{"large deletion", "abcdefghij", "ab", "large deletion"},
		{"bug fix", "abcdef", "abcfix", "bug fix"},
		{"improvement", "abcdefgh", "improved", "improvement"},
		{"general", "abcdef", "fedcba", "general update"},
	}

	a := New(locale.English, nil)
	for _, tc := range cases {
		events := []transcript.Event{
			{Role: "user", Content: "edit"},
			{Role: "assistant", ToolCalls: []transcript.ToolCall{
				toolCall("Edit", map[string]interface{}{
					"file_path": "f.go", "old_string": tc.old, "new_string": tc.new,
				}),
			}},
		}
		got := a.Analyze(events)
		if ct := got.Operations[0].ChangeDetails["change_type"]; ct != tc.want {
			t.Errorf("%s: change_type = %v, want %q", tc.name, ct, tc.want)
		}
	}
}

func TestAnalyze_MultiEditDetails(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "edit lots"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("MultiEdit", map[string]interface{}{
				"file_path": "f.go",
				"edits": []interface{}{
					map[string]interface{}{"old_string": "a\nb", "new_string": "c"},
					map[string]interface{}{"old_string": "d", "new_string": "e\nf\ng"},
				},
			}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	op := got.Operations[0]
	if op.ChangeDetails["edit_count"] != 2 {
		t.Errorf("edit_count = %v, want 2", op.ChangeDetails["edit_count"])
	}
	if op.ChangeDetails["total_lines_changed"] != 7 {
		t.Errorf("total_lines_changed = %v, want 7", op.ChangeDetails["total_lines_changed"])
	}
}

func TestAnalyze_BashPaths(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "run commands"},
		{Role: "assistant", ToolCalls: []transcript.ToolCall{
			toolCall("Bash", map[string]interface{}{"command": "git commit -m msg"}),
			toolCall("Bash", map[string]interface{}{"command": strings.Repeat("x", 80)}),
			toolCall("Glob", map[string]interface{}{"pattern": "**/*.go"}),
			toolCall("Grep", map[string]interface{}{"pattern": strings.Repeat("p", 40)}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	ops := got.Operations

	if ops[0].FilePath != "Git operation" {
		t.Errorf("git command FilePath = %q", ops[0].FilePath)
	}
	if ops[0].Summary != "git commit" {
		t.Errorf("git command Summary = %q", ops[0].Summary)
	}
	if ops[1].FilePath != strings.Repeat("x", 50)+"..." {
		t.Errorf("long command FilePath = %q", ops[1].FilePath)
	}
	if ops[2].FilePath != "Pattern: **/*.go" {
		t.Errorf("glob FilePath = %q", ops[2].FilePath)
	}
	if !strings.HasPrefix(ops[3].FilePath, "Search: "+strings.Repeat("p", 30)) {
		t.Errorf("grep FilePath = %q", ops[3].FilePath)
	}
}

func TestAnalyze_AssistantResponses(t *testing.T) {
	long := strings.Repeat("b", 80)
	events := []transcript.Event{
		{Role: "user", Content: "do it"},
		{Role: "assistant", Content: "[Tool invocation echo that must be skipped]"},
		{Role: "assistant", Content: "I created the new module with the following parts."},
		{Role: "assistant", Content: long},
		{Role: "assistant", Content: "short"},
	}

	got := New(locale.English, nil).Analyze(events)
	if len(got.AssistantResponses) != 2 {
		t.Fatalf("AssistantResponses = %d, want 2", len(got.AssistantResponses))
	}
	if !strings.Contains(got.AssistantResponses[0], "created") {
		t.Errorf("first response = %q", got.AssistantResponses[0])
	}
	if got.AssistantResponses[1] != long {
		t.Errorf("second response = %q", got.AssistantResponses[1])
	}
}

func TestAnalyze_RepeatedResponsesKept(t *testing.T) {
	msg := "I implemented the handler as follows."
	events := []transcript.Event{
		{Role: "user", Content: "do it"},
		{Role: "assistant", Content: msg},
		{Role: "assistant", Content: msg},
	}

	got := New(locale.English, nil).Analyze(events)
	if len(got.AssistantResponses) != 2 {
		t.Errorf("AssistantResponses = %d, want both occurrences recorded", len(got.AssistantResponses))
	}
}

func TestAnalyze_ContextMessage(t *testing.T) {
	events := []transcript.Event{
		{Role: "user", Content: "change it"},
		{Role: "assistant", Content: "Updating the handler now.", ToolCalls: []transcript.ToolCall{
			toolCall("Edit", map[string]interface{}{"file_path": "h.go", "old_string": "a", "new_string": "b"}),
		}},
	}

	got := New(locale.English, nil).Analyze(events)
	if msg := got.Operations[0].Context["assistant_message"]; msg != "Updating the handler now." {
		t.Errorf("assistant_message = %q", msg)
	}
}

func TestAnalyze_UsesStagedChanges(t *testing.T) {
	status := &fakeStatus{
		staged: FileChangeSet{Added: []string{"a.go"}, Modified: []string{"b.go"}},
	}
	events := []transcript.Event{{Role: "user", Content: "hi"}}

	got := New(locale.English, status).Analyze(events)
	if len(got.FilesChanged.Added) != 1 || len(got.FilesChanged.Modified) != 1 {
		t.Errorf("FilesChanged = %+v, want staged set", got.FilesChanged)
	}
}

func TestAnalyze_NilEventsFallsBack(t *testing.T) {
	status := &fakeStatus{
		unstaged: FileChangeSet{Added: []string{"README.md"}, Modified: []string{"guide.txt"}},
	}

	got := New(locale.English, status).Analyze(nil)
	if got.UserRequest != "documentation work" {
		t.Errorf("UserRequest = %q, want the docs guess", got.UserRequest)
	}
	if len(got.Operations) != 2 {
		t.Errorf("Operations = %d, want one synthetic op per file", len(got.Operations))
	}
	if got.Summary != "added 1, modified 1, deleted 0" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.AssistantResponses) != 0 {
		t.Errorf("AssistantResponses = %v, want empty", got.AssistantResponses)
	}
}

func TestFromStatus_ExpandsDirectories(t *testing.T) {
	status := &fakeStatus{
		unstaged:  FileChangeSet{Added: []string{"newdir/"}},
		untracked: map[string][]string{"newdir/": {"newdir/a.go", "newdir/b.go"}},
	}

	got := New(locale.English, status).FromStatus()
	if len(got.FilesChanged.Added) != 2 {
		t.Fatalf("Added = %v, want expanded directory contents", got.FilesChanged.Added)
	}
	if got.FilesChanged.Added[0] != "newdir/a.go" {
		t.Errorf("Added[0] = %q", got.FilesChanged.Added[0])
	}
}

func TestFromStatus_TestWorkGuess(t *testing.T) {
	status := &fakeStatus{
		unstaged: FileChangeSet{Added: []string{"pkg/foo_test.go"}, Modified: []string{"spec/bar_spec.rb"}},
	}

	got := New(locale.English, status).FromStatus()
	if got.UserRequest != "test work" {
		t.Errorf("UserRequest = %q, want the test guess", got.UserRequest)
	}
}

func TestFromStatus_Japanese(t *testing.T) {
	status := &fakeStatus{
		unstaged: FileChangeSet{Modified: []string{"main.go"}},
	}

	got := New(locale.Japanese, status).FromStatus()
	if got.Summary != "追加0件、変更1件、削除0件" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.Operations[0].Action != "編集" {
		t.Errorf("Action = %q", got.Operations[0].Action)
	}
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
