package transcript

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Internal types for parsing. A transcript line is either a Claude Code
// record (type + nested message) or a flat role/content object; both
// shapes decode into the same struct and convert to an Event.

type record struct {
	Type      string      `json:"type"`
	Message   *message    `json:"message,omitempty"`
	Role      string      `json:"role,omitempty"`
	Content   interface{} `json:"content,omitempty"`
	ToolCalls []toolUse   `json:"tool_calls,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	IsMeta    bool        `json:"isMeta,omitempty"`
}

type message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type toolUse struct {
	ToolName  string                 `json:"tool_name,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	Input     map[string]interface{} `json:"input,omitempty"`
}

// ReadFile parses a newline-delimited JSON transcript into events.
// Malformed lines are skipped rather than failing the whole read.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		var r record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue // Skip malformed lines
		}
		if ev, ok := r.toEvent(); ok {
			events = append(events, ev)
		}
	}

	return events, scanner.Err()
}

func (r *record) toEvent() (Event, bool) {
	if r.IsMeta {
		return Event{}, false
	}

	role := r.Role
	var content interface{} = r.Content
	if r.Message != nil {
		role = r.Message.Role
		content = r.Message.Content
	} else if role == "" {
		role = r.Type
	}
	if role != RoleUser && role != RoleAssistant {
		return Event{}, false
	}

	ev := Event{Role: role, Timestamp: r.Timestamp}

	switch c := content.(type) {
	case string:
		ev.Content = c
	case []interface{}:
		// Claude Code block content: text blocks plus tool_use blocks
		for _, item := range c {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			switch m["type"] {
			case "text":
				if text, ok := m["text"].(string); ok {
					ev.Content += text
				}
			case "tool_use":
				name, _ := m["name"].(string)
				if name == "" {
					continue
				}
				args, _ := m["input"].(map[string]interface{})
				ev.ToolCalls = append(ev.ToolCalls, ToolCall{Name: name, Arguments: args})
			}
		}
	}

	for _, tc := range r.ToolCalls {
		name := tc.ToolName
		if name == "" {
			name = tc.Name
		}
		if name == "" {
			continue
		}
		args := tc.Arguments
		if args == nil {
			args = tc.Input
		}
		ev.ToolCalls = append(ev.ToolCalls, ToolCall{Name: name, Arguments: args})
	}

	return ev, true
}

// DataDir returns the Claude Code projects directory, honoring CLAUDE_DIR.
func DataDir() string {
	if envDir := os.Getenv("CLAUDE_DIR"); envDir != "" {
		return filepath.Join(envDir, "projects")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "projects")
}

// Discover locates the newest session transcript for workDir under dataDir.
// Claude encodes the working directory into the project directory name
// (/Users/x/code/foo -> -Users-x-code-foo); agent transcripts are skipped.
func Discover(dataDir, workDir string) (string, error) {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", err
	}
	projDir := filepath.Join(dataDir, encodeProject(abs))

	entries, err := os.ReadDir(projDir)
	if err != nil {
		return "", err
	}

	type sessionFile struct {
		path  string
		mtime int64
	}
	var sessions []sessionFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".jsonl") || strings.HasPrefix(name, "agent-") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, sessionFile{
			path:  filepath.Join(projDir, name),
			mtime: info.ModTime().UnixNano(),
		})
	}
	if len(sessions) == 0 {
		return "", os.ErrNotExist
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].mtime > sessions[j].mtime
	})
	return sessions[0].path, nil
}

func encodeProject(absPath string) string {
	encoded := strings.ReplaceAll(absPath, string(filepath.Separator), "-")
	encoded = strings.ReplaceAll(encoded, ".", "-")
	if !strings.HasPrefix(encoded, "-") {
		encoded = "-" + encoded
	}
	return encoded
}
