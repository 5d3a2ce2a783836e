package transcript

// Event is one entry in a session log: a user turn, an assistant turn, or an
// assistant turn carrying tool invocations.
type Event struct {
	Role      string
	Content   string
	ToolCalls []ToolCall
	Timestamp string
}

// ToolCall is a single tool invocation proposed by the assistant.
type ToolCall struct {
	Name      string
	Arguments map[string]interface{}
}

// Roles recognized in a session log.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
