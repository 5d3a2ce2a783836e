package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModel_PrefillsMessage(t *testing.T) {
	m := NewModel("feat: add widget\n\ndetails here")
	if got := m.editor.Value(); !strings.Contains(got, "feat: add widget") {
		t.Errorf("editor value = %q", got)
	}
}

func TestUpdate_ConfirmReturnsEditedMessage(t *testing.T) {
	m := NewModel("original message")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	final := updated.(Model)

	if final.result == nil {
		t.Fatal("confirm should set a result")
	}
	if final.result.Action != ActionCommit {
		t.Errorf("Action = %v, want ActionCommit", final.result.Action)
	}
	if final.result.Message != "original message" {
		t.Errorf("Message = %q", final.result.Message)
	}
}

func TestUpdate_CancelDiscards(t *testing.T) {
	m := NewModel("message")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	final := updated.(Model)

	if final.result == nil || final.result.Action != ActionCancel {
		t.Fatalf("result = %+v, want cancel", final.result)
	}
	if final.result.Message != "" {
		t.Errorf("cancelled result should carry no message, got %q", final.result.Message)
	}
}

func TestView_ShowsHelp(t *testing.T) {
	m := NewModel("message")
	view := m.View()
	if !strings.Contains(view, "ctrl+s") {
		t.Errorf("view missing confirm help: %q", view)
	}
	if !strings.Contains(view, "esc") {
		t.Errorf("view missing cancel help: %q", view)
	}
}

func TestView_EmptyAfterDone(t *testing.T) {
	m := NewModel("message")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if v := updated.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}
