package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/wodl/internal/ui/style"
)

// confirmModel is a single-key y/N question. Any key other than y or Y declines;
// ctrl+c aborts.
type confirmModel struct {
	question string
	accepted bool
	aborted  bool
	done     bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Type == tea.KeyCtrlC:
		m.aborted = true
	case key.String() == "y" || key.String() == "Y":
		m.accepted = true
	}
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m confirmModel) View() string {
	line := style.Question.Render(m.question) + " " + style.Hint.Render("(y/N)") + " "
	if !m.done {
		return line
	}
	if m.aborted {
		return line + "\n"
	}
	if m.accepted {
		return line + "y\n"
	}
	return line + "n\n"
}
