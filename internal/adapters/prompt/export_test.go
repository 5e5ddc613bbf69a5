package prompt

import tea "github.com/charmbracelet/bubbletea"

// NewConfirmModel exposes the confirmation model to tests.
func NewConfirmModel(question string) tea.Model {
	return newConfirmModel(question)
}

// Accepted reports the answer held by a confirmation model.
func Accepted(m tea.Model) bool {
	cm, ok := m.(confirmModel)
	return ok && cm.accepted
}

// Aborted reports whether a confirmation model was interrupted.
func Aborted(m tea.Model) bool {
	cm, ok := m.(confirmModel)
	return ok && cm.aborted
}

// ReuseQuestion exposes the cache reuse question.
var ReuseQuestion = reuseQuestion
