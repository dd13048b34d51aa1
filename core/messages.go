package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// CommandExecuteMsg asks the model to execute a registered command.
type CommandExecuteMsg struct {
	CommandID string
}

// CommandExecutedMsg reports a successful execution.
type CommandExecutedMsg struct {
	CommandID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func ExecuteCmd(id string) tea.Cmd {
	return func() tea.Msg { return CommandExecuteMsg{CommandID: id} }
}
