// Package tui implements the interactive lampboard front-end: type a
// letter, the rotors advance, and the enciphered letter lights up.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/enigma-m3/enigma/machine"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D7AF5F")).
			MarginLeft(2).
			MarginTop(1)

	rotorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D7AF5F")).
			Padding(0, 1)

	lampOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585858"))

	lampOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF5F"))

	tapeLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AFAF"))

	boardStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)
)

// lampRows is the historical lampboard layout of the machine.
var lampRows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

type keyMap struct {
	Reset key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset rotors"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reset, k.Quit}}
}

// Model drives one interactive machine session.  It consumes only the
// machine's public surface: Process one letter at a time, Positions for the
// rotor windows, Reset to return to the start position.
type Model struct {
	machine *machine.Machine
	input   string
	output  string
	lit     byte
	help    help.Model
}

// New returns a session model for the given machine.
func New(m *machine.Machine) Model {
	return Model{machine: m, help: help.New()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reset):
			m.machine.Reset()
			m.input, m.output, m.lit = "", "", 0
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			// Non-letter keystrokes light nothing, like the real
			// keyboard.  There is no backspace: the rotors cannot
			// step backwards.
			out, err := m.machine.Process(string(msg.Runes[0]))
			if err != nil {
				return m, nil
			}
			m.input += strings.ToUpper(string(msg.Runes[0]))
			m.output += out
			m.lit = out[0]
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ENIGMA M3"))
	b.WriteString("\n")

	pos := m.machine.Positions()
	windows := make([]string, 0, 3)
	for i := 0; i < len(pos); i++ {
		windows = append(windows, rotorStyle.Render(string(pos[i])))
	}
	b.WriteString(boardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, windows...)))
	b.WriteString("\n")

	b.WriteString(boardStyle.Render(m.lampboard()))
	b.WriteString("\n")

	b.WriteString(boardStyle.Render(
		tapeLabelStyle.Render("in  ") + machine.Groups(m.input) + "\n" +
			tapeLabelStyle.Render("out ") + machine.Groups(m.output)))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(keys)))
	b.WriteString("\n")
	return b.String()
}

// lampboard renders the three lamp rows with the last output letter lit.
func (m Model) lampboard() string {
	rows := make([]string, 0, len(lampRows))
	for i, row := range lampRows {
		cells := make([]string, 0, len(row))
		for _, r := range row {
			if byte(r) == m.lit {
				cells = append(cells, lampOnStyle.Render(string(r)))
			} else {
				cells = append(cells, lampOffStyle.Render(string(r)))
			}
		}
		// stagger the middle row like the physical board
		indent := ""
		if i == 1 {
			indent = " "
		}
		rows = append(rows, indent+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}
