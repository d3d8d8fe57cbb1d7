package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	utfconv "github.com/flbdx/utf-conv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	encStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	input textinput.Model
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "type some text"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &inspectorModel{input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	text := m.input.Value()
	scalars := make([]uint32, 0, len(text))
	for _, r := range text {
		scalars = append(scalars, uint32(r))
	}

	b.WriteString(fmt.Sprintf("%d scalar values\n", len(scalars)))
	if len(scalars) > 0 {
		var points []string
		for _, v := range scalars {
			points = append(points, fmt.Sprintf("U+%04X", v))
		}
		b.WriteString(scalarStyle.Render(strings.Join(points, " ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, enc := range utfconv.Encodings() {
		b.WriteString(encStyle.Render(fmt.Sprintf("%-9s", enc)))

		var out utfconv.SliceSink[byte]
		_, written, err := enc.Encode(scalars, &out)
		if err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
		} else {
			b.WriteString(fmt.Sprintf("%3d bytes  ", written))
			b.WriteString(bytesStyle.Render(hexDump(out.Units)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc quit"))
	return b.String()
}

func hexDump(p []byte) string {
	const maxShown = 24
	var b strings.Builder
	for i, c := range p {
		if i == maxShown {
			b.WriteString("…")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
