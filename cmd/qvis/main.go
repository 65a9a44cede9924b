package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/theapemachine/qregister"
	_ "go.uber.org/automaxprocs"
)

// focus represents which panel has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusInitInput
)

// Model represents the TUI application state.
type Model struct {
	circuits  []circuit
	selected  int
	stepIdx   int
	initState uint64
	reg       *qregister.Register
	focus     focus
	initInput textinput.Model
	statusMsg string
	width     int
	height    int
}

func initialModel() Model {
	ti := textinput.New()
	ti.Placeholder = "initial permutation"
	ti.CharLimit = 6
	ti.Width = 20

	m := Model{
		circuits:  demoCircuits(),
		initInput: ti,
	}
	m.reset()
	return m
}

// reset rebuilds the register for the selected circuit.
func (m *Model) reset() {
	c := m.circuits[m.selected]
	reg, err := c.build(m.initState)
	if err != nil {
		m.initState = 0
		reg, _ = c.build(0)
	}
	m.reg = reg
	m.stepIdx = 0
	m.statusMsg = ""
}

// advance applies the next gate of the selected circuit.
func (m *Model) advance() {
	c := m.circuits[m.selected]
	if m.stepIdx >= len(c.steps) {
		return
	}
	s := c.steps[m.stepIdx]
	if err := s.apply(m.reg); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.stepIdx++
	m.statusMsg = "applied " + s.label
}

// measure collapses the whole register and reports the outcome.
func (m *Model) measure() {
	c := m.circuits[m.selected]
	out, err := m.reg.MReg(0, c.qubits)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("measured |%0*b>", c.qubits, out)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusInitInput {
			switch msg.String() {
			case "enter":
				if v, err := strconv.ParseUint(m.initInput.Value(), 0, 64); err == nil {
					m.initState = v
				}
				m.focus = focusCircuit
				m.initInput.Blur()
				m.reset()
				return m, nil
			case "esc":
				m.focus = focusCircuit
				m.initInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.initInput, cmd = m.initInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "right":
			m.advance()
		case "m":
			m.measure()
		case "r":
			m.reset()
		case "tab":
			m.selected = (m.selected + 1) % len(m.circuits)
			m.initState = 0
			m.reset()
		case "i":
			m.focus = focusInitInput
			m.initInput.SetValue("")
			return m, m.initInput.Focus()
		}
	}
	return m, nil
}

func (m Model) View() string {
	c := m.circuits[m.selected]

	var b strings.Builder
	b.WriteString(titleStyle.Render("qvis — "+c.name) + "\n\n")
	b.WriteString(renderSteps(c, m.stepIdx) + "\n\n")
	b.WriteString(renderProbs(m.reg, c.qubits))
	b.WriteString("\n" + renderTopStates(m.reg))

	body := frameStyle.Render(b.String())

	controls := "space: step  m: measure  r: reset  tab: circuit  i: init  q: quit"
	if m.focus == focusInitInput {
		controls = "enter: apply  esc: cancel"
	}
	footer := controlsStyle.Render(controls)

	if m.focus == focusInitInput {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, " ", m.initInput.View())
	}

	status := ""
	if m.statusMsg != "" {
		status = "\n" + statusStyle.Render(m.statusMsg)
	}

	return body + status + "\n" + footer + "\n"
}

// renderSteps shows the circuit program with applied gates dimmed.
func renderSteps(c circuit, done int) string {
	parts := make([]string, 0, len(c.steps))
	for i, s := range c.steps {
		if i < done {
			parts = append(parts, doneGateStyle.Render("["+s.label+"]"))
		} else {
			parts = append(parts, gateStyle.Render("["+s.label+"]"))
		}
	}
	return strings.Join(parts, " ")
}

// renderProbs draws one probability bar per qubit.
func renderProbs(reg *qregister.Register, qubits int) string {
	var b strings.Builder
	for q := qubits - 1; q >= 0; q-- {
		p, err := reg.Prob(q)
		if err != nil {
			continue
		}
		filled := int(p*float64(barWidth) + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n",
			qubitLabelStyle.Render(fmt.Sprintf("q%d", q)),
			barStyle.Render(bar),
			p*100))
	}
	return b.String()
}

// renderTopStates lists, in index order, up to eight basis states whose
// probability exceeds 0.001.
func renderTopStates(reg *qregister.Register) string {
	probs := make([]float64, reg.MaxQPower())
	if err := reg.ProbArray(probs); err != nil {
		return ""
	}

	var b strings.Builder
	shown := 0
	for i, p := range probs {
		if p > 0.001 {
			b.WriteString(fmt.Sprintf("|%0*b>  %6.3f\n", reg.QubitCount(), i, p))
			shown++
		}
		if shown >= 8 {
			break
		}
	}
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "qvis: %v\n", err)
		os.Exit(1)
	}
}
