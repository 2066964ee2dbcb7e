package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sweepDoneMsg struct {
	err error
}

type sweepSpinnerModel struct {
	spinner spinner.Model
	label   string
	sweep   tea.Cmd
	err     error
	done    bool
}

func newSweepSpinnerModel(label string, sweep tea.Cmd) sweepSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sweepSpinnerModel{
		spinner: s,
		label:   label,
		sweep:   sweep,
	}
}

func (m sweepSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.sweep)
}

func (m sweepSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sweepDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sweepSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runSweepSpinner(ctx context.Context, output io.Writer, sweep func(context.Context) error) error {
	sweepCmd := func() tea.Msg {
		return sweepDoneMsg{err: sweep(ctx)}
	}

	p := tea.NewProgram(
		newSweepSpinnerModel("Sweeping session files...", sweepCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(sweepSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
