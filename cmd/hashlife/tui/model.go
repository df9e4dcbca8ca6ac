// Package tui is the interactive pattern viewer, grounded on
// jinterlante1206-AleutianLocal's services/code_buddy/tui.DiffReviewModel:
// a single bubbletea.Model holding layout state and a lipgloss-styled
// bubbles/viewport, driven by a terse single-key command set rather than
// that model's diff-review workflow.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hashlife "github.com/billyrieger/hashlife"
)

var (
	liveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// Model is the bubbletea.Model for a live HashLife viewer: arrow keys pan
// the viewport, space advances one Step call at the current step
// exponent, "n" advances a single generation regardless of exponent,
// "+"/"-" change the step exponent, and "q" quits.
type Model struct {
	u *hashlife.Universe

	viewport viewport.Model
	ready    bool

	originX, originY int64 // top-left cell shown in the viewport
	gridHeight       int   // grid rows rendered per frame, 1 cell per rune

	err error // most recent error from Step or SetStepLog2, rendered in the status bar

	quitting bool
}

// New builds the viewer model with its top-left cell at the top-left
// corner of u's current bounding box, or at the origin if u is empty. The viewport itself is sized by the first
// tea.WindowSizeMsg bubbletea delivers.
func New(u *hashlife.Universe) Model {
	m := Model{u: u}
	if box, ok := u.BoundingBox(); ok {
		m.originX = box.XMin
		m.originY = box.YMin
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 1
		m.gridHeight = msg.Height - headerHeight - footerHeight
		if m.gridHeight < 1 {
			m.gridHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.gridHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.gridHeight
		}
		m.viewport.SetContent(m.renderGrid())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.originY--
		case "down", "j":
			m.originY++
		case "left", "h":
			m.originX--
		case "right", "l":
			m.originX++
		case " ":
			m.err = m.u.Step()
		case "n":
			prevLog2 := m.u.StepLog2()
			if err := m.u.SetStepLog2(0); err != nil {
				m.err = err
				break
			}
			m.err = m.u.Step()
			if restoreErr := m.u.SetStepLog2(prevLog2); restoreErr != nil && m.err == nil {
				m.err = restoreErr
			}
		case "+", "=":
			m.err = m.u.SetStepLog2(m.u.StepLog2() + 1)
		case "-":
			if m.u.StepLog2() > 0 {
				m.err = m.u.SetStepLog2(m.u.StepLog2() - 1)
			}
		}
		if m.ready {
			m.viewport.SetContent(m.renderGrid())
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return "bye\n"
	}
	if !m.ready {
		return "loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(barStyle.Render(m.statusLine()))
	return b.String()
}

// renderGrid draws the cells currently visible in the viewport's frame,
// one rune per cell, anchored at (originX, originY).
func (m Model) renderGrid() string {
	var b strings.Builder
	for dy := 0; dy < m.gridHeight; dy++ {
		for dx := 0; dx < m.viewport.Width; dx++ {
			if m.u.GetCell(m.originX+int64(dx), m.originY+int64(dy)) {
				b.WriteString(liveStyle.Render("#"))
			} else {
				b.WriteString(deadStyle.Render("."))
			}
		}
		if dy < m.gridHeight-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) statusLine() string {
	base := fmt.Sprintf(
		" gen=%s pop=%s step=2^%d  arrows pan · space step · n single-gen · +/- step · q quit",
		m.u.Generation().String(), m.u.Population().String(), m.u.StepLog2(),
	)
	if m.err != nil {
		return base + errorStyle.Render(fmt.Sprintf("  error: %v", m.err))
	}
	return base
}
