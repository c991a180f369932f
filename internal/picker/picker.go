// Package picker implements the "Generate Block" prompt: a single-select
// list of block kinds with a one-line description each.
package picker

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/blockgen/internal/block"
)

// Title is shown above the list.
const Title = "Select block to generate:"

// kindItem adapts block.Kind to list.Item.
type kindItem struct {
	kind block.Kind
}

func (i kindItem) Title() string       { return i.kind.String() }
func (i kindItem) Description() string { return i.kind.Description() }
func (i kindItem) FilterValue() string { return i.kind.String() }

// Model is the bubbletea model behind Pick.
type Model struct {
	list      list.Model
	chosen    block.Kind
	done      bool
	cancelled bool
}

// NewModel returns a picker listing every block kind.
func NewModel() Model {
	items := make([]list.Item, 0, len(block.All()))
	for _, kind := range block.All() {
		items = append(items, kindItem{kind: kind})
	}

	l := list.New(items, list.NewDefaultDelegate(), 48, 24)
	l.Title = Title
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return Model{list: l}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(kindItem); ok {
				m.chosen = item.kind
				m.done = true
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen kind. ok is false if the prompt was
// cancelled or is still open.
func (m Model) Selected() (block.Kind, bool) {
	return m.chosen, m.done
}

// Pick runs the prompt on in/out. ok is false when the user cancelled.
func Pick(ctx context.Context, in io.Reader, out io.Writer) (block.Kind, bool, error) {
	program := tea.NewProgram(NewModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return 0, false, fmt.Errorf("running block picker: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return 0, false, fmt.Errorf("block picker returned %T", final)
	}
	kind, chosen := model.Selected()
	return kind, chosen, nil
}
