package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mediaseed/internal/core/domain"
	"mediaseed/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse the catalog with live probe status",
	Long: `Browse catalog assets in the terminal while each one is HEAD-probed
in the background.

Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- q     : Quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	baseURL, err := resolveBaseURL()
	if err != nil {
		return err
	}

	if len(catalog) == 0 {
		fmt.Println(ui.FormatWarning("Catalog is empty."))
		return nil
	}

	p := tea.NewProgram(newBrowseModel(baseURL, catalog))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// --- TUI Model ---

type probeState int

const (
	probePending probeState = iota
	probeOK
	probeFailed
)

type probeDoneMsg struct {
	index     int
	reachable bool
}

type browseModel struct {
	baseURL string
	assets  []domain.AssetDescriptor
	states  []probeState
	cursor  int
	spin    spinner.Model
}

func newBrowseModel(baseURL string, assets []domain.AssetDescriptor) browseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.StyleInfo
	return browseModel{
		baseURL: baseURL,
		assets:  assets,
		states:  make([]probeState, len(assets)),
		spin:    s,
	}
}

// probeNext HEAD-checks one asset; results arrive as probeDoneMsg and the
// next probe is chained from Update, keeping the sweep sequential.
func (m browseModel) probeNext(index int) tea.Cmd {
	url := m.baseURL + "/" + m.assets[index].ObjectPath()
	return func() tea.Msg {
		reachable, err := httpProber.Reachable(context.Background(), url)
		return probeDoneMsg{index: index, reachable: err == nil && reachable}
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.probeNext(0))
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.assets)-1 {
				m.cursor++
			}
		}

	case probeDoneMsg:
		if msg.reachable {
			m.states[msg.index] = probeOK
		} else {
			m.states[msg.index] = probeFailed
		}
		if next := msg.index + 1; next < len(m.assets) {
			return m, m.probeNext(next)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(ui.FormatTitle("Media Catalog") + "  " + ui.FormatMuted(m.baseURL))
	b.WriteString("\n\n")

	for i, asset := range m.assets {
		var status string
		switch m.states[i] {
		case probeOK:
			status = ui.StyleSuccess.Render(ui.IconSuccess)
		case probeFailed:
			status = ui.StyleError.Render(ui.IconError)
		default:
			status = m.spin.View()
		}

		cursor := "  "
		if i == m.cursor {
			cursor = ui.StyleAccent.Render("> ")
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, asset.ObjectPath())
		if i == m.cursor {
			line += "  " + ui.FormatMuted(asset.Alt)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.FormatMuted("j/k move • q quit"))
	b.WriteString("\n")
	return b.String()
}
