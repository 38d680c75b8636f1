package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"ez80dis/internal/analysis"
	"ez80dis/internal/disasm"
	"ez80dis/internal/ez80dis/styles"
	"ez80dis/internal/listing"
	"ez80dis/internal/ui/colorize"
)

type viewMode int

const (
	viewListing viewMode = iota
	viewTargets
)

type targetItem struct {
	target analysis.Target
}

func (i targetItem) Title() string       { return fmt.Sprintf("%s  %s", i.target.Address(), i.target.Label) }
func (i targetItem) Description() string { return "" }
func (i targetItem) FilterValue() string { return i.target.Label + " " + i.target.Address() }

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(targetItem)
	if !ok {
		return
	}

	indicator := " "
	addrStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if index == m.Index() {
		indicator = ">"
		addrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	if !i.target.Inside {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	}

	refs := fmt.Sprintf("%d ref", len(i.target.Refs))
	if len(i.target.Refs) != 1 {
		refs += "s"
	}
	fmt.Fprintf(w, " %s  %s  %-4s %s  %s",
		indicator,
		addrStyle.Render(i.target.Address()),
		i.target.Kind,
		labelStyle.Render(fmt.Sprintf("%-10s", i.target.Label)),
		refs)
}

type model struct {
	viewport    viewport.Model
	targetsList list.Model
	mode        viewMode
	req         request
	stream      disasm.Stream
	targets     []analysis.Target
	lineOf      map[uint32]int // content line of each instruction address
	width       int
	height      int
}

func newModel(req request, s disasm.Stream, targets []analysis.Target) model {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(24)

	items := make([]list.Item, len(targets))
	for i, t := range targets {
		items[i] = targetItem{target: t}
	}
	targetsList := list.New(items, itemDelegate{}, 80, 24)
	targetsList.SetShowStatusBar(false)
	targetsList.SetFilteringEnabled(true)
	targetsList.Title = "Branch targets"
	targetsList.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		MarginLeft(2)
	targetsList.SetShowHelp(true)

	m := model{
		viewport:    vp,
		targetsList: targetsList,
		mode:        viewListing,
		req:         req,
		stream:      s,
		targets:     targets,
		width:       80,
		height:      24,
	}
	m.updateContent()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width = msg.Width
			m.height = msg.Height
			m.viewport.SetWidth(msg.Width)
			m.viewport.SetHeight(msg.Height - 2)
			m.targetsList.SetWidth(msg.Width)
			m.targetsList.SetHeight(msg.Height - 2)
			m.updateContent()
		}

	case tea.KeyMsg:
		key := msg.String()
		if m.mode == viewTargets && m.targetsList.FilterState() == list.Filtering {
			if key == "ctrl+c" {
				return m, tea.Quit
			}
		} else if handled, quit := m.handleKey(key); quit {
			return m, tea.Quit
		} else if handled {
			return m, nil
		}
	}

	switch m.mode {
	case viewTargets:
		m.targetsList, cmd = m.targetsList.Update(msg)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// handleKey applies the view switching keys. It reports whether the key was
// consumed and whether the program should quit.
func (m *model) handleKey(key string) (handled, quit bool) {
	switch key {
	case "q", "ctrl+c":
		return true, true
	case "l":
		m.mode = viewListing
	case "t":
		if len(m.targets) > 0 {
			m.mode = viewTargets
		}
	case "tab", "shift+tab":
		if m.mode == viewListing && len(m.targets) > 0 {
			m.mode = viewTargets
		} else {
			m.mode = viewListing
		}
	case "enter":
		if m.mode != viewTargets {
			return false, false
		}
		if item, ok := m.targetsList.SelectedItem().(targetItem); ok {
			m.jumpTo(item.target.Addr)
		}
	default:
		return false, false
	}
	return true, false
}

// jumpTo shows the listing scrolled to addr when it was decoded.
func (m *model) jumpTo(addr uint32) bool {
	line, ok := m.lineOf[addr]
	if !ok {
		return false
	}
	m.mode = viewListing
	m.viewport.SetYOffset(line)
	return true
}

func (m model) View() string {
	var content string
	switch m.mode {
	case viewTargets:
		content = m.targetsList.View()
	default:
		content = m.viewport.View()
	}

	menu := " Q: quit "
	if len(m.targets) > 0 {
		switch m.mode {
		case viewTargets:
			menu = " Enter: show in listing • L: listing • Tab: cycle • Q: quit "
		default:
			menu = " T: targets • Tab: cycle • Q: quit "
		}
	}

	menuStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	return content + "\n" + menuStyle.Render(menu)
}

func (m *model) header() string {
	lines := []string{
		fmt.Sprintf("; %s", filepath.Base(m.req.Path)),
		fmt.Sprintf("; %s mode, %s-%s", strings.ToUpper(m.req.Width.String()), addr(m.req.Start), addr(m.req.Start+uint32(m.stream.Size()))),
		fmt.Sprintf("; %d instructions, %d targets", len(m.stream), len(m.targets)),
	}
	markdown := fmt.Sprintf("# ez80dis\n\n```\n%s\n```", strings.Join(lines, "\n"))

	width := m.width
	if width == 0 {
		width = 80
	}
	renderer := styles.GetMarkdownRenderer(m.req.Theme, width-2)
	if renderer == nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSuffix(rendered, "\n")
}

func (m *model) updateContent() {
	header := m.header()
	offset := strings.Count(header, "\n") + 2

	labels := analysis.Labels(m.targets)
	m.lineOf = make(map[uint32]int, len(m.stream))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	line := offset
	for _, in := range m.stream {
		if label, ok := labels[in.Addr]; ok {
			sb.WriteString(label + ":\n")
			line++
		}
		m.lineOf[in.Addr] = line
		text := listing.Line(in)
		if m.req.Color {
			text = colorize.Line(text)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
		line++
	}
	m.viewport.SetContent(strings.TrimSuffix(sb.String(), "\n"))
}

func runTUI(ctx context.Context, req request, s disasm.Stream, targets []analysis.Target) error {
	program := tea.NewProgram(
		newModel(req, s, targets),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		slog.Error("TUI run error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
