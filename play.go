package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/timeanchor/timeanchor/internal/config"
	"github.com/timeanchor/timeanchor/internal/phrase"
	"github.com/timeanchor/timeanchor/internal/resolve"
)

// PlayCmd opens an interactive playground: type phrases, watch them resolve.
type PlayCmd struct {
	Zone string `help:"IANA time zone to resolve in. Defaults to the configured zone." short:"z"`
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	if globals.JSON {
		return newCLIError(ExitInvalidInput, "no_json_mode",
			"The playground is interactive; use `timeanchor interpret --json` for scripted output.")
	}

	cfg, _ := config.Load()
	zone := cfg.TimeZone
	if cmd.Zone != "" {
		if !resolve.ValidZone(cmd.Zone) {
			return newCLIError(ExitInvalidInput, "invalid_zone",
				fmt.Sprintf("Unknown time zone %q.", cmd.Zone))
		}
		zone = cmd.Zone
	}

	resolver := resolve.New()
	resolver.FallbackZone = zone

	m := newPlayModel(resolver, zone)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground TUI: %w", err)
	}
	return nil
}

const (
	playLeftPaneWidth = 30 // width of the phrase history pane
	playSepWidth      = 3  // " │ " separator between panes
	playMinSplitWidth = 64 // minimum terminal width for horizontal split
)

// playEntry is one resolved phrase in the session history.
type playEntry struct {
	text     string
	result   resolve.Result
	fields   []phrase.Candidate // parser output at resolution time, may be empty
	askedAt  time.Time
	rendered string // cached glamour output for the detail pane
}

// playModel is the Bubble Tea model for the playground.
type playModel struct {
	resolver *resolve.Resolver
	zone     string

	input          textinput.Model
	entries        []playEntry // newest first
	cursor         int
	width, height  int
	detailViewport viewport.Model
	focusHistory   bool
	listOffset     int
}

func newPlayModel(resolver *resolve.Resolver, zone string) playModel {
	ti := textinput.New()
	ti.Placeholder = "tomorrow at 2pm"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 120

	vp := viewport.New(80, 10)
	vp.KeyMap.Left.SetEnabled(false)
	vp.KeyMap.Right.SetEnabled(false)
	vp.KeyMap.HalfPageDown = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "½ page down"),
	)

	return playModel{
		resolver:       resolver,
		zone:           zone,
		input:          ti,
		detailViewport: vp,
	}
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if len(m.entries) > 0 {
				m.focusHistory = !m.focusHistory
				if m.focusHistory {
					m.input.Blur()
				} else {
					m.input.Focus()
				}
			}
			return m, nil

		case "enter":
			if !m.focusHistory {
				return m.resolveInput()
			}
			return m, nil
		}

		if m.focusHistory {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
					m.syncDetailContent()
					m.syncListScroll()
				}
				return m, nil
			case "down", "j":
				if m.cursor < len(m.entries)-1 {
					m.cursor++
					m.syncDetailContent()
					m.syncListScroll()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-4, 20)
		m.renderAllContent()
		m.updateViewportSize()
		m.syncDetailContent()
		m.syncListScroll()
	}

	return m, nil
}

// resolveInput resolves the typed phrase and prepends it to the history.
func (m playModel) resolveInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	now := m.resolver.Clock.Now()
	res, err := m.resolver.Interpret(text, m.zone, "")
	if err != nil {
		res = resolve.Result{TimeZone: m.zone, Note: err.Error()}
	}

	entry := playEntry{
		text:    text,
		result:  res,
		fields:  m.resolver.Phrases.Parse(text, now),
		askedAt: now,
	}
	if m.width >= playMinSplitWidth {
		entry.rendered = renderDetail(entry, max(m.rightPaneWidth()-2, 20))
	}

	m.entries = append([]playEntry{entry}, m.entries...)
	m.cursor = 0
	m.listOffset = 0
	m.input.SetValue("")
	m.syncDetailContent()
	return m, nil
}

// contentRows returns the number of rows available for the content area.
func (m playModel) contentRows() int {
	overhead := 4 // title + input + blank + help
	if m.width >= playMinSplitWidth {
		overhead += 2 // top border + bottom border
	}
	return max(m.height-overhead, 1)
}

// rightPaneWidth returns the width available for the detail pane.
func (m playModel) rightPaneWidth() int {
	return max(m.width-playLeftPaneWidth-playSepWidth, 1)
}

// renderAllContent re-renders every history entry at the current width.
func (m *playModel) renderAllContent() {
	if m.width < playMinSplitWidth {
		return
	}
	w := max(m.rightPaneWidth()-2, 20)
	for i := range m.entries {
		m.entries[i].rendered = renderDetail(m.entries[i], w)
	}
}

// updateViewportSize recalculates the detail viewport dimensions.
func (m *playModel) updateViewportSize() {
	if m.width < playMinSplitWidth {
		return
	}
	rows := m.contentRows()
	m.detailViewport.Width = m.rightPaneWidth()
	m.detailViewport.Height = max(rows-2, 1)
}

// syncDetailContent sets the viewport to the selected entry's content.
func (m *playModel) syncDetailContent() {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.entries[m.cursor].rendered)
	m.detailViewport.GotoTop()
}

// syncListScroll ensures the cursor is visible within the history pane.
func (m *playModel) syncListScroll() {
	rows := m.contentRows()
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+rows {
		m.listOffset = m.cursor - rows + 1
	}
}

// --- View styles ---

var (
	playTitleStyle  = lipgloss.NewStyle().Bold(true)
	playDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	playHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	playResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	playNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(playTitleStyle.Render(fmt.Sprintf("Playground · %s", m.zone)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(playDimStyle.Render("  Type a phrase and press enter."))
		b.WriteString("\n")
	} else if m.width < playMinSplitWidth {
		m.viewNarrow(&b)
	} else {
		m.viewSplit(&b)
	}

	b.WriteString(playHelpStyle.Render(m.helpText()))
	return b.String()
}

// viewNarrow renders a simple result list (for terminals <64 cols).
func (m playModel) viewNarrow(b *strings.Builder) {
	rows := m.contentRows()
	end := min(m.listOffset+rows, len(m.entries))
	for i := m.listOffset; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf("  %-24s %s",
			truncate(e.text, 24), e.result.Converted)
		if e.result.Note != "" {
			line = fmt.Sprintf("  %-24s %s", truncate(e.text, 24),
				truncate(e.result.Note, max(m.width-28, 10)))
		}
		if i == m.cursor && m.focusHistory {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Render("> " + line[2:]))
		} else if e.result.Note != "" {
			b.WriteString(playNoteStyle.Render(line))
		} else {
			b.WriteString(playResultStyle.Render(line))
		}
		b.WriteString("\n")
	}
	for i := end - m.listOffset; i < rows; i++ {
		b.WriteString("\n")
	}
}

// viewSplit renders the horizontal split layout: history | separator | detail.
func (m playModel) viewSplit(b *strings.Builder) {
	rows := m.contentRows()
	rightW := m.rightPaneWidth()

	b.WriteString(playDimStyle.Render(
		strings.Repeat("─", playLeftPaneWidth) + "─┬─" + strings.Repeat("─", rightW)))
	b.WriteString("\n")

	leftStyle := lipgloss.NewStyle().Width(playLeftPaneWidth)
	leftLines := make([]string, rows)
	for i := range rows {
		idx := m.listOffset + i
		if idx < len(m.entries) {
			leftLines[i] = m.renderHistoryItem(idx, leftStyle)
		} else {
			leftLines[i] = leftStyle.Render("")
		}
	}

	sepColor := lipgloss.Color("240")
	if m.focusHistory {
		sepColor = lipgloss.Color("212")
	}
	sep := lipgloss.NewStyle().Foreground(sepColor).Render(" │ ")

	e := m.entries[m.cursor]
	header := playDimStyle.Render(
		fmt.Sprintf("%q · asked %s", e.text, e.askedAt.Format("15:04:05")))
	divider := playDimStyle.Render(strings.Repeat("─", rightW))

	vpLines := strings.Split(m.detailViewport.View(), "\n")

	for i := range rows {
		b.WriteString(leftLines[i])
		b.WriteString(sep)
		switch i {
		case 0:
			b.WriteString(header)
		case 1:
			b.WriteString(divider)
		default:
			vpIdx := i - 2
			if vpIdx < len(vpLines) {
				b.WriteString(vpLines[vpIdx])
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(playDimStyle.Render(
		strings.Repeat("─", playLeftPaneWidth) + "─┴─" + strings.Repeat("─", rightW)))
	b.WriteString("\n")
}

// renderHistoryItem renders a single history entry for the left pane.
func (m playModel) renderHistoryItem(idx int, baseStyle lipgloss.Style) string {
	e := m.entries[idx]
	content := truncate(e.text, playLeftPaneWidth-4)

	if idx == m.cursor && m.focusHistory {
		return baseStyle.Foreground(lipgloss.Color("212")).Bold(true).Render("> " + content)
	}
	if e.result.Note != "" {
		return baseStyle.Foreground(lipgloss.Color("214")).Render("  " + content)
	}
	return baseStyle.Foreground(lipgloss.Color("240")).Render("  " + content)
}

func (m playModel) helpText() string {
	if m.focusHistory {
		return "↑↓: navigate   tab: input   q: quit"
	}
	return "enter: resolve   tab: history   esc: quit"
}

// renderDetail builds the markdown detail for one entry and renders it with
// glamour.
func renderDetail(e playEntry, width int) string {
	var md strings.Builder

	if e.result.Converted != "" {
		fmt.Fprintf(&md, "## %s\n\n", e.result.Converted)
	} else {
		md.WriteString("## unresolved\n\n")
	}
	fmt.Fprintf(&md, "- **Zone:** %s\n", e.result.TimeZone)
	fmt.Fprintf(&md, "- **Reference:** %s\n", resolve.FormatInstant(e.askedAt))
	if e.result.Note != "" {
		fmt.Fprintf(&md, "- **Note:** %s\n", e.result.Note)
	}

	if len(e.fields) > 0 {
		md.WriteString("\n### Parsed fields\n\n")
		md.WriteString(fieldTable(e.fields[0]))
	}

	return renderMarkdown(md.String(), width)
}

// fieldTable formats a candidate's fields with their certainty.
func fieldTable(c phrase.Candidate) string {
	rows := []struct {
		name  string
		value int
		known bool
	}{}
	appendField := func(name string, value int, known bool) {
		rows = append(rows, struct {
			name  string
			value int
			known bool
		}{name, value, known})
	}

	y, yk := c.Year()
	appendField("year", y, yk)
	mo, mok := c.Month()
	appendField("month", mo, mok)
	d, dk := c.Day()
	appendField("day", d, dk)
	h, hk := c.Hour()
	appendField("hour", h, hk)
	mi, mik := c.Minute()
	appendField("minute", mi, mik)
	s, sk := c.Second()
	appendField("second", s, sk)

	var b strings.Builder
	b.WriteString("| field | value | |\n|---|---|---|\n")
	for _, r := range rows {
		mark := "implied"
		if r.known {
			mark = "stated"
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", r.name, r.value, mark)
	}
	return b.String()
}

// Cached glamour renderer — avoids re-creating on every call.
var (
	cachedRendererWidth int
	cachedRenderer      *glamour.TermRenderer
)

// renderMarkdown renders markdown as terminal-formatted text using glamour.
// If rendering fails, the raw input text is returned as a fallback.
func renderMarkdown(md string, width int) string {
	if cachedRenderer == nil || cachedRendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		cachedRenderer = r
		cachedRendererWidth = width
	}

	rendered, err := cachedRenderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// truncate shortens s to at most n runes, appending "…" when cut.
func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
