package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fermata-io/menunav/internal/menu"
)

// maxVisibleItems caps dropdown and palette lists before scrolling kicks in.
const maxVisibleItems = 12

// View renders the menu bar, the workspace panels, and whatever overlay is
// active. Overlays stack: prompt over palette over dropdown.
func (m *Model) View() string {
	lines := make([]string, 0, 24)
	lines = append(lines, m.viewBar())
	lines = append(lines, "")

	switch {
	case m.prompt != nil:
		lines = append(lines, m.viewPrompt()...)
	case m.palette != nil:
		lines = append(lines, m.viewPalette()...)
	case len(m.dropdown) > 0:
		lines = append(lines, m.viewDropdown()...)
	default:
		lines = append(lines, m.viewWorkspace()...)
	}

	lines = append(lines, "")
	lines = append(lines, m.viewStatus())
	if m.showFooter {
		lines = append(lines, m.viewFooter())
	}
	return strings.Join(m.clampLines(lines), "\n")
}

func (m *Model) viewBar() string {
	highlighted := m.controller.HighlightedMenuID()
	opened := m.controller.OpenedMenuID()
	parts := make([]string, 0, m.menus.ItemCount())
	for _, item := range m.menus.Items() {
		style := styles.BarItem
		switch item.ID {
		case highlighted:
			style = styles.BarHighlighted
		case opened:
			style = styles.BarOpened
		}
		parts = append(parts, renderMnemonicTitle(item.Title, style))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if styles.Bar != nil {
		bar = styles.Bar.Render(bar)
	}
	return bar
}

// renderMnemonicTitle renders a menu title with its mnemonic character
// underlined. The underline is embedded before the outer style applies so
// padding and background stay contiguous.
func renderMnemonicTitle(title string, style *lipgloss.Style) string {
	clean := menu.CleanTitle(title)
	text := clean
	if idx := menu.MnemonicIndex(title); idx >= 0 && styles.Mnemonic != nil {
		runes := []rune(clean)
		text = string(runes[:idx]) + styles.Mnemonic.Render(string(runes[idx])) + string(runes[idx+1:])
	}
	return render(style, text)
}

func (m *Model) viewDropdown() []string {
	lvl := m.dropdown[len(m.dropdown)-1]
	lvl.EnsureCursorVisible(maxVisibleItems)

	lines := make([]string, 0, maxVisibleItems+2)
	title := lvl.Title
	if len(m.dropdown) > 1 {
		crumbs := make([]string, 0, len(m.dropdown))
		for _, l := range m.dropdown {
			crumbs = append(crumbs, l.Title)
		}
		title = strings.Join(crumbs, " / ")
	}
	lines = append(lines, render(styles.PanelTitle, title))

	end := lvl.ViewportOffset + maxVisibleItems
	if end > len(lvl.Items) {
		end = len(lvl.Items)
	}
	for i := lvl.ViewportOffset; i < end; i++ {
		entry := lvl.Items[i]
		item, _ := m.menus.FindItem(entry.ID)
		marker := "  "
		style := styles.DropdownItem
		if i == lvl.Cursor {
			marker = "> "
			style = styles.DropdownCursor
		}
		label := renderMnemonicTitle(entry.Label, style)
		if !item.IsLeaf() {
			label += " »"
		}
		lines = append(lines, render(style, marker)+label)
	}
	if len(lvl.Items) == 0 {
		lines = append(lines, render(styles.DropdownItem, "  (empty)"))
	}
	return lines
}

func (m *Model) viewWorkspace() []string {
	activePanel := ""
	if panel := m.nav.ActivePanel(); panel != nil && m.nav.IsHighlighted() {
		activePanel = panel.Name()
	}
	active := m.nav.ActiveControl()

	lines := make([]string, 0, len(workspacePanels)*2)
	for _, spec := range workspacePanels {
		titleStyle := styles.PanelTitle
		if spec.name == activePanel {
			titleStyle = styles.PanelFocused
		}
		lines = append(lines, render(titleStyle, titleCase(spec.name)))

		parts := make([]string, 0, len(spec.controls))
		for _, name := range spec.controls {
			style := styles.Control
			if active != nil && spec.name == activePanel && active.Name() == name {
				style = styles.ControlActive
			}
			parts = append(parts, render(style, "["+name+"]"))
		}
		lines = append(lines, "  "+strings.Join(parts, " "))
	}
	return lines
}

func (m *Model) viewPalette() []string {
	lvl := m.palette
	lvl.EnsureCursorVisible(maxVisibleItems)

	prompt := render(styles.FilterPrompt, "> ")
	lines := []string{
		render(styles.PanelTitle, lvl.Title),
		prompt + m.renderFilterLine(lvl),
	}
	end := lvl.ViewportOffset + maxVisibleItems
	if end > len(lvl.Items) {
		end = len(lvl.Items)
	}
	for i := lvl.ViewportOffset; i < end; i++ {
		style := styles.PaletteItem
		marker := "  "
		if i == lvl.Cursor {
			style = styles.PaletteSelected
			marker = "> "
		}
		lines = append(lines, render(style, marker+lvl.Items[i].Label))
	}
	if len(lvl.Items) == 0 {
		lines = append(lines, render(styles.PaletteItem, "  no matching actions"))
	}
	return lines
}

// renderFilterLine splits the filter text around the edit cursor so the
// blinking cursor model can occupy the gap.
func (m *Model) renderFilterLine(lvl *level) string {
	runes := []rune(lvl.Filter)
	pos := lvl.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var under string
	if pos < len(runes) {
		m.filterCursor.SetChar(string(runes[pos]))
		under = m.filterCursor.View()
		return before + under + render(styles.Filter, string(runes[pos+1:]))
	}
	m.filterCursor.SetChar(" ")
	return before + m.filterCursor.View()
}

func (m *Model) viewPrompt() []string {
	return []string{
		render(styles.PromptTitle, m.prompt.Title()),
		"  " + m.prompt.input.View(),
		"",
		render(styles.Info, "  enter: confirm   esc: cancel"),
	}
}

func (m *Model) viewStatus() string {
	if m.errMsg != "" {
		return render(styles.Error, "error: "+m.errMsg)
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, info)
	}
	if m.currentFile != "" {
		return render(styles.Info, "Score: "+m.currentFile)
	}
	return render(styles.Info, "No score open")
}

func (m *Model) viewFooter() string {
	text := fmt.Sprintf("%s menu   %s palette   %s quit   tab panel",
		m.keymap.Menu.Help().Key,
		m.keymap.Palette.Help().Key,
		m.keymap.Quit.Help().Key,
	)
	return render(styles.Footer, text)
}

func (m *Model) clampLines(lines []string) []string {
	if m.width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = truncate.String(line, uint(m.width))
	}
	return out
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] -= 'a' - 'A'
	}
	return string(runes)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
