package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Tabs       []string
	ActiveTab  int
	Body       string
	SidePane   string
	StatusLine string
	Footer     string
}

// Styles is the resolved color set for the active theme.
type Styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Footer    lipgloss.Style
}

func StylesForTheme(theme string) Styles {
	accent := lipgloss.Color("12")
	muted := lipgloss.Color("8")
	switch theme {
	case "dark":
		accent = lipgloss.Color("14")
		muted = lipgloss.Color("7")
	case "lemon":
		accent = lipgloss.Color("11")
		muted = lipgloss.Color("3")
	}
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Footer:    lipgloss.NewStyle().Foreground(muted),
	}
}

func RenderApp(data AppData, styles Styles) string {
	tabs := make([]string, 0, len(data.Tabs))
	for i, tab := range data.Tabs {
		if i == data.ActiveTab {
			tabs = append(tabs, styles.ActiveTab.Render(tab))
		} else {
			tabs = append(tabs, styles.Tab.Render(tab))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := styles.Panel.Width(60).Render(data.Body)
	if data.SidePane != "" {
		side := styles.Panel.Width(40).Render(data.SidePane)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	status := styles.Status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = styles.Error.Render(data.StatusLine)
	}

	lines := []string{
		styles.Header.Render(data.Header),
		tabRow,
		body,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, styles.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
