package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/views"
)

var themeOrder = []model.Theme{model.ThemeLight, model.ThemeDark, model.ThemeLemon}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t":
		next := nextTheme(m.Theme)
		m.Theme = next
		return m, m.setThemeCmd(next)
	case "f":
		m.Settings.Haptics = !m.Settings.Haptics
		return m, m.setHapticsCmd(m.Settings.Haptics)
	case "x":
		path := fmt.Sprintf("squeaky-backup-%s.json", m.Today)
		return m, m.exportCmd(path)
	case "r":
		return m, m.loadSettingsCmd()
	}
	return m, nil
}

func nextTheme(current model.Theme) model.Theme {
	for i, t := range themeOrder {
		if t == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return model.ThemeLight
}

func (m Model) renderSettings() string {
	categories := make([]views.CategoryItemData, 0, len(m.Settings.Categories))
	for _, c := range m.Settings.Categories {
		categories = append(categories, views.CategoryItemData{Name: c.Name, Icon: c.Icon, Color: c.Color})
	}
	achievements := make([]string, 0, len(m.Settings.Achievements))
	for _, a := range m.Settings.Achievements {
		achievements = append(achievements, fmt.Sprintf("%s (unlocked %s)", a.Key, a.UnlockedAt.Format("2006-01-02")))
	}
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Theme:        string(m.Theme),
		Haptics:      m.Settings.Haptics,
		Total:        m.Dashboard.Total,
		Categories:   categories,
		Achievements: achievements,
		DBPath:       m.DBPath,
	})
}
