package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// themes are cycled by the settings page. Any other stored theme is kept
// until the user cycles it.
var themes = []string{"dark", "light"}

type settingKind int

const (
	settingTheme settingKind = iota
	settingMode
	settingWatch
	settingMdFlag
	settingAhtmlFlag
)

type settingRow struct {
	kind settingKind
	id   string
}

// settingRows lists the editable preferences of cfg: the scalar settings
// first, then every toolbar flag in lexical order.
func settingRows(cfg models.Config) []settingRow {
	rows := []settingRow{
		{kind: settingTheme},
		{kind: settingMode},
		{kind: settingWatch},
	}
	for _, id := range cfg.MdToolbar.IDs() {
		rows = append(rows, settingRow{kind: settingMdFlag, id: id})
	}
	for _, id := range cfg.AhtmlToolbar.IDs() {
		rows = append(rows, settingRow{kind: settingAhtmlFlag, id: id})
	}
	return rows
}

func nextTheme(current string) string {
	i := slices.Index(themes, current)
	return themes[(i+1)%len(themes)]
}

// patchFor builds the update that flips or cycles row. Toolbar rows carry the
// complete map with one flag changed: the merge replaces toolbar maps as a
// whole, so a single-key map would drop every other flag.
func patchFor(row settingRow, cfg models.Config) models.ConfigPatch {
	switch row.kind {
	case settingTheme:
		theme := nextTheme(cfg.ThemeOrDefault())
		return models.ConfigPatch{Theme: &theme}
	case settingMode:
		mode := cfg.MdMode.Next()
		return models.ConfigPatch{MdMode: &mode}
	case settingWatch:
		watch := !cfg.WatchEnabled()
		return models.ConfigPatch{Watch: &watch}
	case settingMdFlag:
		return models.ConfigPatch{MdToolbar: cfg.MdToolbar.With(row.id, !cfg.MdToolbar[row.id])}
	case settingAhtmlFlag:
		return models.ConfigPatch{AhtmlToolbar: cfg.AhtmlToolbar.With(row.id, !cfg.AhtmlToolbar[row.id])}
	}
	return models.ConfigPatch{}
}

type settingsModel struct {
	ctx         context.Context
	preferences service.PreferencesService
	canPreview  bool

	cfg    models.Config
	idx    int
	saving bool
	status string
	errMsg string
}

func newSettingsModel(ctx context.Context, preferences service.PreferencesService, canPreview bool) *settingsModel {
	return &settingsModel{
		ctx:         ctx,
		preferences: preferences,
		canPreview:  canPreview,
		cfg:         preferences.Get(),
	}
}

func (m *settingsModel) Init() tea.Cmd {
	return nil
}

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configChangedMsg:
		m.cfg = msg.view.Config
		m.clampCursor()
		return m, nil

	case configUpdatedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = "Save failed: " + humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.cfg = msg.cfg
		m.clampCursor()
		m.errMsg = ""
		m.status = "Saved"
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *settingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := settingRows(m.cfg)

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		if m.saving || m.idx >= len(rows) {
			return m, nil
		}
		m.saving = true
		return m, m.cmdUpdate(patchFor(rows[m.idx], m.cfg))
	case key.Matches(msg, keys.preview):
		if m.canPreview {
			return m, func() tea.Msg { return NavigateTo{Page: pagePreview} }
		}
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *settingsModel) cmdUpdate(patch models.ConfigPatch) tea.Cmd {
	ctx, preferences := m.ctx, m.preferences
	return func() tea.Msg {
		cfg, err := preferences.Update(ctx, patch)
		return configUpdatedMsg{cfg: cfg, err: err}
	}
}

func (m *settingsModel) clampCursor() {
	if n := len(settingRows(m.cfg)); m.idx >= n {
		m.idx = max(n-1, 0)
	}
}

func (m *settingsModel) rowLabel(row settingRow) (string, string) {
	switch row.kind {
	case settingTheme:
		return "Theme", m.cfg.ThemeOrDefault()
	case settingMode:
		return "Editor mode", string(m.cfg.MdMode)
	case settingWatch:
		return "Watch folder", onOff(m.cfg.WatchEnabled())
	case settingMdFlag:
		return "Markdown toolbar: " + row.id, onOff(m.cfg.MdToolbar[row.id])
	case settingAhtmlFlag:
		return "Ahtml toolbar: " + row.id, onOff(m.cfg.AhtmlToolbar[row.id])
	}
	return "", ""
}

func (m *settingsModel) View() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Markdown toolbar: %s   Ahtml toolbar: %s\n\n",
		onOff(m.cfg.MdToolbar.Any()), onOff(m.cfg.AhtmlToolbar.Any()))

	for i, row := range settingRows(m.cfg) {
		label, value := m.rowLabel(row)
		line := fmt.Sprintf("%-40s %s", fitText(label, 40), value)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	hotKeys := "enter: change │ ↑/↓: navigate │ v: version │ q: quit"
	if m.canPreview {
		hotKeys = "enter: change │ ↑/↓: navigate │ p: preview │ v: version │ q: quit"
	}
	if m.saving {
		hotKeys = "saving..."
	}

	return renderPage("EDITOR SETTINGS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
