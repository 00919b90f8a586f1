// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const (
	defaultPreviewWidth  = 80
	defaultPreviewHeight = 20
	// lines taken by the page title, dividers and hot keys
	previewChrome = 8
)

// glamourStyle maps the editor theme to a glamour standard style.
func glamourStyle(theme string) string {
	if theme == "light" {
		return styles.LightStyle
	}
	return styles.DarkStyle
}

func newRenderer(theme string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(width),
	)
}

// previewModel renders a markdown document the way the editor theme asks
// for. It re-renders whenever the theme changes.
type previewModel struct {
	ctx       context.Context
	documents DocumentReader
	path      string

	copyToClipboard func(string) error

	doc      models.DocFile
	loaded   bool
	theme    string
	viewport viewport.Model
	status   string
	errMsg   string
}

func newPreviewModel(ctx context.Context, documents DocumentReader, preferences service.PreferencesService, path string) *previewModel {
	return &previewModel{
		ctx:             ctx,
		documents:       documents,
		path:            path,
		copyToClipboard: clipboard.WriteAll,
		theme:           preferences.Theme(),
		viewport:        viewport.New(defaultPreviewWidth, defaultPreviewHeight),
	}
}

func (m *previewModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *previewModel) cmdLoad() tea.Cmd {
	ctx, documents, path := m.ctx, m.documents, m.path
	return func() tea.Msg {
		doc, err := documents.Read(ctx, path)
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentLoadedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Cannot open %s: %v", m.path, msg.err)
			return m, nil
		}
		m.doc = msg.doc
		m.loaded = true
		m.errMsg = ""
		m.render()
		return m, nil

	case configChangedMsg:
		if msg.view.Theme != m.theme {
			m.theme = msg.view.Theme
			m.render()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-previewChrome, 1)
		m.render()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageSettings} }
		case key.Matches(msg, keys.copy):
			if err := m.copyToClipboard(m.path); err != nil {
				m.errMsg = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = "Path copied"
			return m, clearStatusAfter(statusTimeout)
		case key.Matches(msg, keys.reload):
			return m, m.cmdLoad()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// render lays the document out again with the current theme and width.
func (m *previewModel) render() {
	if !m.loaded {
		return
	}

	renderer, err := newRenderer(m.theme, max(m.viewport.Width-2, 20))
	if err != nil {
		m.errMsg = fmt.Sprintf("Cannot render: %v", err)
		return
	}
	out, err := renderer.Render(m.doc.Content)
	if err != nil {
		m.errMsg = fmt.Sprintf("Cannot render: %v", err)
		return
	}
	m.viewport.SetContent(out)
}

func (m *previewModel) View() string {
	var b strings.Builder

	b.WriteString(m.path)
	b.WriteString("  [")
	b.WriteString(m.theme)
	b.WriteString("]\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.loaded {
		b.WriteString(m.viewport.View())
	} else if m.errMsg == "" {
		b.WriteString("Loading...")
	}

	return renderPage("PREVIEW", b.String(), "esc: settings │ c: copy path │ r: reload │ ↑/↓: scroll")
}
