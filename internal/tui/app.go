package tui

import (
	"github.com/MKhiriev/go-docs-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageSettings = "settings"
	pagePreview  = "preview"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) broadcasts preference changes to every page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	currentPage string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		currentPage: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) current() tea.Model {
	return r.pages[r.currentPage]
}

func (r RootModel) Init() tea.Cmd {
	if r.current() == nil {
		return nil
	}
	return r.current().Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.currentPage == pageSettings {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.currentPage = msg.Page
		return r, r.current().Init()

	case configChangedMsg, tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	if r.current() == nil {
		return r, nil
	}

	updated, cmd := r.current().Update(msg)
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current() == nil {
		return renderPage("DOCS KEEPER", "", "")
	}
	return r.current().View()
}
