package tui

import (
	"github.com/MKhiriev/go-docs-keeper/models"
)

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// configChangedMsg is sent for every preference update, local or remote.
type configChangedMsg struct {
	view models.ConfigView
}

// configUpdatedMsg is the result of an update started by the settings page.
type configUpdatedMsg struct {
	cfg models.Config
	err error
}

type documentLoadedMsg struct {
	doc models.DocFile
	err error
}

type clearStatusMsg struct{}
