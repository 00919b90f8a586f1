package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-docs-keeper/internal/mock"
	"github.com/MKhiriev/go-docs-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsModel_TogglesToolbarWithCompleteMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferencesService(ctrl)

	current := models.Config{
		Theme:     "dark",
		MdMode:    models.MdModeSV,
		MdToolbar: models.ToolbarFlags{"bold": true, "italic": true},
	}
	prefs.EXPECT().Get().Return(current)

	next := current.Clone()
	next.MdToolbar = models.ToolbarFlags{"bold": false, "italic": true}
	prefs.EXPECT().
		Update(gomock.Any(), models.ConfigPatch{MdToolbar: models.ToolbarFlags{"bold": false, "italic": true}}).
		Return(next, nil)

	m := newSettingsModel(context.Background(), prefs, false)
	rows := settingRows(current)
	idx := -1
	for i, row := range rows {
		if row.kind == settingMdFlag && row.id == "bold" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	m.idx = idx

	updated, msg := press(t, m, "enter")
	updated, _ = updated.Update(msg)
	sm := updated.(*settingsModel)

	assert.Equal(t, "Saved", sm.status)
	assert.False(t, sm.cfg.MdToolbar["bold"])
	assert.True(t, sm.cfg.MdToolbar["italic"])
}

func TestSettingsModel_ServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferencesService(ctrl)
	prefs.EXPECT().Get().Return(models.Config{Theme: "dark"})
	prefs.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(models.Config{}, errors.New(`Patch "http://localhost:8080/api/config": dial tcp [::1]:8080: connect: connection refused`))

	m := newSettingsModel(context.Background(), prefs, false)

	updated, msg := press(t, m, "enter")
	updated, _ = updated.Update(msg)
	sm := updated.(*settingsModel)

	assert.Equal(t, "Save failed: server is unavailable or the network is down", sm.errMsg)
	assert.Equal(t, "dark", sm.cfg.Theme)
}
