// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// ── ToolbarFlags ──────────────────────────────────────────────────────────────

func TestToolbarFlags_Any(t *testing.T) {
	tests := []struct {
		name  string
		flags ToolbarFlags
		want  bool
	}{
		{name: "nil map", flags: nil, want: false},
		{name: "empty map", flags: ToolbarFlags{}, want: false},
		{name: "all false", flags: ToolbarFlags{"bold": false, "italic": false}, want: false},
		{name: "one true", flags: ToolbarFlags{"bold": false, "italic": true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Any())
		})
	}
}

func TestToolbarFlags_With_DoesNotModifyReceiver(t *testing.T) {
	flags := ToolbarFlags{"bold": true}

	next := flags.With("italic", true)

	assert.Equal(t, ToolbarFlags{"bold": true}, flags)
	assert.Equal(t, ToolbarFlags{"bold": true, "italic": true}, next)
}

func TestToolbarFlags_IDs_Sorted(t *testing.T) {
	flags := ToolbarFlags{"table": false, "bold": true, "link": false}
	assert.Equal(t, []string{"bold", "link", "table"}, flags.IDs())
}

// ── MdMode ────────────────────────────────────────────────────────────────────

func TestMdMode_Next(t *testing.T) {
	assert.Equal(t, MdModeSV, MdModeIR.Next())
	assert.Equal(t, MdModeWYSIWYG, MdModeSV.Next())
	assert.Equal(t, MdModeIR, MdModeWYSIWYG.Next())
	assert.Equal(t, MdModeIR, MdMode("unknown").Next())
}

// ── Merge ─────────────────────────────────────────────────────────────────────

func TestConfigMerge_OverwritesOnlySetFields(t *testing.T) {
	current := Config{
		Theme:     "dark",
		MdMode:    MdModeWYSIWYG,
		MdToolbar: ToolbarFlags{"bold": true},
	}

	next := current.Merge(ConfigPatch{Theme: strPtr("light")})

	assert.Equal(t, "light", next.Theme)
	assert.Equal(t, MdModeWYSIWYG, next.MdMode)
	assert.Equal(t, ToolbarFlags{"bold": true}, next.MdToolbar)
	assert.Equal(t, "dark", current.Theme, "receiver must stay untouched")
}

// TestConfigMerge_ReplacesNestedMap pins the one level merge: a toolbar map in
// the patch replaces the current map and sibling flags are dropped.
func TestConfigMerge_ReplacesNestedMap(t *testing.T) {
	current := Config{MdToolbar: ToolbarFlags{"bold": true, "italic": true}}

	next := current.Merge(ConfigPatch{MdToolbar: ToolbarFlags{"bold": false}})

	assert.Equal(t, ToolbarFlags{"bold": false}, next.MdToolbar)
	_, hasItalic := next.MdToolbar["italic"]
	assert.False(t, hasItalic)
}

func TestConfigMerge_EmptyMapClears(t *testing.T) {
	current := Config{AhtmlToolbar: ToolbarFlags{"bold": true}}

	next := current.Merge(ConfigPatch{AhtmlToolbar: ToolbarFlags{}})

	assert.NotNil(t, next.AhtmlToolbar)
	assert.Empty(t, next.AhtmlToolbar)
}

func TestConfigMerge_PatchMapIsCopied(t *testing.T) {
	patchFlags := ToolbarFlags{"bold": true}
	next := Config{}.Merge(ConfigPatch{MdToolbar: patchFlags})

	patchFlags["bold"] = false

	assert.True(t, next.MdToolbar["bold"])
}

func TestConfigMerge_AsPatchIsIdentity(t *testing.T) {
	current := Config{
		Theme:        "light",
		MdMode:       MdModeIR,
		MdToolbar:    ToolbarFlags{"bold": true},
		AhtmlToolbar: ToolbarFlags{"table": false},
		Watch:        boolPtr(false),
		Extra:        map[string]json.RawMessage{"fontSize": json.RawMessage(`14`)},
	}

	assert.Equal(t, current, current.Merge(current.AsPatch()))
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestConfigJSON_PreservesUnknownKeys(t *testing.T) {
	input := `{"theme":"light","fontSize":14,"plugins":{"mermaid":true}}`

	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(input), &cfg))

	assert.Equal(t, "light", cfg.Theme)
	require.Len(t, cfg.Extra, 2)
	assert.JSONEq(t, `14`, string(cfg.Extra["fontSize"]))

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(14), decoded["fontSize"])
	assert.Equal(t, map[string]any{"mermaid": true}, decoded["plugins"])
}

func TestConfigJSON_WatchOmittedWhenAbsent(t *testing.T) {
	out, err := json.Marshal(Config{Theme: "dark", MdMode: MdModeSV})
	require.NoError(t, err)

	assert.JSONEq(t, `{"theme":"dark","mdMode":"sv","mdToolbar":null,"ahtmlToolbar":null}`, string(out))
}

func TestConfigJSON_WatchRoundTrip(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark","watch":true}`), &cfg))

	require.NotNil(t, cfg.Watch)
	assert.True(t, *cfg.Watch)
	assert.Nil(t, cfg.Extra)
}

func TestConfigJSON_IsDeterministic(t *testing.T) {
	cfg := Config{
		Theme:     "dark",
		MdMode:    MdModeWYSIWYG,
		MdToolbar: ToolbarFlags{"table": false, "bold": false, "code": false},
	}

	first, err := json.Marshal(cfg)
	require.NoError(t, err)
	second, err := json.Marshal(cfg.Clone())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestConfigJSON_RejectsWrongFieldType(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"theme":42}`), &cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"theme"`)
}

func TestMergeFields_BadKeyKeepsBaseValue(t *testing.T) {
	base := Config{
		Theme:     "dark",
		MdMode:    MdModeWYSIWYG,
		MdToolbar: ToolbarFlags{"bold": false, "italic": false},
	}
	fields := map[string]json.RawMessage{
		ConfigKeyTheme:     json.RawMessage(`"light"`),
		ConfigKeyMdMode:    json.RawMessage(`"ir"`),
		ConfigKeyMdToolbar: json.RawMessage(`{"bold":1}`),
		ConfigKeyWatch:     json.RawMessage(`"yes"`),
	}

	cfg, err := MergeFields(base, fields)

	require.Error(t, err)
	assert.ErrorContains(t, err, ConfigKeyMdToolbar)
	assert.ErrorContains(t, err, ConfigKeyWatch)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, MdModeIR, cfg.MdMode)
	assert.Equal(t, ToolbarFlags{"bold": false, "italic": false}, cfg.MdToolbar)
	assert.Nil(t, cfg.Watch)
}

func TestMergeFields_ReplacesMapsAndLeavesBaseAlone(t *testing.T) {
	base := Config{MdToolbar: ToolbarFlags{"bold": true, "italic": true}}

	cfg, err := MergeFields(base, map[string]json.RawMessage{
		ConfigKeyMdToolbar: json.RawMessage(`{"bold":false}`),
		ConfigKeyTheme:     json.RawMessage(`null`),
	})

	require.NoError(t, err)
	assert.Equal(t, ToolbarFlags{"bold": false}, cfg.MdToolbar)
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, ToolbarFlags{"bold": true, "italic": true}, base.MdToolbar)
}

func TestConfigJSON_RejectsNonObject(t *testing.T) {
	var cfg Config
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &cfg))
}

// ── ConfigPatch ───────────────────────────────────────────────────────────────

func TestConfigPatch_MarshalOnlySetFields(t *testing.T) {
	out, err := json.Marshal(ConfigPatch{Theme: strPtr("light"), MdToolbar: ToolbarFlags{}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"theme":"light","mdToolbar":{}}`, string(out))
}

func TestConfigPatch_UnmarshalNullIsUnset(t *testing.T) {
	var patch ConfigPatch
	require.NoError(t, json.Unmarshal([]byte(`{"mdToolbar":null,"watch":false}`), &patch))

	assert.Nil(t, patch.MdToolbar)
	require.NotNil(t, patch.Watch)
	assert.False(t, *patch.Watch)
}

func TestConfigPatch_IsEmpty(t *testing.T) {
	assert.True(t, ConfigPatch{}.IsEmpty())
	assert.False(t, ConfigPatch{AhtmlToolbar: ToolbarFlags{}}.IsEmpty())
}

func TestNewConfigView(t *testing.T) {
	cfg := Config{
		MdToolbar:    ToolbarFlags{"bold": false, "italic": true},
		AhtmlToolbar: ToolbarFlags{"bold": false},
	}

	view := NewConfigView(cfg)
	assert.Equal(t, "dark", view.Theme)
	assert.True(t, view.ShowMdToolbar)
	assert.False(t, view.ShowAhtmlToolbar)

	view.Config.MdToolbar["bold"] = true
	assert.False(t, cfg.MdToolbar["bold"], "view must not share maps with the source")
}

func TestConfig_ThemeOrDefault(t *testing.T) {
	assert.Equal(t, "dark", Config{}.ThemeOrDefault())
	assert.Equal(t, "light", Config{Theme: "light"}.ThemeOrDefault())
}

func TestConfig_WatchEnabled(t *testing.T) {
	assert.True(t, Config{}.WatchEnabled())
	assert.True(t, Config{Watch: boolPtr(true)}.WatchEnabled())
	assert.False(t, Config{Watch: boolPtr(false)}.WatchEnabled())
}
