package models

// DefaultTheme is reported by [Config.ThemeOrDefault] for an empty theme.
const DefaultTheme = "dark"

// ConfigView is a configuration snapshot together with the values derived
// from it. It is what subscribers of the preference store receive.
type ConfigView struct {
	Config           Config `json:"config"`
	Theme            string `json:"theme"`
	ShowMdToolbar    bool   `json:"showMdToolbar"`
	ShowAhtmlToolbar bool   `json:"showAhtmlToolbar"`
}

// NewConfigView derives the view of c. c is cloned.
func NewConfigView(c Config) ConfigView {
	return ConfigView{
		Config:           c.Clone(),
		Theme:            c.ThemeOrDefault(),
		ShowMdToolbar:    c.MdToolbar.Any(),
		ShowAhtmlToolbar: c.AhtmlToolbar.Any(),
	}
}

// ThemeOrDefault returns c.Theme, or [DefaultTheme] when it is empty.
func (c Config) ThemeOrDefault() string {
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// WatchEnabled reports whether file watching is on. Only an explicit false
// turns it off.
func (c Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}
