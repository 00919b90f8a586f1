package models

// WorkspaceConfig is stored per opened folder in .ahriknow/config.json.
type WorkspaceConfig struct {
	Token   string `json:"token"`
	Project string `json:"project"`
}
