// Package config provides configuration loading, merging, and validation
// facilities for the application runtime.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// These are process settings (where to listen, which storage backend to
// open). User preferences of the editor are not configured here; they live
// in the key-value storage and are resolved by the preference service.
//
// The main entry points are [GetServerConfig] and [GetClientConfig].
package config
