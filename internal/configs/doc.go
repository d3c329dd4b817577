// Package configs manages secman's per-project configuration.
//
// Configuration is a static TOML file (.secman.toml) in the project
// directory, created by `secman init`. It records the project identity and
// two settings the core needs: the default secrets file and the reserved
// name of the key declaration line. Configuration is data, never code:
// secman does not execute anything to discover its settings.
package configs
