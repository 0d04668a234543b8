// Package config holds the player settings, their validators and the
// TOML-backed store they are persisted in.
package config
