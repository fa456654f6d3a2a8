// Package config defines the settings shared by the baggage-desk binaries
// and helpers to load, validate and save them in YAML format.
package config
