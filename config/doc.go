// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// Absent sections fall back to usable defaults so the binary runs with no
// config file at all.
package config
