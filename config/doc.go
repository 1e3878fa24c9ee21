// Package config loads float-manager scenarios from disk: a single-
// document TOML manifest describing one formatting context's floats for
// the floatinspect CLI, and a YAML scenario set for batch regression
// checks.
package config
