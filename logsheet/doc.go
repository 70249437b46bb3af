// Package logsheet defines the canonical FMCSA daily-log data model: the four
// duty statuses, normalized events and days, per-day metrics, and violations.
// Everything in this package is plain data; normalization lives in convert and
// drawing in render.
package logsheet
