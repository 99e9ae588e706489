// Package probe runs the external mediainfo binary and returns its JSON
// report. Interpreting the report is left to package summary.
package probe
