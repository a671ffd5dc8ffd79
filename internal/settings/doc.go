// Package settings locates and parses the configure-stage settings file
// (KEY=VALUE lines, # comments) into an in-memory map. The file location is
// derived from an explicitly passed build output directory; nothing in this
// package reads the process environment.
package settings
