//go:build !debug

// Package debug provides categorized trace logging for development builds.
// This is the no-op version for release builds.
package debug

// Enabled indicates whether debug logging is active
const Enabled = false

// Category represents a debug logging category
type Category string

const (
	APP    Category = "APP"
	LOOP   Category = "LOOP"
	FS     Category = "FS"
	SCAN   Category = "SCAN"
	SEARCH Category = "SEARCH"
	STORE  Category = "STORE"
	UI     Category = "UI"
)

// Log is a no-op in release builds
func Log(cat Category, format string, args ...interface{}) {}

// Enable is a no-op in release builds
func Enable(cat Category) {}

// Disable is a no-op in release builds
func Disable(cat Category) {}

// IsEnabled always returns false in release builds
func IsEnabled(cat Category) bool { return false }
