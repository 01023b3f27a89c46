//go:build debug

// Package debug provides categorized trace logging for development builds.
// Build with -tags debug to enable it.
package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/justyntemme/scribe/internal/logging"
)

// Enabled indicates whether debug logging is active
const Enabled = true

// Category represents a debug logging category
type Category string

const (
	APP    Category = "APP"    // Startup, orchestration, window events
	LOOP   Category = "LOOP"   // Event loop phases and action dispatch
	FS     Category = "FS"     // Worker requests and file reads
	SCAN   Category = "SCAN"   // Directory scanning (verbose)
	SEARCH Category = "SEARCH" // File finder and query matching
	STORE  Category = "STORE"  // Recents database
	UI     Category = "UI"     // Presentation events
)

var (
	enabledCategories = map[Category]bool{
		APP:    true,
		LOOP:   true,
		FS:     true,
		SEARCH: true,
		STORE:  true,
		UI:     true,
		SCAN:   false,
	}
	categoryMu sync.RWMutex

	logger = logging.NewLogger("debug")
)

func init() {
	logging.Base().SetLevel(logrus.DebugLevel)

	// SCRIBE_DEBUG=all, SCRIBE_DEBUG=none or SCRIBE_DEBUG=LOOP,FS
	env := os.Getenv("SCRIBE_DEBUG")
	if env == "" {
		return
	}
	categoryMu.Lock()
	defer categoryMu.Unlock()

	switch env = strings.ToUpper(env); env {
	case "ALL":
		for cat := range enabledCategories {
			enabledCategories[cat] = true
		}
	case "NONE":
		for cat := range enabledCategories {
			enabledCategories[cat] = false
		}
	default:
		for cat := range enabledCategories {
			enabledCategories[cat] = false
		}
		for _, cat := range strings.Split(env, ",") {
			enabledCategories[Category(strings.TrimSpace(cat))] = true
		}
	}
}

// Log logs a debug message for the specified category
func Log(cat Category, format string, args ...interface{}) {
	categoryMu.RLock()
	enabled := enabledCategories[cat]
	categoryMu.RUnlock()

	if !enabled {
		return
	}
	logger.WithField("cat", string(cat)).Debug(fmt.Sprintf(format, args...))
}

// Enable enables a debug category
func Enable(cat Category) {
	categoryMu.Lock()
	enabledCategories[cat] = true
	categoryMu.Unlock()
}

// Disable disables a debug category
func Disable(cat Category) {
	categoryMu.Lock()
	enabledCategories[cat] = false
	categoryMu.Unlock()
}

// IsEnabled returns whether a category is enabled
func IsEnabled(cat Category) bool {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return enabledCategories[cat]
}
