//go:build windows && !debug

package main

import "syscall"

// manageConsole hides the console window in release builds.
// Launched from Explorer this prevents a persistent console window.
func manageConsole() {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	freeConsole := kernel32.NewProc("FreeConsole")
	freeConsole.Call()
}
