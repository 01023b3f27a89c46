//go:build !windows || debug

package main

// manageConsole keeps the console attached.
func manageConsole() {}
