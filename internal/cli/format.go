package cli

import "github.com/fatih/color"

// fatih/color disables itself when output is not a TTY.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	valueColor   = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)
