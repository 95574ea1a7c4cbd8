package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	success    = color.New(color.FgGreen, color.Bold).SprintfFunc()
	info       = color.New(color.FgCyan, color.Bold).SprintfFunc()
	warning    = color.New(color.FgYellow, color.Bold).SprintfFunc()
	errorColor = color.New(color.FgRed, color.Bold).SprintfFunc()
	dim        = color.New(color.Faint).SprintfFunc()
)

// PrintBanner prints the startup banner.
func PrintBanner() {
	fmt.Println(info("supacheck") + " - Supabase security compliance checker")
	fmt.Println(dim("------------------------------------------------"))
}

// PrintProgress prints a progress message.
func PrintProgress(message string) {
	fmt.Printf("%s\n", info(message))
}

// PrintError prints an error message.
func PrintError(message string, err error) {
	fmt.Printf("%s: %v\n", errorColor(message), err)
}

// StatusMarker renders a check status as a colored fixed-width marker.
func StatusMarker(status string) string {
	switch status {
	case "pass":
		return success("[PASS]")
	case "fail":
		return errorColor("[FAIL]")
	case "error":
		return warning("[ERROR]")
	default:
		return dim("[PENDING]")
	}
}

// PrintCheck prints one check line with its colored status.
func PrintCheck(name, status, message string) {
	fmt.Printf("%s %s: %s\n", StatusMarker(status), name, message)
}
