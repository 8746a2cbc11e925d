package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))
)

// Out and Err are the notification sinks; tests swap them for buffers.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Info shows a user-facing informational message.
func Info(msg string) {
	fmt.Fprintln(Out, infoStyle.Render("• "+msg))
}

// Error shows a user-facing error message.
func Error(msg string) {
	fmt.Fprintln(Err, errorStyle.Render("✗ "+msg))
}
