package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusOut receives status lines. Command results go to the command's
// output writer so that they can be piped.
var statusOut io.Writer = os.Stderr

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success, split layouts
	colorYellow = lipgloss.Color("220") // warnings, tiled layouts
	colorRed    = lipgloss.Color("167") // layered layouts
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

func status(icon string, format string, args ...any) {
	fmt.Fprintln(statusOut, icon+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	status(styleIconSuccess.Render(iconSuccess), format, args...)
}

func printWarning(format string, args ...any) {
	status(styleIconWarning.Render(iconWarning), "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	status(styleIconInfo.Render(iconInfo), format, args...)
}

// printDetail prints an indented dim line below a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile points at a file that was written.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printPlanStats summarizes a compiled plan: "2 panes · 1 splits · cached".
func printPlanStats(splits, panes int, cached bool) {
	source := StyleDim.Render("compiled")
	if cached {
		source = styleCached.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d panes", panes)),
		StyleDim.Render(fmt.Sprintf("%d splits", splits)),
		source,
	}
	fmt.Fprintln(statusOut, "  "+strings.Join(parts, sep))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(statusOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
