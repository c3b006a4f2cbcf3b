// Package ux renders lvroute output for the terminal.
package ux

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvroute/internal/planner"
)

// Palette.
var (
	ColorAccent = lipgloss.Color("#2CD7C7")
	ColorMuted  = lipgloss.Color("#5C7A84")
	ColorError  = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Label: lipgloss.NewStyle().Bold(true),
	Muted: lipgloss.NewStyle().Foreground(ColorMuted),
	Error: lipgloss.NewStyle().Foreground(ColorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1),
}

// PathSeparator joins city names in a rendered route.
const PathSeparator = " -> "

// FormatElapsed renders d in milliseconds with three decimals.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Nanoseconds())/1e6)
}

// RenderResult renders one search result as a bordered block.
func RenderResult(r planner.Result) string {
	title := Styles.Title.Render(strings.ToUpper(r.Algorithm) + " Results")
	if !r.Found() {
		return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			Styles.Error.Render("No path found."),
		))
	}

	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		Styles.Label.Render("Path: ")+strings.Join(r.Cities, PathSeparator),
		Styles.Label.Render("Path Cost: ")+fmt.Sprint(r.Cost()),
		Styles.Label.Render("Execution Time: ")+Styles.Muted.Render(FormatElapsed(r.Elapsed)),
	))
}

// RenderCities renders the list of available cities.
func RenderCities(cities []string) string {
	return Styles.Title.Render("Available cities:") + "\n" + strings.Join(cities, " ")
}
