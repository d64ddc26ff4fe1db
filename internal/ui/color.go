package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle  = lipgloss.NewStyle().Faint(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func HeaderLine(w io.Writer, name, description string) {
	fmt.Fprintln(w, nameStyle.Render(name))
	if description != "" {
		fmt.Fprintln(w, dimStyle.Render(description))
	}
}

func CountLine(w io.Writer, scenarios, actionwords int) {
	fmt.Fprintf(w, "%d scenarios, %d actionwords\n", scenarios, actionwords)
}

func DiagLine(w io.Writer, element, reason string) {
	fmt.Fprintln(w, warnStyle.Render("skipped")+"  "+reason)
	fmt.Fprintln(w, dimStyle.Render("  "+element))
}

func NewLine(w io.Writer, name string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+name)
}

func TrkLine(w io.Writer, name string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+name)
}

func SummaryLine(w io.Writer, scenarios, actionwords int) {
	fmt.Fprintf(w, "synced %d scenarios, %d actionwords\n", scenarios, actionwords)
}

func ListRow(w io.Writer, id int64, project, name string, idWidth, projectWidth int) {
	fmt.Fprintf(w, "%-*d  %-*s  %s\n", idWidth, id, projectWidth, project, name)
}
