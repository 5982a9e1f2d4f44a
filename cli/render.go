// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/campuspath/campus"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("-", lipgloss.Width(title))))
}

func seconds(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

func renderStats(w io.Writer, st campus.Stats) {
	heading(w, "Campus Statistics:")
	fmt.Fprintln(w, st.String())
	fmt.Fprintf(w, "Connected Groups: %d\n", st.Groups)
}

func renderRoute(w io.Writer, r campus.Route) {
	heading(w, fmt.Sprintf("List of buildings from %s to %s:", r.From, r.To))
	fmt.Fprintln(w, strings.Join(r.Buildings, " --> "))

	fmt.Fprintf(w, "\nHere's the walking time for each segment from %s to %s.\n\n", r.From, r.To)
	for i, t := range r.WalkTimes {
		fmt.Fprintf(w, "%s to %s: %s seconds.\n", r.Buildings[i], r.Buildings[i+1], seconds(t))
	}

	fmt.Fprintf(w, "\nIt will take you %.2f seconds to get from %s to %s.\n", r.Total, r.From, r.To)
}

func renderReachable(w io.Writer, from string, order []string) {
	heading(w, fmt.Sprintf("Buildings reachable from %s:", from))
	for i, b := range order {
		fmt.Fprintf(w, "%3d. %s\n", i+1, b)
	}
}
