// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campuspath/campus"
	"github.com/katalvlaran/campuspath/dijkstra"
)

// Menu text.
const (
	msgWelcome      = "Welcome to Campus Path Finder!"
	msgPrompt       = "Please Select an Option Below!"
	msgOptions      = "1: Load File\n2: Show Data Stats\n3: Find Shortest Path\n4: Exit App"
	msgInvalidInput = "Invalid input, please select a valid command."
	msgFileNotFound = "File not found, invalid path. Please input a valid file path."
	msgBadNames     = "Invalid building names. Please select new locations and try again."
	msgExit         = "Exiting app. Thank you for using Campus Path Finder!"
)

// menu is the line-oriented interactive loop.
type menu struct {
	svc *campus.Service
	in  *bufio.Scanner
	out io.Writer
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	m := &menu{
		svc: a.svc,
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}

	return m.run(cmd.Context())
}

// run loops until option 4, end of input, or ctx is cancelled.
func (m *menu) run(ctx context.Context) error {
	fmt.Fprintln(m.out, msgWelcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "\n%s\n%s\n", msgPrompt, msgOptions)

		choice, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}
		switch choice {
		case "1":
			m.load()
		case "2":
			m.stats()
		case "3":
			m.route(ctx)
		case "4":
			fmt.Fprintf(m.out, "\n%s\n", msgExit)
			return nil
		default:
			fmt.Fprintf(m.out, "\n%s\n", msgInvalidInput)
		}
	}
}

func (m *menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) load() {
	fmt.Fprintln(m.out, "\nPlease type file path: ")
	path, ok := m.readLine()
	if !ok {
		return
	}
	err := m.svc.LoadFile(path)
	switch {
	case errors.Is(err, campus.ErrFileNotFound):
		fmt.Fprintf(m.out, "\n%s\n", msgFileNotFound)
	case err != nil:
		fmt.Fprintf(m.out, "\nCould not load %s: %v\n", path, err)
	default:
		fmt.Fprintf(m.out, "\nLoading %s\nSuccess!\n", path)
	}
}

func (m *menu) stats() {
	st, err := m.svc.Stats()
	if err != nil {
		fmt.Fprintf(m.out, "\n%v\n", err)
		return
	}
	fmt.Fprintln(m.out)
	renderStats(m.out, st)
}

func (m *menu) route(ctx context.Context) {
	fmt.Fprintln(m.out, "\nEnter initial destination: ")
	from, ok := m.readLine()
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "Enter final destination: ")
	to, ok := m.readLine()
	if !ok {
		return
	}

	r, err := m.svc.ShortestPath(ctx, from, to)
	switch {
	case errors.Is(err, dijkstra.ErrUnknownNode):
		fmt.Fprintf(m.out, "\n%s\n", msgBadNames)
		if hints := m.suggest(from, to); len(hints) > 0 {
			fmt.Fprintf(m.out, "Did you mean: %s?\n", strings.Join(hints, ", "))
		}
	case errors.Is(err, dijkstra.ErrNoPath):
		fmt.Fprintf(m.out, "\nNo walkway connects %s and %s.\n", campus.CleanName(from), campus.CleanName(to))
	case err != nil:
		fmt.Fprintf(m.out, "\n%v\n", err)
	default:
		fmt.Fprintln(m.out)
		renderRoute(m.out, r)
	}
}

// maxHints caps the suggestions printed after a bad building name.
const maxHints = 5

// suggest lists loaded buildings whose name contains one of the typed names,
// ignoring case. Names that match a building exactly are not hints.
func (m *menu) suggest(names ...string) []string {
	buildings := m.svc.Buildings()
	known := make(map[string]bool, len(buildings))
	for _, b := range buildings {
		known[b] = true
	}

	var hints []string
	seen := make(map[string]bool)
	for _, n := range names {
		n = campus.CleanName(n)
		if n == "" || known[n] {
			continue
		}
		needle := strings.ToLower(n)
		for _, b := range buildings {
			if len(hints) == maxHints {
				return hints
			}
			if !seen[b] && strings.Contains(strings.ToLower(b), needle) {
				seen[b] = true
				hints = append(hints, b)
			}
		}
	}

	return hints
}
