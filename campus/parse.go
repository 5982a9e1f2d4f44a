// SPDX-License-Identifier: MIT

package campus

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one two-way walkway between two buildings.
type Segment struct {
	From    string
	To      string
	Seconds float64
}

// edgeLine matches `"A" -- "B" [seconds=N];` with optional surrounding blanks
// and an optional trailing semicolon.
var edgeLine = regexp.MustCompile(`^\s*"([^"]+)"\s*--\s*"([^"]+)"\s*\[\s*seconds\s*=\s*((?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?)\s*\]\s*;?\s*$`)

// Parse reads walkway segments from r. Lines that contain no "--" are
// skipped; an edge line that does not parse fails with ErrMalformedLine.
func Parse(r io.Reader) ([]Segment, error) {
	var segs []Segment
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !strings.Contains(line, "--") {
			continue
		}
		seg, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
		}
		segs = append(segs, seg)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("campus: read: %w", err)
	}

	return segs, nil
}

func parseLine(line string) (Segment, error) {
	m := edgeLine.FindStringSubmatch(line)
	if m == nil {
		return Segment{}, fmt.Errorf("%q", strings.TrimSpace(line))
	}
	secs, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Segment{}, err
	}

	return Segment{From: strings.TrimSpace(m[1]), To: strings.TrimSpace(m[2]), Seconds: secs}, nil
}
