// SPDX-License-Identifier: MIT

package campus

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/campuspath/bfs"
	"github.com/katalvlaran/campuspath/dijkstra"
)

// Route is the quickest walk between two buildings.
type Route struct {
	From      string
	To        string
	Buildings []string  // From first, To last
	WalkTimes []float64 // seconds per segment; len(Buildings)-1 entries
	Total     float64   // sum of WalkTimes
}

// Segments reports the number of walkways along the route.
func (r Route) Segments() int { return len(r.WalkTimes) }

// CleanName strips double quotes and surrounding blanks from a building name.
func CleanName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
}

// ShortestPath finds the quickest walk from one building to another.
// Errors from the engine are returned unwrapped, so callers can test them
// with errors.Is against dijkstra.ErrUnknownNode and dijkstra.ErrNoPath.
func (s *Service) ShortestPath(ctx context.Context, from, to string) (Route, error) {
	if s == nil {
		return Route{}, ErrNilService
	}
	from, to = CleanName(from), CleanName(to)

	_, span := s.tracer.Start(ctx, "campus.ShortestPath",
		trace.WithAttributes(
			attribute.String("campus.from", from),
			attribute.String("campus.to", to),
			attribute.String("campus.strategy", s.strategy.String()),
		))
	defer span.End()

	res, err := dijkstra.ShortestPath(s.graph, from, to, dijkstra.WithStrategy(s.strategy))
	if err != nil {
		failSpan(span, err)
		s.log.WithFields(logrus.Fields{"from": from, "to": to}).WithError(err).Debug("route query failed")
		return Route{}, err
	}
	span.SetAttributes(
		attribute.Int("campus.segments", len(res.Costs)),
		attribute.Float64("campus.total_seconds", res.Total),
	)
	s.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"segments": len(res.Costs),
		"seconds":  res.Total,
	}).Debug("route found")

	return Route{
		From:      from,
		To:        to,
		Buildings: res.Path,
		WalkTimes: res.Costs,
		Total:     res.Total,
	}, nil
}

// Reachable lists the buildings reachable from start in breadth-first order,
// start first.
func (s *Service) Reachable(ctx context.Context, start string) ([]string, error) {
	if s == nil {
		return nil, ErrNilService
	}
	start = CleanName(start)

	ctx, span := s.tracer.Start(ctx, "campus.Reachable",
		trace.WithAttributes(attribute.String("campus.from", start)))
	defer span.End()

	res, err := bfs.Walk(s.graph, start, bfs.WithContext[string](ctx))
	if err != nil {
		failSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("campus.reached", len(res.Order)))

	return res.Order, nil
}
