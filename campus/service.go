// SPDX-License-Identifier: MIT

package campus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/campuspath/core"
	"github.com/katalvlaran/campuspath/dijkstra"
)

// TracerName identifies spans emitted by this package.
const TracerName = "campuspath.campus"

// Service owns the campus graph and answers queries about it.
type Service struct {
	graph    *core.Graph[string]
	log      logrus.FieldLogger
	tracer   trace.Tracer
	strategy dijkstra.Strategy
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTracer sets the tracer used for query spans. nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithGraph makes the Service operate on an existing graph. nil is ignored.
func WithGraph(g *core.Graph[string]) Option {
	return func(s *Service) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithStrategy selects the frontier strategy used for route queries.
func WithStrategy(st dijkstra.Strategy) Option {
	return func(s *Service) { s.strategy = st }
}

// NewService returns an empty campus. By default it logs through the logrus
// standard logger and traces through the global OpenTelemetry provider.
func NewService(opts ...Option) *Service {
	s := &Service{
		log:      logrus.StandardLogger(),
		tracer:   otel.Tracer(TracerName),
		strategy: dijkstra.Reinsert,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		s.graph = core.NewStringGraph()
	}

	return s
}

// Graph exposes the underlying graph.
func (s *Service) Graph() *core.Graph[string] { return s.graph }

// Buildings lists the loaded buildings.
func (s *Service) Buildings() []string { return s.graph.Nodes() }

// Load inserts every segment in both directions. Segments are merged into
// what is already loaded; a repeated walkway takes the newer time.
// All segments are validated before anything is inserted.
func (s *Service) Load(segs []Segment) error {
	if s == nil {
		return ErrNilService
	}
	_, err := s.insert(segs)

	return err
}

func (s *Service) insert(segs []Segment) (int, error) {
	for i, seg := range segs {
		if seg.From == "" || seg.To == "" {
			return 0, fmt.Errorf("%w: segment %d has an empty building name", ErrMalformedLine, i)
		}
		if seg.Seconds < 0 || math.IsNaN(seg.Seconds) || math.IsInf(seg.Seconds, 0) {
			return 0, fmt.Errorf("campus: segment %s -- %s: %w", seg.From, seg.To, core.ErrNegativeWeight)
		}
	}

	added := 0
	for _, seg := range segs {
		if s.graph.InsertNode(seg.From) {
			added++
		}
		if s.graph.InsertNode(seg.To) {
			added++
		}
		if _, err := s.graph.InsertEdge(seg.From, seg.To, seg.Seconds); err != nil {
			return added, fmt.Errorf("campus: %w", err)
		}
		if _, err := s.graph.InsertEdge(seg.To, seg.From, seg.Seconds); err != nil {
			return added, fmt.Errorf("campus: %w", err)
		}
	}
	s.log.WithFields(logrus.Fields{
		"segments":  len(segs),
		"buildings": added,
	}).Debug("walkways loaded")

	return added, nil
}

// LoadReader parses r and loads the result inside a campus.Load span.
func (s *Service) LoadReader(r io.Reader) error {
	if s == nil {
		return ErrNilService
	}
	span := s.startLoad("")
	defer span.End()

	return s.loadFrom(span, r)
}

// LoadFile reads the walkway file at path inside a campus.Load span.
// A missing file yields ErrFileNotFound.
func (s *Service) LoadFile(path string) error {
	if s == nil {
		return ErrNilService
	}
	span := s.startLoad(path)
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		} else {
			err = fmt.Errorf("campus: open %s: %w", path, err)
		}
		failSpan(span, err)
		return err
	}
	defer f.Close()

	if err := s.loadFrom(span, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.log.WithField("file", path).Info("campus data loaded")

	return nil
}

func (s *Service) startLoad(path string) trace.Span {
	_, span := s.tracer.Start(context.Background(), "campus.Load")
	if path != "" {
		span.SetAttributes(attribute.String("campus.file", path))
	}

	return span
}

func (s *Service) loadFrom(span trace.Span, r io.Reader) error {
	segs, err := Parse(r)
	if err != nil {
		failSpan(span, err)
		return err
	}
	added, err := s.insert(segs)
	span.SetAttributes(
		attribute.Int("campus.segments", len(segs)),
		attribute.Int("campus.buildings", added),
	)
	if err != nil {
		failSpan(span, err)
		return err
	}

	return nil
}

// failSpan marks span as failed with err's message.
func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
