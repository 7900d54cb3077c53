// Package engine holds the plotting session: the last accepted expression
// together with its derivative, and the operations a front end needs on it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wildfunctions/mathplot/pkg/aos"
	"github.com/wildfunctions/mathplot/pkg/expr"
	"github.com/wildfunctions/mathplot/pkg/plot"
)

const tracerName = "github.com/wildfunctions/mathplot/pkg/engine"

// ErrNoExpression is returned when an operation needs an expression and none
// has been accepted yet.
var ErrNoExpression = errors.New("no expression loaded")

// Session is an accepted expression and its derivative, both simplified.
// A Session is never modified; SetExpression replaces it as a whole.
type Session struct {
	ID         string
	Input      string
	Expression expr.Node
	Derivative expr.Node
}

// Target selects which curve of a session to use.
type Target int

const (
	TargetExpression Target = iota
	TargetDerivative
)

func (t Target) String() string {
	if t == TargetDerivative {
		return "derivative"
	}
	return "expression"
}

func (s Session) node(t Target) expr.Node {
	if t == TargetDerivative {
		return s.Derivative
	}
	return s.Expression
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithTracer sets the tracer. The default comes from the global
// OpenTelemetry provider.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// Engine parses, differentiates, samples and integrates expressions. It is
// safe for concurrent use.
type Engine struct {
	cfg    Config
	format aos.Format
	logger *slog.Logger
	tracer trace.Tracer

	mu      sync.RWMutex
	session *Session
}

// New creates a new engine from the given config.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	format, _ := aos.FormatByName(cfg.Format)

	e := &Engine{
		cfg:    cfg,
		format: format,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetExpression parses text, simplifies it, differentiates the parsed tree
// and simplifies the derivative. Only when every step succeeds does the new
// session replace the current one.
func (e *Engine) SetExpression(ctx context.Context, text string) error {
	ctx, span := e.tracer.Start(ctx, "mathplot.set_expression",
		trace.WithAttributes(
			attribute.String("mathplot.input", text),
			attribute.String("mathplot.format", e.format.String()),
		),
	)
	defer span.End()

	s, err := e.build(text)
	if err != nil {
		recordError(span, err)
		e.logger.WarnContext(ctx, "expression rejected", "input", text, "error", err)
		return fmt.Errorf("setting expression: %w", err)
	}

	span.SetAttributes(
		attribute.String("mathplot.session_id", s.ID),
		attribute.String("mathplot.expression", s.Expression.String()),
		attribute.String("mathplot.derivative", s.Derivative.String()),
	)

	e.mu.Lock()
	e.session = &s
	e.mu.Unlock()

	e.logger.InfoContext(ctx, "expression accepted",
		"session", s.ID,
		"expression", s.Expression.String(),
		"derivative", s.Derivative.String(),
	)
	return nil
}

func (e *Engine) build(text string) (Session, error) {
	parsed, err := aos.ParseAs(text, e.format)
	if err != nil {
		return Session{}, err
	}
	d, err := e.derive(parsed)
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:         uuid.NewString(),
		Input:      text,
		Expression: expr.Simplify(parsed),
		Derivative: expr.Simplify(d),
	}, nil
}

// derive applies the power rule only when the config asks for strict
// exponents.
func (e *Engine) derive(n expr.Node) (expr.Node, error) {
	if e.cfg.Strict {
		return expr.DeriveStrict(n)
	}
	return expr.Derive(n), nil
}

// RawDerivative parses text in the configured format and prints its
// derivative without simplifying it. The current session is not touched.
func (e *Engine) RawDerivative(text string) (string, error) {
	parsed, err := aos.ParseAs(text, e.format)
	if err != nil {
		return "", fmt.Errorf("deriving %q: %w", text, err)
	}
	d, err := e.derive(parsed)
	if err != nil {
		return "", fmt.Errorf("deriving %q: %w", text, err)
	}
	return aos.Print(d, e.format)
}

// Session returns the current session, or false when none is loaded.
func (e *Engine) Session() (Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

func (e *Engine) current() (Session, error) {
	s, ok := e.Session()
	if !ok {
		return Session{}, ErrNoExpression
	}
	return s, nil
}

// PrintForms returns the normalised expression and derivative.
func (e *Engine) PrintForms() ([2]string, error) {
	s, err := e.current()
	if err != nil {
		return [2]string{}, err
	}
	return e.forms(s)
}

func (e *Engine) forms(s Session) ([2]string, error) {
	var forms [2]string
	for i, n := range []expr.Node{s.Expression, s.Derivative} {
		f, err := aos.Print(n, e.format)
		if err != nil {
			return [2]string{}, err
		}
		forms[i] = f
	}
	return forms, nil
}

// Sample returns the points of the target curve over the configured domain.
// An empty mode selects the configured one.
func (e *Engine) Sample(target Target, mode string) (iter.Seq[plot.Point], error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = e.cfg.Mode
	}
	m, err := plot.GetMode(mode)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("sampling",
		"session", s.ID, "target", target.String(), "mode", m.Name(),
		"min", e.cfg.Min, "max", e.cfg.Max, "steps", e.cfg.Steps,
	)
	return plot.Sample(expr.Func(s.node(target)), e.cfg.Domain(), e.cfg.Steps, m), nil
}

// Area approximates the integral of the expression over the configured
// domain. An empty method selects the configured one.
func (e *Engine) Area(ctx context.Context, method string) (float64, error) {
	if method == "" {
		method = e.cfg.Method
	}
	ctx, span := e.tracer.Start(ctx, "mathplot.area",
		trace.WithAttributes(
			attribute.String("mathplot.method", method),
			attribute.Int("mathplot.steps", e.cfg.AreaSteps),
		),
	)
	defer span.End()

	s, err := e.current()
	if err != nil {
		return 0, recordError(span, err)
	}
	m, err := plot.GetMethod(method)
	if err != nil {
		return 0, recordError(span, err)
	}

	area := m.Area(expr.Func(s.Expression), e.cfg.Domain(), e.cfg.AreaSteps)
	span.SetAttributes(
		attribute.String("mathplot.session_id", s.ID),
		attribute.Float64("mathplot.area", area),
	)
	e.logger.DebugContext(ctx, "area computed", "session", s.ID, "method", m.Name(), "area", area)
	return area, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
