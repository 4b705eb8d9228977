// Package generation implements the fallback-chain request policy shared by
// every generative feature: validate, call the provider once, and on any
// failure answer from the feature's fallback catalog instead.
package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/metrics"
	"curcunapanel/internal/validation"
)

// Generator produces text for a prompt. Implementations make exactly one
// provider call per invocation and do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Origin tells where a result's text came from.
type Origin string

const (
	OriginExternal Origin = "external"
	OriginFallback Origin = "fallback"
	OriginError    Origin = "error"
)

// Source returns the wire marker for o.
func (o Origin) Source() string {
	if o == OriginExternal {
		return "gemini"
	}
	return string(o)
}

// Request is the input of one generation.
type Request struct {
	Subject  string // user text; validated when the feature requires it
	Language string // resolved language tag
	Prompt   string // prebuilt instruction; rendered from Subject when empty
}

// Result is the outcome of one generation. Err carries the cause when the
// text did not come from the provider.
type Result struct {
	Text   string
	Origin Origin
	Err    error
}

// InputError is a rejected request. It matches ErrMissingInput.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == ErrMissingInput }

// Service runs generations for all features.
type Service struct {
	gen     Generator
	catalog *catalog.Catalog
	dice    catalog.Source
	log     *zap.Logger
}

// New creates a generation service. gen may be nil, meaning no provider
// credential is configured.
func New(gen Generator, cat *catalog.Catalog, dice catalog.Source, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, catalog: cat, dice: dice, log: log}
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// Generate runs the fallback chain for f. The returned error is non-nil
// only for rejected input; every other failure is folded into the Result.
func (s *Service) Generate(ctx context.Context, f Feature, req Request) (Result, error) {
	start := time.Now()

	if f.Required {
		if ok, msg := validation.ValidateSubject(f.SubjectField, req.Subject); !ok {
			metrics.ObserveRejected(f.Name)
			return Result{}, &InputError{Message: msg}
		}
	}

	res := s.generate(ctx, f, req)
	metrics.ObserveGeneration(f.Name, string(res.Origin), time.Since(start))
	return res, nil
}

func (s *Service) generate(ctx context.Context, f Feature, req Request) Result {
	if s.gen == nil {
		return s.fallback(f, req.Language, ErrNotConfigured)
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = f.Render(req.Language, req.Subject)
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.ObserveUpstreamFailure(f.Name, failureKind(err))
		s.log.Warn("generation failed",
			zap.String("feature", f.Name),
			zap.Int("upstream_status", StatusCode(err)),
			zap.Error(err),
		)
		return s.fallback(f, req.Language, err)
	}

	text = strings.TrimSpace(text)
	if f.Clean != nil {
		text = strings.TrimSpace(f.Clean(text))
	}
	if text == "" {
		metrics.ObserveUpstreamFailure(f.Name, ErrEmptyCandidate.Error())
		return s.fallback(f, req.Language, ErrEmptyCandidate)
	}

	s.log.Debug("generation succeeded", zap.String("feature", f.Name), zap.Int("length", len(text)))
	return Result{Text: text, Origin: OriginExternal}
}

// failureKind labels a provider error for the failure counter.
func failureKind(err error) string {
	var up *UpstreamError
	switch {
	case errors.As(err, &up):
		return up.Kind.Error()
	case errors.Is(err, ErrEmptyCandidate):
		return ErrEmptyCandidate.Error()
	default:
		return ErrUpstreamUnavailable.Error()
	}
}

// Fallback answers f from its catalog without calling the provider, for
// requests that could not be read.
func (s *Service) Fallback(f Feature, lang string, cause error) Result {
	res := s.fallback(f, lang, cause)
	metrics.ObserveGeneration(f.Name, string(res.Origin), 0)
	return res
}

// fallback answers from the feature's catalog. Features without one come
// back with OriginError, or an empty OriginFallback when NullFallback is set.
func (s *Service) fallback(f Feature, lang string, cause error) Result {
	if f.Catalog != "" && s.catalog.Has(f.Catalog) {
		text, err := s.catalog.Pick(s.dice, f.Catalog, lang)
		if err == nil {
			return Result{Text: text, Origin: OriginFallback, Err: cause}
		}
		s.log.Error("fallback catalog pick failed", zap.String("feature", f.Name), zap.Error(err))
	}
	if f.NullFallback {
		return Result{Origin: OriginFallback, Err: cause}
	}
	return Result{Origin: OriginError, Err: cause}
}
