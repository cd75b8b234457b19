package mocks

import (
	"context"
	"sync"
	"venuely/infras/otel"
)

// Recorder is an in-memory otel.Otel. It remembers span names and traced errors so tests
// can assert on them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

type scope struct {
	recorder *Recorder
}

func (s *scope) End() {}
func (s *scope) AddEvent(string) {}
func (s *scope) SetAttribute(string, any) {}
func (s *scope) SetAttributes(map[string]any) {}

func (s *scope) TraceError(err error) {
	s.recorder.mu.Lock()
	s.recorder.errors = append(s.recorder.errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
