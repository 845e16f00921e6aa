// Package emulog wraps slog for host-level diagnostics: assembler syntax
// errors, disk I/O failures, and CLI usage mistakes. It never logs VM
// faults — those are architectural state (ERR) reported through a Tracer
// or the execution summary, not host log lines.
//
// Grounded on the teacher's logger.LogHandler
// (_examples/rcornwell-S370/util/logger/logger.go): a slog.Handler that
// timestamps and serializes to a single writer under a mutex, with a debug
// flag gating whether records also go to stderr.
package emulog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler formats records as "time level message attr attr ..." on one
// line, mirroring the teacher's plain-text wire format rather than JSON.
type Handler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
	debug bool
}

// NewHandler builds a Handler writing to out. When debug is true, every
// record that passes the level filter is also duplicated to stderr (unless
// out is already os.Stderr).
func NewHandler(out io.Writer, opts *slog.HandlerOptions, debug bool) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out:   out,
		inner: slog.NewTextHandler(out, opts),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})
	line := []byte(strings.Join(parts, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(line)
	}
	if h.debug && h.out != os.Stderr {
		_, _ = os.Stderr.Write(line)
	}
	return err
}

// New builds an slog.Logger around a Handler writing to out.
func New(out io.Writer, debug bool) *slog.Logger {
	return slog.New(NewHandler(out, nil, debug))
}
