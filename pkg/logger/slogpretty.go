package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorGray    = "\033[90m"
)

type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
	NoColor  bool
}

// PrettyHandler writes one human readable line per record:
// time, coloured level, message and the attributes as indented JSON.
type PrettyHandler struct {
	opts  PrettyHandlerOptions
	attrs []slog.Attr
	group string

	mu  *sync.Mutex
	out io.Writer
}

func SetupPrettySlog() *slog.Logger {
	return slog.New(NewPrettyHandler(os.Stdout, PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}))
}

func NewPrettyHandler(out io.Writer, opts PrettyHandlerOptions) *PrettyHandler {
	if opts.SlogOpts == nil {
		opts.SlogOpts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{opts: opts, mu: &sync.Mutex{}, out: out}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.SlogOpts.Level != nil {
		minLevel = h.opts.SlogOpts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		addAttr(fields, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if h.group != "" {
			a = slog.Group(h.group, a)
		}
		addAttr(fields, a)
		return true
	})

	var attrs []byte
	if len(fields) > 0 {
		var err error
		attrs, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	line := fmt.Sprintf("%s %s %s %s\n",
		h.paint(colorGray, r.Time.Format("[15:04:05.000]")),
		h.level(r.Level),
		r.Message,
		h.paint(colorGray, string(attrs)),
	)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	return &next
}

func (h *PrettyHandler) level(l slog.Level) string {
	s := l.String() + ":"
	switch {
	case l >= slog.LevelError:
		return h.paint(colorRed, s)
	case l >= slog.LevelWarn:
		return h.paint(colorYellow, s)
	case l >= slog.LevelInfo:
		return h.paint(colorBlue, s)
	default:
		return h.paint(colorMagenta, s)
	}
}

func (h *PrettyHandler) paint(color, s string) string {
	if h.opts.NoColor || s == "" {
		return s
	}
	return color + s + colorReset
}

func addAttr(fields map[string]any, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := make(map[string]any)
		for _, ga := range v.Group() {
			addAttr(sub, ga)
		}
		fields[a.Key] = sub
		return
	}
	if err, ok := v.Any().(error); ok {
		fields[a.Key] = err.Error()
		return
	}
	fields[a.Key] = v.Any()
}
