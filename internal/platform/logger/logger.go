package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// StdLogger escribe una línea por entrada (text o json) en el writer configurado.
// Los valores error se serializan con su mensaje.
type StdLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	now    func() time.Time
	level  Level
	format Format
	base   map[string]any
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Opcional: destino de salida. Si es nil, os.Stdout.
	Out io.Writer
	// Opcional: reloj para el campo ts (tests).
	Now func() time.Time
}

func New(opts Options) Logger {
	l := &StdLogger{
		mu:     &sync.Mutex{},
		out:    opts.Out,
		now:    opts.Now,
		level:  opts.Level,
		format: opts.Format,
		base:   map[string]any{},
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.format == "" {
		l.format = FormatText
	}
	if app := strings.TrimSpace(opts.App); app != "" {
		l.base["app"] = app
	}
	return l
}

// NewFromStrings crea logger a partir de los valores crudos de config
// (LOG_LEVEL, LOG_FORMAT, APP_NAME). Valores desconocidos caen a info/text.
func NewFromStrings(level, format, app string) Logger {
	return New(Options{
		Level:  ParseLevel(level),
		Format: ParseFormat(format),
		App:    app,
	})
}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	cp := *l
	cp.base = merge(merge(map[string]any{}, l.base), fields)
	return &cp
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	ts := l.now().UTC().Format(time.RFC3339Nano)
	extra := merge(merge(map[string]any{}, l.base), fields)

	var line string
	switch l.format {
	case FormatJSON:
		entry := merge(map[string]any{"ts": ts, "level": lvl.String(), "msg": msg}, extra)
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"ts": ts, "level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	default:
		line = formatText(ts, lvl, msg, extra)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line+"\n")
}

// merge copia src en dst (keys en blanco se descartan; error => mensaje).
func merge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok && err != nil {
			v = err.Error()
		}
		dst[k] = v
	}
	return dst
}

// formatText: ts level msg y después los campos ordenados por key.
func formatText(ts string, lvl Level, msg string, fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "ts=%s level=%s msg=%s", ts, lvl, quote(msg))
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, quote(fmt.Sprint(fields[k])))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
