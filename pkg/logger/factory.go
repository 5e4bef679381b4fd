package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler used by New.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat accepts "json" or "text" in any case. An empty name yields
// FormatJSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", name, FormatJSON, FormatText)
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// An empty name yields info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}

// Environment names a deployment preset for WithEnvironment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

type preset struct {
	level  slog.Level
	format Format
}

var presets = map[Environment]preset{
	Development: {level: slog.LevelDebug, format: FormatText},
	Staging:     {level: slog.LevelInfo, format: FormatJSON},
	Production:  {level: slog.LevelInfo, format: FormatJSON},
}

var environmentAliases = map[string]Environment{
	"dev":   Development,
	"stage": Staging,
	"prod":  Production,
}

// Option configures New.
type Option func(*settings)

type settings struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets the output format. It panics on unknown formats so a
// misconfigured program fails at startup; use ParseFormat for user input.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(s *settings) { s.format = f }
}

func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

func WithJSONFormatter() Option {
	return WithFormat(FormatJSON)
}

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithHandlerOptions replaces the handler options, including the level set
// by WithLevel.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) {
		if opts != nil {
			s.handlerOptions = opts
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithDevelopment is WithEnvironment("development", service).
func WithDevelopment(service string) Option {
	return WithEnvironment(string(Development), service)
}

// WithEnvironment applies the level and format preset of env and tags every
// record with env and service. Unknown environments use the development
// preset. An empty service leaves the settings untouched.
func WithEnvironment(env string, service string) Option {
	return func(s *settings) {
		if service == "" {
			return
		}
		name := Environment(strings.ToLower(env))
		if alias, ok := environmentAliases[string(name)]; ok {
			name = alias
		}
		p, ok := presets[name]
		if !ok {
			name, p = Development, presets[Development]
		}

		s.level = p.level
		s.format = p.format
		s.attrs = append(s.attrs,
			slog.String("service", service),
			slog.String("env", string(name)),
		)
	}
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New returns a logger writing JSON at info level to stdout unless
// configured otherwise. Registered context extractors run on every record.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := s.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: s.level}
	}

	var h slog.Handler = slog.NewJSONHandler(s.output, handlerOpts)
	if s.format == FormatText {
		h = slog.NewTextHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	if len(s.extractors) > 0 {
		h = NewContextHandler(h, s.extractors...)
	}
	return slog.New(h)
}
