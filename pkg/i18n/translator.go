package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldbind/pkg/logger"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Translator looks up messages by language and dot-separated key. It is
// safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// NewTranslator loads translations from adapter and returns a ready translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.supportedLanguages()),
	)
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the language used for empty language arguments.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(t.resolveLang(lang), key)
	return ok
}

// T translates key for lang. args are name/value pairs substituted into
// "%{name}" placeholders:
//
//	// "validation.min_length": "must be at least %{min} characters"
//	translator.T("en", "validation.min_length", "min", "3")
//
// A missing translation yields the key itself, or an empty string when
// WithoutKeyFallback is set.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lang = t.resolveLang(lang)
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", logger.Language(lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return namedSprintf(tmpl, buildParams(args))
}

func (t *Translator) resolveLang(lang string) string {
	if lang == "" {
		return t.defaultLang
	}
	return lang
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// getTranslation first tries key as a flat entry, then traverses nested
// maps using its dot-separated parts.
func getTranslation(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			current = make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// buildParams converts name/value pairs into a map. An odd trailing
// argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces "%{name}" placeholders; unknown names are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
