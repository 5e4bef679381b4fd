package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage replaces DefaultLanguage for lookups with an empty
// language code. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithoutKeyFallback makes T return "" for missing translations instead of
// the key.
func WithoutKeyFallback() Option {
	return func(t *Translator) { t.fallbackToKey = false }
}

// WithLogger sets the logger for load events.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.logger = log
		}
	}
}

// WithMissingLog reports every missing translation to log at warn level.
// A nil log reuses the translator's logger.
func WithMissingLog(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.logger = log
		}
		t.logMissing = true
	}
}
