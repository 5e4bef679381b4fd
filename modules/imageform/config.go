package imageform

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldbind/pkg/config"
	"github.com/dmitrymomot/fieldbind/pkg/qrcode"
)

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "IMAGEFORM_"

// Config is read from IMAGEFORM_* environment variables.
type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"text"`
	Lang             string `env:"LANG" envDefault:"en"`
	TranslationsFile string `env:"TRANSLATIONS_FILE"`
	// OutputDir enables rendering when set.
	OutputDir   string `env:"OUTPUT_DIR"`
	Quality     string `env:"QR_QUALITY" envDefault:"medium"`
	SizeRule    string `env:"SIZE_RULE" envDefault:"value <= 64"`
	Interactive bool   `env:"INTERACTIVE" envDefault:"false"`
	Strict      bool   `env:"STRICT" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.LoadWithPrefix(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Language parses Lang as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %v", ErrInvalidSetting, c.Lang, err)
	}
	return tag, nil
}

// FromConfig builds a form with translations, renderer and validation rules
// as configured. notify receives the form announcements.
func FromConfig(ctx context.Context, cfg Config, log *slog.Logger, notify func(string)) (*Form, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	tr, err := NewTranslator(ctx, cfg.TranslationsFile, log)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLogger(log),
		WithNotifier(notify),
		WithTranslator(tr),
		WithLanguage(tag),
		WithSizeRule(cfg.SizeRule),
		WithStrictResolution(cfg.Strict),
	}

	if cfg.OutputDir != "" {
		quality, err := qrcode.ParseQuality(cfg.Quality)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
		}
		r, err := qrcode.NewRenderer(cfg.OutputDir, qrcode.WithQuality(quality), qrcode.WithLogger(log))
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRenderer(r))
	}

	return New(opts...)
}
