package imageform

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/fieldbind/pkg/i18n"
)

//go:embed translations/*.yaml
var translations embed.FS

// NewTranslator loads the bundled translations, or the file at path when it
// is not empty.
func NewTranslator(ctx context.Context, path string, log *slog.Logger) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter = i18n.NewFSAdapter(translations, "translations")
	if path != "" {
		adapter = i18n.NewFileAdapter(nil, path)
	}
	return i18n.NewTranslator(ctx, adapter, i18n.WithMissingLog(log))
}
