// Package i18n loads translation files and renders messages by language and
// key.
//
// Translations are maps of language -> key -> message, where keys may be
// nested and are addressed with dots ("validation.required"). Messages use
// "%{name}" placeholders filled from name/value argument pairs.
//
// # Loading
//
// Adapters provide translations: MapAdapter from memory, FileAdapter from a
// single YAML or JSON file, FSAdapter from every supported file in a
// directory of an fs.FS (typically an embed.FS).
//
//	//go:embed translations
//	var files embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(files, "translations"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//
// # Validation messages
//
// Localizer adapts a Translator to the binder's message localizer, so
// validation failures are shown in the user's language:
//
//	b := binder.New[ImageData](binder.WithMessageLocalizer(i18n.Localizer(tr, "de")))
//
// Missing translations fall back to the validator's own message.
package i18n
