package i18n

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

// Localizer returns a function rendering validation errors in lang. The
// error's TranslationKey is looked up and its TranslationValues fill the
// placeholders. Errors without a translation keep their own message.
//
//	b := binder.New[ImageData](binder.WithMessageLocalizer(i18n.Localizer(tr, "de")))
func Localizer(t *Translator, lang string) func(validator.ValidationError) string {
	return func(err validator.ValidationError) string {
		if t == nil || err.TranslationKey == "" || !t.HasTranslation(lang, err.TranslationKey) {
			return err.Message
		}

		args := make([]string, 0, 2*len(err.TranslationValues))
		for _, k := range slices.Sorted(maps.Keys(err.TranslationValues)) {
			args = append(args, k, fmt.Sprint(err.TranslationValues[k]))
		}
		return t.T(lang, err.TranslationKey, args...)
	}
}
