package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocalizedInt formats integers with the digit shapes and grouping
// separators of tag ("1,234" for English, "1.234" for German) and accepts the
// same notation, with or without separators, on input.
func LocalizedInt(tag language.Tag, msg string) Converter[string, int] {
	nf := newNumberFormat(tag)
	return New(
		func(s string) (int, error) {
			normalized := nf.normalize(strings.TrimSpace(s))
			n, err := strconv.ParseInt(normalized, 10, strconv.IntSize)
			if err != nil {
				return 0, fmt.Errorf("invalid %s int value %q", tag, s)
			}
			return int(n), nil
		},
		func(n int) string {
			return nf.printer.Sprintf("%d", n)
		},
		defaultMessage(msg, "must be an integer"),
	).WithTranslationKey("validation.integer")
}

type numberFormat struct {
	printer *message.Printer
	group   string
	minus   string
	zero    rune
}

func newNumberFormat(tag language.Tag) numberFormat {
	p := message.NewPrinter(tag)

	zeroStr := p.Sprintf("%d", 0)
	zero, _ := utf8.DecodeRuneInString(zeroStr)

	one := p.Sprintf("%d", 1)
	// Some locales skip grouping for four-digit numbers, so probe with a million.
	rest := strings.TrimPrefix(p.Sprintf("%d", 1000000), one)
	group := ""
	if idx := strings.Index(rest, zeroStr); idx > 0 {
		group = rest[:idx]
	}

	minus := strings.TrimSuffix(p.Sprintf("%d", -1), one)

	return numberFormat{printer: p, group: group, minus: minus, zero: zero}
}

// normalize rewrites a localized integer into strconv syntax.
func (nf numberFormat) normalize(s string) string {
	if nf.minus != "" && nf.minus != "-" && strings.HasPrefix(s, nf.minus) {
		s = "-" + strings.TrimPrefix(s, nf.minus)
	}
	if nf.group != "" {
		s = strings.ReplaceAll(s, nf.group, "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if nf.zero != '0' && r >= nf.zero && r <= nf.zero+9 {
			b.WriteRune('0' + (r - nf.zero))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
