package converter

import (
	"fmt"
	"strconv"
	"strings"
)

// StringToInt parses base-10 integers. Surrounding whitespace is ignored;
// anything else that is not a complete integer, including the empty string,
// is a conversion failure reported with message.
func StringToInt(message string) Converter[string, int] {
	return New(
		func(s string) (int, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, strconv.IntSize)
			if err != nil {
				return 0, fmt.Errorf("invalid int value %q", s)
			}
			return int(n), nil
		},
		strconv.Itoa,
		defaultMessage(message, "must be an integer"),
	).WithTranslationKey("validation.integer")
}

// StringToInt64 is StringToInt for int64 properties.
func StringToInt64(message string) Converter[string, int64] {
	return New(
		func(s string) (int64, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid int value %q", s)
			}
			return n, nil
		},
		func(n int64) string { return strconv.FormatInt(n, 10) },
		defaultMessage(message, "must be an integer"),
	).WithTranslationKey("validation.integer")
}

// StringToFloat parses decimal numbers. Formatting uses the shortest
// representation that parses back to the same float64.
func StringToFloat(message string) Converter[string, float64] {
	return New(
		func(s string) (float64, error) {
			n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return 0, fmt.Errorf("invalid float value %q", s)
			}
			return n, nil
		},
		func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		defaultMessage(message, "must be a number"),
	).WithTranslationKey("validation.number")
}

// StringToBool accepts strconv.ParseBool syntax plus the checkbox-style
// values on/off, yes/no and the empty string (false).
func StringToBool(message string) Converter[string, bool] {
	return New(
		func(s string) (bool, error) {
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err == nil {
				return b, nil
			}
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "on", "yes":
				return true, nil
			case "off", "no", "":
				return false, nil
			}
			return false, fmt.Errorf("invalid bool value %q", s)
		},
		strconv.FormatBool,
		defaultMessage(message, "must be true or false"),
	).WithTranslationKey("validation.boolean")
}

// Trim removes surrounding whitespace on the way to the model.
func Trim() Converter[string, string] {
	return New(
		func(s string) (string, error) { return strings.TrimSpace(s), nil },
		func(s string) string { return s },
		"",
	)
}

func defaultMessage(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
