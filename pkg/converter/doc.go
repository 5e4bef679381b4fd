// Package converter provides two-way value converters between the text held
// by form fields and the typed properties of bound objects.
//
// A Converter[P, M] pairs a fallible forward function (presentation to model)
// with a total backward function (model to presentation) and the message
// reported when the forward direction fails. Failures surface as *Error,
// which carries that message and matches ErrConversionFailed with errors.Is.
//
// Built-in converters:
//
//   - StringToInt, StringToInt64, StringToFloat, StringToBool
//   - Trim
//   - LocalizedInt – locale-aware grouping and digits via golang.org/x/text
//   - Chain        – compose P -> N -> M
//   - ForType      – runtime-typed conversion for properties found by reflection
//
// Usage:
//
//	size := converter.StringToInt("Input value should be an integer")
//	n, err := size.ToModel("42")     // 42, nil
//	s := size.ToPresentation(7)      // "7"
package converter
