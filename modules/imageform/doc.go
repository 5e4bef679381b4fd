// Package imageform is a small form that edits the text and size of a
// square image.
//
// The size field is bound explicitly: it must not be empty, must parse as an
// integer in the configured language and must be positive. The text field is
// bound by name. After every change the form announces either
//
//	Form contains validation errors, no image will be drawn
//
// or
//
//	I will draw image with "Lorem ipsum" text and width 2
//
// and, when a Renderer is configured, draws the image as a QR code.
//
// Edits come from a Driver: ScriptDriver reads "field=value" lines,
// PromptDriver asks interactively.
package imageform
