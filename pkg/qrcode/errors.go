package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidScale is returned for module scales outside 1..MaxScale.
	ErrInvalidScale = errors.New("scale must be between 1 and MaxScale")
	// ErrUnknownQuality is returned by ParseQuality for unrecognised names.
	ErrUnknownQuality = errors.New("unknown QR code quality")
	// ErrEmptyOutputDir is returned when a renderer has nowhere to write.
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")
	// ErrFailedToWriteImage is returned when the rendered image cannot be saved.
	ErrFailedToWriteImage = errors.New("failed to write image")
)
