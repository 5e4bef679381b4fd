package imageform

import "errors"

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrMalformedLine  = errors.New("expected field=value")
	ErrRenderFailed   = errors.New("failed to render image")
	ErrAborted        = errors.New("input aborted")
	ErrInvalidSetting = errors.New("invalid setting")
)
