package qrcode

import (
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// MaxScale caps the pixel size of a single QR module.
const MaxScale = 64

// Quality is the error recovery level of the generated code.
type Quality string

const (
	QualityLow     Quality = "low"
	QualityMedium  Quality = "medium"
	QualityHigh    Quality = "high"
	QualityHighest Quality = "highest"
)

// ParseQuality accepts the Quality names case-insensitively. An empty name
// selects QualityMedium.
func ParseQuality(name string) (Quality, error) {
	switch q := Quality(strings.ToLower(strings.TrimSpace(name))); q {
	case "":
		return QualityMedium, nil
	case QualityLow, QualityMedium, QualityHigh, QualityHighest:
		return q, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuality, name)
	}
}

func (q Quality) level() skipqrcode.RecoveryLevel {
	switch q {
	case QualityLow:
		return skipqrcode.Low
	case QualityHigh:
		return skipqrcode.High
	case QualityHighest:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}

// Generate encodes content as a PNG image in which every QR module is
// scale x scale pixels, so the image width grows linearly with scale.
func Generate(content string, scale int, quality Quality) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}

	// A negative size asks the encoder for scale pixels per module.
	png, err := skipqrcode.Encode(content, quality.level(), -scale)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}
