// Package qrcode renders text as QR code PNG images.
//
// It is a thin wrapper around github.com/skip2/go-qrcode. Generate returns
// the PNG bytes with a fixed number of pixels per QR module, so a larger
// scale gives a proportionally wider image. Renderer writes each image into
// an output directory under a random UUID file name.
//
// # Usage
//
//	img, err := qrcode.Generate("Lorem ipsum", 4, qrcode.QualityMedium)
//	if err != nil {
//		// handle error
//	}
//
//	r, err := qrcode.NewRenderer("/tmp/forms", qrcode.WithQuality(qrcode.QualityHigh))
//	if err != nil {
//		// handle error
//	}
//	path, err := r.Render(ctx, "Lorem ipsum", 2)
//
// # Error Handling
//
// ErrEmptyContent and ErrInvalidScale report bad input,
// ErrorFailedToGenerateQRCode and ErrFailedToWriteImage wrap failures of the
// encoder and the file system. Compare with errors.Is.
package qrcode
