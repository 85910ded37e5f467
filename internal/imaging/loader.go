package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecode indicates the payload is not a supported image or is corrupt.
var ErrDecode = errors.New("undecodable image data")

// Decode turns raw fetched bytes into an NRGBA pixel buffer.
//
// Supported formats are JPEG, PNG, GIF and WebP. Sources without an alpha
// channel decode to fully opaque pixels. The second return value is the
// detected format name ("jpeg", "png", ...).
//
// Returns an error wrapping ErrDecode when the bytes are not a supported
// image format or the stream is truncated.
func Decode(raw []byte) (*image.NRGBA, string, error) {
	if len(raw) == 0 {
		return nil, "", fmt.Errorf("%w: empty payload", ErrDecode)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return imaging.Clone(img), format, nil
}
