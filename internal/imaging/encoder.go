package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// jpegQuality is the fixed output quality for watermarked images.
const jpegQuality = 90

// ErrEncode indicates the composited image could not be serialized.
var ErrEncode = errors.New("image encode failed")

// EncodeJPEG serializes an image to JPEG at quality 90.
//
// Alpha is discarded by the format; callers hand in the already-flattened
// compositing result. The encoder emits baseline JPEG without an
// entropy-optimization pass.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.JPEGEncoder(jpegQuality)(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
