package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is the fixed edge length of a displayed sprite, in pixels.
const Size = 150

// ErrNoData reports an empty sprite payload.
var ErrNoData = errors.New("sprite payload is empty")

// Decode turns a stored sprite payload into a Size×Size image. The payload
// may be any registered raster format. The result is scaled to exactly
// Size×Size without preserving aspect ratio.
func Decode(payload []byte) (image.Image, error) {
	if len(payload) == 0 {
		return nil, ErrNoData
	}

	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite payload: %w", err)
	}

	return resize.Resize(Size, Size, img, resize.Lanczos3), nil
}
