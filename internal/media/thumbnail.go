package media

import (
	"bytes"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	ThumbnailMaxWidth  = 300
	ThumbnailMaxHeight = 300

	thumbnailJPEGQuality = 85
)

// Thumbnail re-encodes image data as a JPEG that fits within
// maxW x maxH, preserving aspect ratio. Alpha and palette images are
// flattened onto a white canvas first, since JPEG has no transparency.
func Thumbnail(data []byte, maxW, maxH int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat := imaging.OverlayCenter(canvas, img, 1.0)

	thumb := imaging.Fit(flat, maxW, maxH, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbnailJPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
