package storage

import (
	"bytes"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/unignoramus11/lumen/pkg/logger"
)

// ImageCompressor turns an uploaded photo of any decodable format into a
// JPEG bounded in both dimensions and (best effort) in byte size. The search
// is a fixed quality descent, so the output is deterministic for a given
// input.
type ImageCompressor struct {
	MaxWidth   int
	MaxHeight  int
	TargetSize int // bytes
	MaxQuality int
	MinQuality int
	Step       int
}

func NewImageCompressor() *ImageCompressor {
	return &ImageCompressor{
		MaxWidth:   1600,
		MaxHeight:  1600,
		TargetSize: 500 * 1024,
		MaxQuality: 85,
		MinQuality: 40,
		Step:       10,
	}
}

// Compress resizes into the dimension bounds (never upscaling, aspect
// preserved) and encodes JPEG, lowering quality stepwise until the result
// fits TargetSize or the quality floor is hit, in which case the smallest
// achieved encoding is returned regardless of size.
//
// On decode or encode failure the original bytes are passed through
// unchanged rather than failing the publish. That trades the size bound for
// availability of the edition; see DESIGN.md.
func (p *ImageCompressor) Compress(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn("image compression skipped: cannot decode upload", err)
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.MaxWidth || bounds.Dy() > p.MaxHeight {
		img = imaging.Fit(img, p.MaxWidth, p.MaxHeight, imaging.Lanczos)
	}

	var smallest []byte
	for quality := p.MaxQuality; quality >= p.MinQuality; quality -= p.Step {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			logger.Warn("image compression skipped: cannot encode jpeg", err)
			return data
		}
		encoded := buf.Bytes()
		if len(encoded) <= p.TargetSize {
			return encoded
		}
		if smallest == nil || len(encoded) < len(smallest) {
			smallest = encoded
		}
	}

	// Quality floor reached without meeting the target; accept the smallest.
	return smallest
}
