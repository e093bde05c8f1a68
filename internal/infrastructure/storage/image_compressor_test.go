package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG builds a PNG of the given size filled with deterministic noise,
// which compresses poorly and so exercises the quality descent.
func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestCompressProducesBoundedJPEG(t *testing.T) {
	p := NewImageCompressor()
	src := noisyPNG(t, 2400, 1200)

	out := p.Compress(src)
	require.NotEmpty(t, out)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	// Fit preserves aspect ratio inside 1600x1600.
	assert.LessOrEqual(t, decoded.Bounds().Dx(), p.MaxWidth)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), p.MaxHeight)
	assert.Equal(t, 1600, decoded.Bounds().Dx())
	assert.Equal(t, 800, decoded.Bounds().Dy())
}

func TestCompressNeverUpscales(t *testing.T) {
	p := NewImageCompressor()
	src := noisyPNG(t, 320, 200)

	out := p.Compress(src)
	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestCompressIsDeterministic(t *testing.T) {
	p := NewImageCompressor()
	src := noisyPNG(t, 800, 600)

	first := p.Compress(src)
	second := p.Compress(src)
	assert.Equal(t, first, second)
}

func TestCompressPassesThroughUndecodableInput(t *testing.T) {
	p := NewImageCompressor()
	garbage := []byte("definitely not an image")

	out := p.Compress(garbage)
	assert.Equal(t, garbage, out)
}

func TestCompressAcceptsFloorQualityResult(t *testing.T) {
	// Tiny target forces the descent to the floor; the smallest encoding
	// must still come back rather than an error or nil.
	p := NewImageCompressor()
	p.TargetSize = 10
	src := noisyPNG(t, 400, 400)

	out := p.Compress(src)
	require.NotEmpty(t, out)
	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Greater(t, len(out), p.TargetSize)
}
