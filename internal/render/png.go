package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// DefaultQuality matches the quality the card has always been exported at.
const DefaultQuality = 95

// compressionLevel maps a 1-100 quality onto PNG compression. PNG is
// lossless, so quality only trades encode time for file size.
func compressionLevel(quality int) png.CompressionLevel {
	switch {
	case quality >= 90:
		return png.BestCompression
	case quality >= 50:
		return png.DefaultCompression
	case quality > 0:
		return png.BestSpeed
	default:
		return png.NoCompression
	}
}

// EncodePNG writes img as PNG and returns the number of bytes written.
// An opaque *image.RGBA is written as RGB.
func EncodePNG(w io.Writer, img image.Image, quality int) (int64, error) {
	cw := &countingWriter{w: w}
	enc := &png.Encoder{CompressionLevel: compressionLevel(quality)}
	err := enc.Encode(cw, img)
	return cw.n, err
}

// SavePNG creates or truncates path and encodes img into it.
// It returns the number of bytes written.
func SavePNG(path string, img image.Image, quality int) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	n, err := EncodePNG(f, img, quality)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", path, err)
	}
	return n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
