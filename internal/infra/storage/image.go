package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxImageWidth = 1600
	webpQuality   = 80
)

var ErrNotImage = errors.New("file is not a supported image")

// OptimizeImage decodes a JPEG, PNG, GIF or WebP upload, shrinks it to at
// most MaxImageWidth pixels wide and re-encodes it as WebP.
func OptimizeImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		src, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ErrNotImage
		}
	}

	img := resize(src, MaxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
