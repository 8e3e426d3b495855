package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeImageDownscalesToWebP(t *testing.T) {
	out, err := OptimizeImage(pngOf(t, 3200, 800))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxImageWidth, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestOptimizeImageKeepsSmallImages(t *testing.T) {
	out, err := OptimizeImage(pngOf(t, 300, 200))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
}

func TestOptimizeImageRejectsOtherFiles(t *testing.T) {
	_, err := OptimizeImage([]byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	s := NewLocal(dir, "/uploads/")

	url, err := s.Put(context.Background(), "passeios/a.webp", "image/webp", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/passeios/a.webp", url)

	data, err := os.ReadFile(filepath.Join(dir, "passeios", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	url, err = s.Put(context.Background(), "../../etc/passwd", "text/plain", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/etc/passwd", url, "keys cannot escape the upload dir")
}

func TestNewFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.UploadDir = t.TempDir()

	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := s.(*Local)
	assert.True(t, ok)
}

func TestDefaultPublicURL(t *testing.T) {
	assert.Equal(t, "https://r2.example.com/fotos", defaultPublicURL("https://r2.example.com/", "fotos", "auto"))
	assert.Equal(t, "https://fotos.s3.sa-east-1.amazonaws.com", defaultPublicURL("", "fotos", "sa-east-1"))
}
