// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package refimage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, limit  int
		wantW, wantH int
	}{
		{800, 600, 1024, 800, 600},
		{2048, 1024, 1024, 1024, 512},
		{1000, 3000, 1024, 341, 1024},
		{1024, 1024, 1024, 1024, 1024},
		{5000, 1, 1024, 1024, 1},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.limit)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d, %d) = %d, %d, want %d, %d", tt.w, tt.h, tt.limit, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCompress(t *testing.T) {
	src := encodePNG(t, 2000, 500, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	out, err := Compress(context.Background(), bytes.NewReader(src), DefaultOptions())
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not JPEG: %v", err)
	}
	if got, want := img.Bounds().Size(), image.Pt(1024, 256); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
	r, g, b, _ := img.At(512, 128).RGBA()
	if r>>8 < 170 || g>>8 > 80 || b>>8 > 80 {
		t.Errorf("center color = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestCompressTransparentOnWhite(t *testing.T) {
	src := encodePNG(t, 64, 64, color.NRGBA{})
	out, err := Compress(context.Background(), bytes.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("width = %d, want 64 (no upscaling)", img.Bounds().Dx())
	}
	if r, g, b, _ := img.At(32, 32).RGBA(); r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("transparent pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
}

func TestCompressErrors(t *testing.T) {
	if _, err := Compress(context.Background(), strings.NewReader("not an image"), DefaultOptions()); err == nil {
		t.Error("Compress(garbage) error = nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := encodePNG(t, 10, 10, color.Black)
	if _, err := Compress(ctx, bytes.NewReader(src), DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("Compress(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestCompressAsync(t *testing.T) {
	src := encodePNG(t, 1500, 1500, color.White)
	res := <-CompressAsync(context.Background(), bytes.NewReader(src), DefaultOptions())
	if res.Err != nil {
		t.Fatalf("CompressAsync() error = %v", res.Err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(res.JPEG))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.Height != 1024 {
		t.Errorf("size = %dx%d, want 1024x1024", cfg.Width, cfg.Height)
	}
}

func TestDataURL(t *testing.T) {
	got := DataURL([]byte{0xFF, 0xD8, 0xFF})
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("DataURL() = %q, want %q prefix", got, prefix)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	if err != nil || !bytes.Equal(raw, []byte{0xFF, 0xD8, 0xFF}) {
		t.Errorf("DataURL() payload = %v, %v", raw, err)
	}
}
