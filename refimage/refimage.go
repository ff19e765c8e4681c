// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package refimage shrinks reference photos for custom words so they fit
// in a key-value store as data URLs.
package refimage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/tracekit"
)

// Options controls compression.
type Options struct {
	// MaxSide bounds the longer side of the output, in pixels.
	MaxSide int
	// Quality is the JPEG quality, 1-100.
	Quality int
	// Background fills transparent areas, which JPEG cannot store.
	Background color.Color
}

// DefaultOptions returns a 1024 pixel bound at quality 60 on white.
func DefaultOptions() Options {
	return Options{MaxSide: 1024, Quality: 60, Background: color.White}
}

// Compress decodes a PNG, JPEG, GIF or WebP image, scales it so neither
// side exceeds MaxSide and re-encodes it as JPEG. Images already within
// bounds are re-encoded at their own size.
func Compress(ctx context.Context, r io.Reader, opts Options) ([]byte, error) {
	if opts.MaxSide <= 0 {
		opts.MaxSide = DefaultOptions().MaxSide
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultOptions().Quality
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("refimage: decode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sb := src.Bounds()
	w, h := fit(sb.Dx(), sb.Dy(), opts.MaxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("refimage: encode: %w", err)
	}
	tracekit.Logger().Debug("refimage: compressed",
		"format", format, "src_width", sb.Dx(), "src_height", sb.Dy(),
		"width", w, "height", h, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// fit scales w x h down to fit in limit x limit, keeping the aspect ratio.
func fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// Result is the outcome of CompressAsync.
type Result struct {
	JPEG []byte
	Err  error
}

// CompressAsync runs Compress on its own goroutine, so a UI thread can keep
// capturing strokes. The channel receives exactly one Result.
func CompressAsync(ctx context.Context, r io.Reader, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		data, err := Compress(ctx, r, opts)
		ch <- Result{JPEG: data, Err: err}
	}()
	return ch
}

// DataURL wraps JPEG bytes as a data URL.
func DataURL(jpegData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
}
