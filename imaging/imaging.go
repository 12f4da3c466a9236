package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"

	"golang.org/x/image/draw"

	_ "image/png"
)

// MaxDimension is the maximum width or height for stored item photos.
const MaxDimension = 1280

// JPEGQuality is the compression quality for re-encoded output.
const JPEGQuality = 85

// MaxUploadBytes caps a single image upload.
const MaxUploadBytes = 10 * 1024 * 1024

// AllowedMIME lists accepted input types, checked by sniffing bytes rather
// than trusting the client's filename or headers.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Normalize validates the payload as a PNG or JPEG, downscales anything
// larger than MaxDimension and re-encodes as JPEG. Every stored image goes
// through this path so blob contents are uniform regardless of what the
// client sent.
func Normalize(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("image exceeds %d byte limit", MaxUploadBytes)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale shrinks img so neither side exceeds max, preserving aspect
// ratio. Images already within bounds pass through untouched.
func downscale(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return img
	}

	var nw, nh int
	if w > h {
		nw = max
		nh = h * max / w
	} else {
		nh = max
		nw = w * max / h
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
