package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImageDataURI parses a data:image/...;base64 payload and decodes the
// raster inside it, returning the detected format. The registered decoders
// cover the formats signature pads are known to emit.
func DecodeImageDataURI(raw string) (string, error) {
	const prefix = "data:"

	if !strings.HasPrefix(raw, prefix) {
		return "", fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(raw[len(prefix):], ",")
	if !ok {
		return "", fmt.Errorf("data URI has no payload")
	}

	if !strings.HasPrefix(meta, "image/") {
		return "", fmt.Errorf("data URI is not an image")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", fmt.Errorf("data URI payload is not base64 encoded")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode base64 payload: %w", err)
	}

	_, format, err := image.Decode(bytes.NewReader(decoded))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	return format, nil
}
