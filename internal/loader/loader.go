// Package loader fetches and decodes source images for the mask editor.
//
// A source reference may be a data URL, an http(s) URL, or a local file
// path. Decoding supports PNG, JPEG, GIF, WebP, and BMP.
package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	// Register decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load fetches src and decodes it into an image. The context governs any
// network round-trip; there is no additional timeout. A nil client falls
// back to http.DefaultClient.
func Load(ctx context.Context, client *http.Client, src string) (image.Image, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURL(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return fetch(ctx, client, src)
	default:
		return loadFile(src)
	}
}

// decodeDataURL decodes a base64 data URL such as
// "data:image/png;base64,iVBOR…".
func decodeDataURL(src string) (image.Image, error) {
	comma := strings.IndexByte(src, ',')
	if comma < 0 {
		return nil, fmt.Errorf("loader: malformed data url")
	}
	meta, payload := src[len("data:"):comma], src[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("loader: data url is not base64 encoded")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("loader: decode data url payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("loader: decode data url image: %w", err)
	}
	return img, nil
}

// fetch retrieves a remote image over HTTP.
func fetch(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("loader: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loader: fetch %s: unexpected status %s", url, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("loader: decode %s: %w", url, err)
	}
	return img, nil
}

// loadFile decodes an image from the local filesystem.
func loadFile(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loader: decode %s: %w", path, err)
	}
	return img, nil
}
