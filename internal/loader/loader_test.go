package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// pngBytes encodes a blank w x h PNG.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestLoadDataURL(t *testing.T) {
	src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 12, 7))

	img, err := Load(context.Background(), nil, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("expected 12x7, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadDataURLMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no comma", "data:image/png;base64"},
		{"not base64", "data:image/png,rawpayload"},
		{"bad payload", "data:image/png;base64,!!!"},
		{"not an image", "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(context.Background(), nil, tt.src); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, pngBytes(t, 5, 9), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	img, err := Load(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 9 {
		t.Errorf("expected 5x9, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := Load(context.Background(), nil, filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadHTTP(t *testing.T) {
	payload := pngBytes(t, 33, 21)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	img, err := Load(context.Background(), srv.Client(), srv.URL+"/photo.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 33 || b.Dy() != 21 {
		t.Errorf("expected 33x21, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Load(context.Background(), srv.Client(), srv.URL+"/gone.png"); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestLoadHTTPCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, srv.Client(), srv.URL+"/slow.png"); err == nil {
		t.Error("expected an error for a canceled context")
	}
}
