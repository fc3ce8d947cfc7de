package image

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, solidImage(4, 3, color.RGBA{R: 255, A: 255}))

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader()

	img, err := loader.Load(context.Background(), good)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}

	for _, path := range []string{"", bad, dir, filepath.Join(dir, "missing.png")} {
		if _, err := loader.Load(context.Background(), path); err == nil {
			t.Errorf("Load(%q) expected error", path)
		}
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, solidImage(2, 2, color.White))

	if err := ValidateImagePath(good); err != nil {
		t.Errorf("ValidateImagePath(good) error = %v", err)
	}
	if err := ValidateImagePath("https://example.com/x.png"); err != nil {
		t.Errorf("ValidateImagePath(url) error = %v", err)
	}
	if err := ValidateImagePath(dir); err == nil {
		t.Error("ValidateImagePath(dir) expected error")
	}
}

func TestSmartLoaderURL(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(5, 5, color.RGBA{B: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	t.Run("private host refused by default", func(t *testing.T) {
		if _, err := NewSmartLoader().Load(context.Background(), srv.URL+"/img.png"); err == nil {
			t.Error("Load() expected error for loopback URL")
		}
	})

	t.Run("private host allowed", func(t *testing.T) {
		img, err := NewSmartLoader(WithPrivateHosts(true)).Load(context.Background(), srv.URL+"/img.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if b := img.Bounds(); b.Dx() != 5 {
			t.Errorf("width = %d, want 5", b.Dx())
		}
	})
}

func TestIsImageFile(t *testing.T) {
	for path, want := range map[string]bool{"a.PNG": true, "b.webp": true, "c.txt": false, "d": false} {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}
