package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10">
<rect x="0" y="0" width="20" height="10" fill="#ffcc00"/>
</svg>`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	img, err := Decode(pngBytes(t, 3, 2), "a.png", 64)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds %v", b)
	}
}

func TestDecodeSVGKeepsAspect(t *testing.T) {
	img, err := Decode([]byte(testSVG), "icon", 100)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("bounds %v, want 100x50", b)
	}
	_, _, _, a := img.At(50, 25).RGBA()
	if a == 0 {
		t.Fatal("rasterized svg is empty")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image"), "x.png", 64); err == nil {
		t.Fatal("expected an error")
	}
}

func TestIsSVG(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"ICON.SVG", "", true},
		{"icon", "  <svg></svg>", true},
		{"icon", `<?xml version="1.0"?><svg/>`, true},
		{"icon.png", "\x89PNG", false},
	}
	for _, tt := range tests {
		if got := isSVG([]byte(tt.data), tt.name); got != tt.want {
			t.Errorf("isSVG(%q, %q) = %v, want %v", tt.data, tt.name, got, tt.want)
		}
	}
}

func TestLoadDecodedImageRemoteUsesDiskCache(t *testing.T) {
	hits := 0
	body := pngBytes(t, 4, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(body)
	}))

	ic, err := NewImageCache(t.TempDir(), 64)
	if err != nil {
		t.Fatal(err)
	}
	src := srv.URL + "/kirby.png"
	if _, err := ic.LoadDecodedImage(src); err != nil {
		t.Fatalf("first load: %v", err)
	}
	srv.Close()

	if _, err := ic.LoadDecodedImage(src); err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if hits != 1 {
		t.Fatalf("server hit %d times, want 1", hits)
	}
}

func TestLoadDecodedImageLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fox.svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	ic, err := NewImageCache(filepath.Join(dir, "cache"), 40)
	if err != nil {
		t.Fatal(err)
	}
	img, err := ic.LoadDecodedImage(path)
	if err != nil {
		t.Fatalf("LoadDecodedImage: %v", err)
	}
	if img.Bounds().Dx() != 40 {
		t.Fatalf("bounds %v", img.Bounds())
	}

	if _, err := ic.LoadDecodedImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestClearDiskRefetches(t *testing.T) {
	hits := 0
	body := pngBytes(t, 4, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(body)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "images")
	ic, err := NewImageCache(dir, 64)
	if err != nil {
		t.Fatal(err)
	}
	src := srv.URL + "/ness.png"
	if _, err := ic.LoadDecodedImage(src); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := ic.ClearDisk(); err != nil {
		t.Fatalf("ClearDisk: %v", err)
	}
	entries, err := os.ReadDir(ic.CacheDir())
	if err != nil {
		t.Fatalf("cache dir gone: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("%d files left after ClearDisk", len(entries))
	}
	if _, err := ic.LoadDecodedImage(src); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if hits != 2 {
		t.Fatalf("server hit %d times, want 2", hits)
	}
}
