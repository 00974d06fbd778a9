package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Save copies an icon image into dir and returns the written path. Remote
// sources are downloaded. An existing file is never overwritten; a numbered
// name is chosen instead.
func Save(ctx context.Context, src, dir string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("save icon: empty source")
	}

	r, name, err := open(ctx, src)
	if err != nil {
		return "", fmt.Errorf("save icon: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save icon: %w", err)
	}
	dst, f, err := createUnique(dir, name)
	if err != nil {
		return "", fmt.Errorf("save icon: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("save icon: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("save icon: %w", err)
	}
	return dst, nil
}

func open(ctx context.Context, src string) (io.ReadCloser, string, error) {
	if !IsRemote(src) {
		f, err := os.Open(src)
		if err != nil {
			return nil, "", err
		}
		return f, filepath.Base(src), nil
	}

	u, err := url.Parse(src)
	if err != nil {
		return nil, "", err
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = "icon"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("download failed: %s", resp.Status)
	}
	return resp.Body, name, nil
}

func createUnique(dir, name string) (string, *os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < 1000; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		p := filepath.Join(dir, candidate)
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return p, f, nil
		}
		if !os.IsExist(err) {
			return "", nil, err
		}
	}
	return "", nil, fmt.Errorf("no free file name for %s in %s", name, dir)
}
