package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type manifest struct {
	Icons []Icon `toml:"icons"`
}

// Load reads a TOML manifest of [[icons]] tables. Relative image paths are
// resolved against the manifest's directory.
func Load(path string) ([]Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes manifest data. Icons without an id get one derived from
// their name.
func Parse(data []byte, baseDir string) ([]Icon, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	ids := make(map[string]int, len(m.Icons))
	for i := range m.Icons {
		ic := &m.Icons[i]
		ic.Name = strings.TrimSpace(ic.Name)
		if ic.Name == "" {
			return nil, fmt.Errorf("catalog icon %d: missing name", i)
		}
		if ic.ID == "" {
			ic.ID = slug(ic.Name)
		}
		if ic.ID == "" {
			ic.ID = fmt.Sprintf("icon-%d", i)
		}
		if prev, dup := ids[ic.ID]; dup {
			return nil, fmt.Errorf("catalog icon %d: duplicate id %q (first at %d)", i, ic.ID, prev)
		}
		ids[ic.ID] = i

		ic.SVG = resolve(baseDir, ic.SVG)
		ic.PNG = resolve(baseDir, ic.PNG)
		for j, src := range ic.Images {
			ic.Images[j] = resolve(baseDir, src)
		}
	}
	return m.Icons, nil
}

func resolve(baseDir, src string) string {
	if src == "" || IsRemote(src) || filepath.IsAbs(src) || baseDir == "" {
		return src
	}
	return filepath.Join(baseDir, src)
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
