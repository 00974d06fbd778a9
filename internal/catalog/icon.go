package catalog

import "strings"

// Icon is one gallery entry.
type Icon struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Category string   `toml:"category"`
	SVG      string   `toml:"svg"`
	PNG      string   `toml:"png"`
	Images   []string `toml:"images"` // extra carousel images
}

// Sources returns every image of the icon in carousel order: SVG, PNG, then
// the extra images. Duplicates are dropped.
func (ic Icon) Sources() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	add(ic.SVG)
	add(ic.PNG)
	for _, s := range ic.Images {
		add(s)
	}
	return out
}

// Thumbnail returns the source shown on the gallery card.
func (ic Icon) Thumbnail() string {
	if srcs := ic.Sources(); len(srcs) > 0 {
		return srcs[0]
	}
	return ""
}

// IsRemote reports whether src is fetched over HTTP.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
