// Package catalog holds the curated wallpaper table served by the API.
//
// The table is static and validated once at init; after that it is read-only,
// so handlers may list it concurrently without locking.
package catalog

import (
	"fmt"
	"net/url"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Wallpaper is one catalog entry. Accent is a curated hex color for the
// image; Tone classifies it as "light" or "dark" so clients can pick a
// contrasting overlay color.
type Wallpaper struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Src    string `json:"src"`
	Accent string `json:"accent"`
	Tone   string `json:"tone"`
}

// wallpapers is the curated 4K-friendly set (Unsplash sources).
var wallpapers = []Wallpaper{
	{
		ID:     "w1",
		Title:  "Peaks at Dawn",
		Src:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=3840&q=80&auto=format&fit=crop",
		Accent: "#f2a65a",
	},
	{
		ID:     "w2",
		Title:  "Forest Mist",
		Src:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=3840&q=80&auto=format&fit=crop",
		Accent: "#3e6b48",
	},
	{
		ID:     "w3",
		Title:  "Desert Dunes",
		Src:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=3840&q=80&auto=format&fit=crop",
		Accent: "#d9a066",
	},
	{
		ID:     "w4",
		Title:  "Starry Night",
		Src:    "https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?w=3840&q=80&auto=format&fit=crop",
		Accent: "#1b2a49",
	},
	{
		ID:     "w5",
		Title:  "Aurora Sky",
		Src:    "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?w=3840&q=80&auto=format&fit=crop",
		Accent: "#3ddc97",
	},
}

func init() {
	seen := make(map[string]bool, len(wallpapers))
	for i := range wallpapers {
		w := &wallpapers[i]
		if seen[w.ID] {
			panic(fmt.Sprintf("catalog: duplicate wallpaper id %q", w.ID))
		}
		seen[w.ID] = true

		u, err := url.Parse(w.Src)
		if err != nil || u.Scheme != "https" {
			panic(fmt.Sprintf("catalog: wallpaper %q has invalid source %q", w.ID, w.Src))
		}

		accent, err := colorful.Hex(w.Accent)
		if err != nil {
			panic(fmt.Sprintf("catalog: wallpaper %q has invalid accent %q", w.ID, w.Accent))
		}
		w.Tone = toneOf(accent)
	}
}

// toneOf classifies an accent color by its HSL lightness.
func toneOf(c colorful.Color) string {
	_, _, l := c.Hsl()
	if l < 0.5 {
		return "dark"
	}
	return "light"
}

// Items returns a copy of the catalog listing. Callers own the returned
// slice and may not reach shared state through it.
func Items() []Wallpaper {
	out := make([]Wallpaper, len(wallpapers))
	copy(out, wallpapers)
	return out
}
