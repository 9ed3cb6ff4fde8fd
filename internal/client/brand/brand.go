// Package brand holds the WellbeingHub colour palette used to theme the
// terminal client.
//
// The palette is applied once at start-up with Apply. Colours that are not
// valid "#rrggbb" values fall back to their defaults without an error.
package brand

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

const (
	DefaultPrimary = "#00326a"
	DefaultAccent1 = "#009aa8"
	DefaultAccent2 = "#009859"
	DefaultAccent3 = "#009c93"
	DefaultLink    = "#4a90e2"
)

// Palette is the set of brand colours. Env tags are read by the config
// loader.
type Palette struct {
	Primary string `env:"BRAND_PRIMARY, overwrite" json:"primary"`
	Accent1 string `env:"BRAND_ACCENT_1, overwrite" json:"accent_1"`
	Accent2 string `env:"BRAND_ACCENT_2, overwrite" json:"accent_2"`
	Accent3 string `env:"BRAND_ACCENT_3, overwrite" json:"accent_3"`
	Link    string `env:"BRAND_LINK, overwrite" json:"link"`
}

// Defaults returns the stock palette.
func Defaults() Palette {
	return Palette{
		Primary: DefaultPrimary,
		Accent1: DefaultAccent1,
		Accent2: DefaultAccent2,
		Accent3: DefaultAccent3,
		Link:    DefaultLink,
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Valid reports whether c is a "#rrggbb" colour.
func Valid(c string) bool {
	return hexColor.MatchString(c)
}

// Normalize replaces every invalid colour in p with its default.
func (p Palette) Normalize() Palette {
	d := Defaults()
	pick := func(v, def string) string {
		if Valid(v) {
			return v
		}
		return def
	}
	return Palette{
		Primary: pick(p.Primary, d.Primary),
		Accent1: pick(p.Accent1, d.Accent1),
		Accent2: pick(p.Accent2, d.Accent2),
		Accent3: pick(p.Accent3, d.Accent3),
		Link:    pick(p.Link, d.Link),
	}
}

var (
	applyOnce sync.Once
	mu        sync.RWMutex
	current   = Defaults()
	colorOn   = true
)

// Apply installs p (normalized) as the process palette. Only the first call
// has an effect. color=false makes Paint return text unchanged.
func Apply(p Palette, color bool) {
	applyOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		current = p.Normalize()
		colorOn = color
	})
}

// Current returns the palette in effect.
func Current() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Paint wraps s in a 24-bit ANSI foreground colour escape.
func Paint(color, s string) string {
	mu.RLock()
	on := colorOn
	mu.RUnlock()
	if !on || !Valid(color) {
		return s
	}
	r, _ := strconv.ParseUint(color[1:3], 16, 8)
	g, _ := strconv.ParseUint(color[3:5], 16, 8)
	b, _ := strconv.ParseUint(color[5:7], 16, 8)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
