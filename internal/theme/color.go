package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rgb holds one color channel-wise in [0,255].
type rgb struct {
	r, g, b uint8
}

// hsl holds hue in degrees [0,360) and saturation/lightness in [0,1].
type hsl struct {
	h, s, l float64
}

// parseHex parses "#rgb" or "#rrggbb" (leading '#' optional, case
// insensitive). It is the only place invalid color input is detected.
func parseHex(value string) (rgb, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	switch len(s) {
	case 3:
		// Expand shorthand: "f80" -> "ff8800"
		s = strings.Repeat(string(s[0]), 2) + strings.Repeat(string(s[1]), 2) + strings.Repeat(string(s[2]), 2)
	case 6:
	default:
		return rgb{}, fmt.Errorf("invalid hex color %q", value)
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("invalid hex color %q", value)
	}

	return rgb{
		r: uint8(n >> 16),
		g: uint8(n >> 8),
		b: uint8(n),
	}, nil
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c rgb) toHSL() hsl {
	r := float64(c.r) / 255
	g := float64(c.g) / 255
	b := float64(c.b) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return hsl{h: 0, s: 0, l: l} // achromatic
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return hsl{h: h * 60, s: s, l: l}
}

func (c hsl) toRGB() rgb {
	if c.s == 0 {
		v := uint8(math.Round(c.l * 255))
		return rgb{r: v, g: v, b: v}
	}

	var q float64
	if c.l < 0.5 {
		q = c.l * (1 + c.s)
	} else {
		q = c.l + c.s - c.l*c.s
	}
	p := 2*c.l - q
	h := c.h / 360

	return rgb{
		r: uint8(math.Round(hueToChannel(p, q, h+1.0/3) * 255)),
		g: uint8(math.Round(hueToChannel(p, q, h) * 255)),
		b: uint8(math.Round(hueToChannel(p, q, h-1.0/3) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// shiftLightness adjusts HSL lightness by delta, clamped so the result
// stays usable as a solid fill or text color.
func shiftLightness(c rgb, delta float64) rgb {
	h := c.toHSL()
	h.l = clamp(h.l+delta, 0.05, 0.95)
	return h.toRGB()
}

// complement rotates the hue by 180 degrees, keeping saturation and
// lightness. Used to synthesize a secondary when only one brand color is
// supplied.
func complement(c rgb) rgb {
	h := c.toHSL()
	h.h = math.Mod(h.h+180, 360)
	return h.toRGB()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
