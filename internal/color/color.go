// Package color implements the HSV color model used by vividry.
//
// A Color is stored as hue, saturation and value. RGB and hexadecimal forms
// are derived on demand and never cached on the value.
package color

import (
	"fmt"
	"math"
	"strings"
)

// Color is a color in the HSV model.
//
// Hue is in degrees and conventionally lies in [0, 360). Saturation and Value
// conventionally lie in [0, 1]. None of them are clamped.
type Color struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// FromRGB builds a Color from 8-bit channels. Channels outside 0-255 are
// accepted as-is.
func FromRGB(r, g, b int) Color {
	return FromRGBf(float64(r), float64(g), float64(b))
}

// FromRGBf builds a Color from channels already scaled to 0-255.
func FromRGBf(r, g, b float64) Color {
	r /= 255
	g /= 255
	b /= 255

	hi := math.Max(math.Max(r, g), b)
	lo := math.Min(math.Min(r, g), b)
	delta := hi - lo

	c := Color{Value: hi}
	if hi != 0 {
		c.Saturation = delta / hi
	}
	if delta == 0 {
		return c
	}

	// Red wins ties with green, green wins ties with blue.
	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	c.Hue = h
	return c
}

// RGB converts c back to red, green and blue channels in 0-255.
// The result is not rounded.
func (c Color) RGB() (r, g, b float64) {
	chroma := c.Value * c.Saturation
	h := c.Hue / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := c.Value - chroma

	switch {
	case 0 <= h && h < 1:
		r, g, b = chroma, x, 0
	case 1 <= h && h < 2:
		r, g, b = x, chroma, 0
	case 2 <= h && h < 3:
		r, g, b = 0, chroma, x
	case 3 <= h && h < 4:
		r, g, b = 0, x, chroma
	case 4 <= h && h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// RGB8 returns the rounded channels clamped to 0-255.
// Use it for rendering; Hex does not clamp.
func (c Color) RGB8() (r, g, b uint8) {
	fr, fg, fb := c.RGB()
	return clamp8(fr), clamp8(fg), clamp8(fb)
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex formats c as six lowercase hex digits without a prefix.
//
// Channels are rounded but not clamped: a channel that rounds outside 0-255
// produces more or fewer than two digits for that channel.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	var sb strings.Builder
	sb.Grow(6)
	for _, v := range [3]float64{r, g, b} {
		fmt.Fprintf(&sb, "%02x", int64(math.Round(v)))
	}
	return sb.String()
}

// String returns the hex form of c.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// Lerp blends c toward to in RGB space. t = 0 gives c, t = 1 gives to.
func (c Color) Lerp(to Color, t float64) Color {
	r0, g0, b0 := c.RGB()
	r1, g1, b1 := to.RGB()
	return FromRGBf(
		r0*(1-t)+r1*t,
		g0*(1-t)+g1*t,
		b0*(1-t)+b1*t,
	)
}
