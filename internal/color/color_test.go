package color

import (
	"fmt"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestFromRGB_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"black", 0, 0, 0, Color{0, 0, 0}},
		{"white", 255, 255, 255, Color{0, 0, 1}},
		{"red", 255, 0, 0, Color{0, 1, 1}},
		{"green", 0, 255, 0, Color{120, 1, 1}},
		{"blue", 0, 0, 255, Color{240, 1, 1}},
		{"magenta wraps negative hue", 255, 0, 128, Color{360 - 60*128.0/255, 1, 1}},
		{"gray", 128, 128, 128, Color{0, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGB(tt.r, tt.g, tt.b)
			if !approx(got.Hue, tt.want.Hue) || !approx(got.Saturation, tt.want.Saturation) || !approx(got.Value, tt.want.Value) {
				t.Errorf("FromRGB(%d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromRGB_TieBreakRedFirst(t *testing.T) {
	// r == g == max takes the red branch: 60 * ((g-b)/delta mod 6).
	got := FromRGB(200, 200, 100)
	if !approx(got.Hue, 60) {
		t.Errorf("hue = %v, want 60", got.Hue)
	}
	if !approx(got.Saturation, 0.5) {
		t.Errorf("saturation = %v, want 0.5", got.Saturation)
	}
	if !approx(got.Value, 200.0/255) {
		t.Errorf("value = %v, want %v", got.Value, 200.0/255)
	}
}

func TestFromRGB_NotClamped(t *testing.T) {
	got := FromRGB(510, 0, 0)
	if !approx(got.Value, 2) {
		t.Errorf("value = %v, want 2 (no clamping)", got.Value)
	}
}

func TestFromRGBf_MatchesFromRGB(t *testing.T) {
	for _, rgb := range [][3]int{{12, 34, 56}, {255, 128, 0}, {1, 2, 3}, {90, 90, 200}} {
		a := FromRGB(rgb[0], rgb[1], rgb[2])
		b := FromRGBf(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
		if a != b {
			t.Errorf("FromRGB%v = %+v, FromRGBf = %+v", rgb, a, b)
		}
	}
}

func TestFromRGB_AgreesWithColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				got := FromRGB(r, g, b)
				h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
				if math.Abs(got.Hue-h) > 1e-6 || math.Abs(got.Saturation-s) > 1e-6 || math.Abs(got.Value-v) > 1e-6 {
					t.Fatalf("FromRGB(%d, %d, %d) = %+v, colorful = (%v, %v, %v)", r, g, b, got, h, s, v)
				}
			}
		}
	}
}

func TestRGB_RoundTrip(t *testing.T) {
	step := 3
	if testing.Short() {
		step = 15
	}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				fr, fg, fb := FromRGB(r, g, b).RGB()
				if math.Abs(fr-float64(r)) > 1 || math.Abs(fg-float64(g)) > 1 || math.Abs(fb-float64(b)) > 1 {
					t.Fatalf("round trip (%d, %d, %d) = (%v, %v, %v)", r, g, b, fr, fg, fb)
				}
			}
		}
	}
}

func TestRGB_Sectors(t *testing.T) {
	tests := []struct {
		hue     float64
		r, g, b float64
	}{
		{0, 255, 0, 0},
		{60, 255, 255, 0},
		{120, 0, 255, 0},
		{180, 0, 255, 255},
		{240, 0, 0, 255},
		{300, 255, 0, 255},
		{30, 255, 127.5, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.hue), func(t *testing.T) {
			r, g, b := Color{Hue: tt.hue, Saturation: 1, Value: 1}.RGB()
			if math.Abs(r-tt.r) > 1e-6 || math.Abs(g-tt.g) > 1e-6 || math.Abs(b-tt.b) > 1e-6 {
				t.Errorf("hue %v: RGB = (%v, %v, %v), want (%v, %v, %v)", tt.hue, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{FromRGB(255, 0, 0), "ff0000"},
		{FromRGB(0, 0, 0), "000000"},
		{FromRGB(255, 255, 255), "ffffff"},
		{FromRGB(1, 2, 3), "010203"},
		{FromRGBf(127.5, 127.5, 127.5), "808080"},
	}
	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.in, got, tt.want)
		}
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRGB8_Clamps(t *testing.T) {
	r, g, b := Color{Hue: 0, Saturation: 1, Value: 2}.RGB8()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("RGB8 = (%d, %d, %d), want (255, 0, 0)", r, g, b)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := FromRGB(255, 128, 0).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestLerp(t *testing.T) {
	black := FromRGB(0, 0, 0)
	white := FromRGB(255, 255, 255)
	if got := black.Lerp(white, 0).Hex(); got != "000000" {
		t.Errorf("Lerp t=0 = %s", got)
	}
	if got := black.Lerp(white, 1).Hex(); got != "ffffff" {
		t.Errorf("Lerp t=1 = %s", got)
	}
	if got := black.Lerp(white, 0.5).Hex(); got != "808080" {
		t.Errorf("Lerp t=0.5 = %s", got)
	}
}
