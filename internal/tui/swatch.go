package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/Vazpera/vividry/internal/color"
	"github.com/Vazpera/vividry/internal/tui/terminal"
	"github.com/Vazpera/vividry/internal/types"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Swatch writes colors as text on a background of that color.
type Swatch struct {
	out        io.Writer
	renderer   *lipgloss.Renderer
	foreground types.Foreground
	padding    int
	plain      bool
}

// SwatchOptions configures a Swatch.
type SwatchOptions struct {
	Foreground types.Foreground // text color; empty means black
	Padding    int              // spaces on each side of the label
}

// NewSwatch returns a Swatch writing to w. The color depth follows the
// detected terminal; in plain mode labels are written unstyled.
func NewSwatch(w io.Writer, opts SwatchOptions) *Swatch {
	return NewSwatchWithProfile(w, terminal.Detect().Caps.Profile(), IsPlainMode(), opts)
}

// NewSwatchWithProfile is NewSwatch with an explicit color profile.
func NewSwatchWithProfile(w io.Writer, profile termenv.Profile, plain bool, opts SwatchOptions) *Swatch {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	fg := opts.Foreground
	if fg == "" {
		fg = types.ForegroundBlack
	}
	return &Swatch{
		out:        w,
		renderer:   r,
		foreground: fg,
		padding:    max(opts.Padding, 0),
		plain:      plain || profile == termenv.Ascii,
	}
}

// Render returns label drawn on c.
func (s *Swatch) Render(c color.Color, label string) string {
	if s.plain {
		return label
	}
	bg := toColorful(c)
	style := s.renderer.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(s.textColor(bg).Hex()))
	if s.padding > 0 {
		label = strings.Repeat(" ", s.padding) + label + strings.Repeat(" ", s.padding)
	}
	return style.Render(label)
}

// Println writes one rendered swatch line.
func (s *Swatch) Println(c color.Color, label string) error {
	_, err := fmt.Fprintln(s.out, s.Render(c, label))
	return err
}

func (s *Swatch) textColor(bg colorful.Color) colorful.Color {
	switch s.foreground {
	case types.ForegroundWhite:
		return white
	case types.ForegroundAuto:
		return ContrastText(bg)
	default:
		return black
	}
}

// ContrastText picks black or white, whichever has the higher WCAG
// contrast ratio against bg.
func ContrastText(bg colorful.Color) colorful.Color {
	l := relativeLuminance(bg)
	if (l+0.05)/0.05 >= 1.05/(l+0.05) {
		return black
	}
	return white
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// toColorful converts c for rendering; out-of-range channels are clamped.
func toColorful(c color.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped()
}

// clampedHex is the six-digit hex of c with channels clamped to 0-255.
func clampedHex(c color.Color) string {
	return strings.TrimPrefix(toColorful(c).Hex(), "#")
}
