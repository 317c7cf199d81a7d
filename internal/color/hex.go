package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLength is returned when a hex color does not have 3 or 6 digits.
	ErrInvalidLength = errors.New("improper hex length")
	// ErrInvalidDigit is returned when a hex color contains a non-hex digit.
	ErrInvalidDigit = errors.New("invalid hexadecimal value")
)

// ParseError reports a digit group that is not valid hexadecimal.
type ParseError struct {
	Input string // full input as given
	Group string // offending channel digits
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q in %q", ErrInvalidDigit, e.Group, e.Input)
}

// Unwrap lets errors.Is match ErrInvalidDigit.
func (e *ParseError) Unwrap() error {
	return ErrInvalidDigit
}

// FromHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
//
// In the 3-digit form each digit is a channel value in 0-15; it is not
// widened to 0-255. Use FromHexExpanded for CSS-style shorthand.
func FromHex(s string) (Color, error) {
	r, g, b, err := parseHex(s, false)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(r, g, b), nil
}

// FromHexExpanded is FromHex with CSS shorthand semantics: each digit of the
// 3-digit form is doubled, so "f80" means "ff8800".
func FromHexExpanded(s string) (Color, error) {
	r, g, b, err := parseHex(s, true)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(r, g, b), nil
}

// MustFromHex is like FromHex but panics on error. Intended for literals.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string, expand bool) (r, g, b int, err error) {
	// Length is counted in characters, so non-ASCII input of the right
	// length fails as a bad digit rather than a bad length.
	digits := []rune(strings.TrimPrefix(s, "#"))

	var width int
	switch len(digits) {
	case 3:
		width = 1
	case 6:
		width = 2
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q has %d digits, want 3 or 6", ErrInvalidLength, s, len(digits))
	}

	var ch [3]int
	for i := range ch {
		group := string(digits[i*width : (i+1)*width])
		v, perr := strconv.ParseUint(group, 16, 8)
		if perr != nil {
			return 0, 0, 0, &ParseError{Input: s, Group: group}
		}
		if expand && width == 1 {
			v = v<<4 | v
		}
		ch[i] = int(v)
	}
	return ch[0], ch[1], ch[2], nil
}
