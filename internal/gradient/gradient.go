// Package gradient generates piecewise-linear color gradients.
//
// Samples are spread evenly across the control colors, endpoints included,
// and blended channel by channel in RGB space.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/Vazpera/vividry/internal/color"
)

var (
	// ErrNoColors is returned when no control colors are given.
	ErrNoColors = errors.New("gradient needs at least one color")
	// ErrTooFewSamples is returned when fewer than two samples are requested.
	ErrTooFewSamples = errors.New("gradient needs at least two samples")
)

// Validate checks the preconditions shared by Generate and Each.
func Validate(colors []color.Color, number int) error {
	if len(colors) == 0 {
		return ErrNoColors
	}
	if number < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewSamples, number)
	}
	return nil
}

// Generate returns number colors interpolated across colors.
//
// A single control color yields number copies of that color.
func Generate(colors []color.Color, number int) ([]color.Color, error) {
	if err := Validate(colors, number); err != nil {
		return nil, err
	}
	out := make([]color.Color, 0, number)
	err := Each(colors, number, func(_ int, c color.Color) error {
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Each calls fn for every sample in order. It stops at the first error
// returned by fn and returns it.
func Each(colors []color.Color, number int, fn func(i int, c color.Color) error) error {
	if err := Validate(colors, number); err != nil {
		return err
	}
	for i := 0; i < number; i++ {
		if err := fn(i, Sample(colors, number, i)); err != nil {
			return err
		}
	}
	return nil
}

// Sample computes the i-th of number samples without validating arguments.
// Callers must ensure len(colors) > 0 and number >= 2.
func Sample(colors []color.Color, number, i int) color.Color {
	last := len(colors) - 1
	bias := float64(i) / float64(number-1) * float64(last)
	lo := math.Floor(bias)
	i0 := int(lo)
	// Guard against float error pushing the final sample past the end.
	if i0 > last {
		i0 = last
	}
	i1 := min(max(i0+1, 0), last)
	return colors[i0].Lerp(colors[i1], bias-lo)
}
