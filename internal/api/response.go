package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vazpera/vividry/internal/color"
)

// HSVView is the JSON form of a color's stored HSV components.
type HSVView struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// ColorView is the JSON form of a single color.
type ColorView struct {
	Hex string     `json:"hex"`
	RGB [3]float64 `json:"rgb"`
	HSV HSVView    `json:"hsv"`
}

// ColorsResponse is returned by the convert and gradient endpoints.
type ColorsResponse struct {
	Total  int         `json:"total"`
	Colors []ColorView `json:"colors"`
}

// NewColorView derives every representation of c.
func NewColorView(c color.Color) ColorView {
	r, g, b := c.RGB()
	return ColorView{
		Hex: c.Hex(),
		RGB: [3]float64{r, g, b},
		HSV: HSVView{Hue: c.Hue, Saturation: c.Saturation, Value: c.Value},
	}
}

func newColorsResponse(cs []color.Color) ColorsResponse {
	views := make([]ColorView, len(cs))
	for i, c := range cs {
		views[i] = NewColorView(c)
	}
	return ColorsResponse{Total: len(views), Colors: views}
}

// Success sends a JSON success response
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends a JSON error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
