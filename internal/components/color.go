package components

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorF is a linear float color with alpha. Channels may exceed 1 (emissive
// colors do); Clamped brings them back into [0,1].
type ColorF struct {
	colorful.Color
	A float64
}

var (
	White = ColorF{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}
	Black = ColorF{Color: colorful.Color{}, A: 1}
	Red   = ColorF{Color: colorful.Color{R: 1}, A: 1}
)

func NewColorF(r, g, b, a float64) ColorF {
	return ColorF{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// Add combines two colors channel by channel, alpha included.
func (c ColorF) Add(o ColorF) ColorF {
	return NewColorF(c.R+o.R, c.G+o.G, c.B+o.B, c.A+o.A)
}

// Clamped limits every channel, alpha included, to [0,1].
func (c ColorF) Clamped() ColorF {
	return ColorF{Color: c.Color.Clamped(), A: clamp01(c.A)}
}

func (c ColorF) WithAlpha(a float64) ColorF {
	c.A = a
	return c
}

// ToRL converts to an 8-bit raylib color, clamping first.
func (c ColorF) ToRL() rl.Color {
	cc := c.Clamped()
	r, g, b := cc.RGB255()
	return rl.NewColor(r, g, b, uint8(cc.A*255+0.5))
}

// Hex formats as #rrggbbaa.
func (c ColorF) Hex() string {
	cc := c.Clamped()
	return fmt.Sprintf("%s%02x", cc.Color.Hex(), uint8(cc.A*255+0.5))
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (ColorF, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return ColorF{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorF{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return ColorF{Color: c, A: alpha}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
