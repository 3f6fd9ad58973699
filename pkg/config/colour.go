package config

import (
	"fmt"
	"image/color"
	"strings"
)

// namedColours is the palette accepted in theme fields. The names match
// the classic canvas colour names the program historically used.
var namedColours = map[string]color.RGBA{
	"white":     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":     {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"blue":      {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"red":       {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"green":     {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"yellow":    {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"grey":      {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"lightgrey": {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	"orange":    {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"purple":    {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
}

// ParseColour resolves a colour name or a #RRGGBB hex string.
func ParseColour(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("empty colour value")
	}

	if c, ok := namedColours[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex colour %q: want #RRGGBB", s)
		}
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}
