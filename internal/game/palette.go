package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := clamp(int(c.R)+dr, 0, 255)
	g := clamp(int(c.G)+dg, 0, 255)
	b := clamp(int(c.B)+db, 0, 255)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Snake          RGB
	Food           RGB
	Obstacle       RGB
	Text           RGB
	Border         RGB
	GradientTop    RGB // deep indigo
	GradientBottom RGB // near-black
}{
	Snake:          RGB{R: 0, G: 200, B: 120},
	Food:           RGB{R: 220, G: 80, B: 90},
	Obstacle:       RGB{R: 140, G: 160, B: 220},
	Text:           RGB{R: 230, G: 230, B: 230},
	Border:         RGB{R: 200, G: 60, B: 60},
	GradientTop:    RGB{R: 34, G: 38, B: 58},
	GradientBottom: RGB{R: 12, G: 14, B: 20},
}

// Shadow and glass-panel alphas (0-255).
const (
	SnakeShadowAlpha = 90
	FoodShadowAlpha  = 110
	HudAlpha         = 48
	HudBorderAlpha   = 96
)
