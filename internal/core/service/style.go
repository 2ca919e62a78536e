package service

import "math/rand/v2"

// Flat UI colors.
const (
	PeterRiver   = 0x3498db
	Amethyst     = 0x9b59b6
	WetAsphalt   = 0x34495e
	GreenSea     = 0x16a085
	Nephritis    = 0x27ae60
	SunFlower    = 0xf1c40f
	Carrot       = 0xe67e22
	Alizarin     = 0xe74c3c
	Clouds       = 0xecf0f1
	Concrete     = 0x95a5a6
	Pumpkin      = 0xd35400
	Pomegranate  = 0xc0392b
	Silver       = 0xbdc3c7
	Asbestos     = 0x7f8c8d
	Turquoise    = 0x1abc9c
	Emerald      = 0x2ecc71
	BelizeHole   = 0x2980b9
	Wisteria     = 0x8e44ad
	MidnightBlue = 0x2c3e50
)

// Pastel colors.
const (
	Pink      = 0xf5c2e7
	Mauve     = 0xcba6f7
	Red       = 0xf38ba8
	Maroon    = 0xeba0ac
	Peach     = 0xfab387
	Yellow    = 0xf9e2af
	Green     = 0xa6e3a1
	Teal      = 0x94e2d5
	Sky       = 0x89dceb
	Sapphire  = 0x74c7ec
	Blue      = 0x89b4fa
	Lavender  = 0xb4befe
	Rosewater = 0xf5e0dc
)

var flatColors = []int{
	PeterRiver, Amethyst, WetAsphalt, GreenSea, Nephritis, SunFlower, Carrot, Alizarin, Clouds, Concrete,
	Pumpkin, Pomegranate, Silver, Asbestos, Turquoise, Emerald, BelizeHole, Wisteria, MidnightBlue,
}

var pastelColors = []int{
	Pink, Mauve, Red, Maroon, Peach, Yellow, Green, Teal, Sky, Sapphire, Blue, Lavender,
}

type Palette struct {
	intN func(n int) int
}

func NewPalette() *Palette {
	return &Palette{intN: rand.IntN}
}

func (p *Palette) Random() int {
	return flatColors[p.intN(len(flatColors))]
}

func (p *Palette) Pastel() int {
	return pastelColors[p.intN(len(pastelColors))]
}

func (p *Palette) Success() int {
	return Emerald
}

func (p *Palette) Warning() int {
	return SunFlower
}

func (p *Palette) Error() int {
	return Pomegranate
}

func (p *Palette) Primary() int {
	return PeterRiver
}
