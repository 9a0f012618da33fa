package texture

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// Implementations are immutable after construction and safe for concurrent reads.
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in 3D space by the sign of
// sin(10x)·sin(10y)·sin(10z)
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker texture from two nested textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture alternating between two solid colors
func NewCheckerColors(even, odd core.Vec3) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the odd texture where the product of sines is negative
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// Noise is a marble-like procedural texture driven by Perlin turbulence
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture with its own Perlin tables
func NewNoise(perlin *Perlin, scale float64) *Noise {
	return &Noise{perlin: perlin, Scale: scale}
}

// Evaluate returns a gray value 0.5·(1 + sin(scale·z + 10·turb(p)))
func (n *Noise) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.perlin.Turbulence(point, 7)))
	return core.NewVec3(gray, gray, gray)
}

// Image provides color from a 2D image
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImage creates a new image texture
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// debugColor marks surfaces whose image texture has no data
var debugColor = core.NewVec3(0, 1, 1)

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *Image) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return debugColor
	}

	// Clamp UV to [0, 1]; V=0 is bottom, V=1 is top so flip V for image rows
	u := math.Max(0, math.Min(1, uv.X))
	v := 1.0 - math.Max(0, math.Min(1, uv.Y))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
