package texture

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds gradient-noise lattice tables. The tables are generated once
// and only read afterwards.
type Perlin struct {
	randomVectors [perlinPointCount]core.Vec3
	permX         [perlinPointCount]int
	permY         [perlinPointCount]int
	permZ         [perlinPointCount]int
}

// NewPerlin generates lattice vectors and three independent permutations
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.randomVectors[i] = core.RandomVec3(sampler, 0, 1).Normalize()
	}
	generatePermutation(&p.permX, sampler)
	generatePermutation(&p.permY, sampler)
	generatePermutation(&p.permZ, sampler)
	return p
}

// generatePermutation fills perm with 0..n-1 shuffled in place (Fisher-Yates)
func generatePermutation(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := core.RandomInt(sampler, 0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randomVectors[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

// perlinInterpolate blends the 8 lattice gradients with plain trilinear
// weights in the raw fractional coordinates. No Hermite smoothing is applied;
// the marble texture's look depends on this linear blend.
func perlinInterpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise at doubling frequency and halving
// amplitude, returning the absolute value
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}
