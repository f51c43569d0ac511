package particles

import (
	"math/rand"
	"time"
)

// Particle describes one decorative floating dot: a position in percent of
// the container and an animation delay/duration.
type Particle struct {
	LeftPercent float64
	TopPercent  float64
	Delay       time.Duration
	Duration    time.Duration
}

// Generate produces n particles with positions in [0,100)%, delays in
// [0s,2s), and durations in [6s,10s).
func Generate(n int) []Particle {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Particle{
			LeftPercent: rng.Float64() * 100,
			TopPercent:  rng.Float64() * 100,
			Delay:       time.Duration(rng.Float64() * float64(2*time.Second)),
			Duration:    6*time.Second + time.Duration(rng.Float64()*float64(4*time.Second)),
		})
	}
	return out
}
