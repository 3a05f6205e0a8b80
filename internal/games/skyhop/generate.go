package skyhop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// GeneratePlatforms builds the vertical ladder of platforms, bottom to top,
// with an obstacle on every obstacles.every-th platform.
func GeneratePlatforms(w *WorldState, cfg *config.SkyhopConfig, rng *rand.Rand) {
	pc := cfg.Platforms
	for i := 0; i < pc.Count; i++ {
		p := Platform{
			X: randomX(rng, w.Width, pc.Width),
			Y: w.Height - float64(i)*pc.Gap - pc.BottomOffset,
			W: pc.Width,
			H: pc.Height,
		}
		w.Platforms = append(w.Platforms, p)

		if i%cfg.Obstacles.Every == 0 {
			w.Obstacles = append(w.Obstacles, newObstacle(p, i, cfg.Obstacles, rng))
		}
	}
}

// GeneratePowerUps places a power-up centered above every powerups.every-th platform.
func GeneratePowerUps(w *WorldState, cfg *config.SkyhopConfig, rng *rand.Rand) {
	for i, p := range w.Platforms {
		if i%cfg.PowerUps.Every == 0 {
			w.PowerUps = append(w.PowerUps, newPowerUp(p, i, cfg.PowerUps, rng))
		}
	}
}

// newObstacle places an obstacle at a random offset along p, resting on top of it.
func newObstacle(p Platform, index int, oc config.ObstacleConfig, rng *rand.Rand) Obstacle {
	x := p.X + rng.Float64()*p.W
	dir := 1
	if rng.Float64() < 0.5 {
		dir = -1
	}
	return Obstacle{
		X:         x,
		Y:         p.Y - oc.Height,
		W:         oc.Width,
		H:         oc.Height,
		Direction: dir,
		Platform:  index,
	}
}

func newPowerUp(p Platform, index int, pc config.PowerUpConfig, rng *rand.Rand) PowerUp {
	pu := PowerUp{
		Size:     pc.Size,
		Type:     PowerUpType(rng.Intn(int(powerUpTypeCount))),
		Platform: index,
	}
	pu.seatOn(p)
	return pu
}

// seatOn centers the power-up on top of p.
func (pu *PowerUp) seatOn(p Platform) {
	pu.X = p.X + p.W/2 - pu.Size/2
	pu.Y = p.Y - pu.Size
}

// randomX picks a left edge so that an object of the given width fits in the world.
func randomX(rng *rand.Rand, worldW, width float64) float64 {
	return rng.Float64() * math.Max(0, worldW-width)
}
