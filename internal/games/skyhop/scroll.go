package skyhop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Scroll shifts the whole world down while the player is above the scroll line.
// It reports whether the world moved.
func Scroll(w *WorldState, sc config.ScrollConfig) bool {
	if !w.Player.IsAlive || w.Player.Y >= w.Height*sc.Threshold {
		return false
	}

	for i := range w.Platforms {
		w.Platforms[i].Y += sc.Speed
	}
	for i := range w.Obstacles {
		w.Obstacles[i].Y += sc.Speed
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Y += sc.Speed
	}
	w.Player.Y += sc.Speed
	w.Climbed += sc.Speed
	return true
}

// recyclePlatforms moves platforms that fell below the world bottom to the top
// of the ladder. Obstacles and uncollected power-ups move with their platform,
// and a platform whose power-up was collected gets a fresh one.
// It returns how many platforms were moved.
func recyclePlatforms(w *WorldState, cfg *config.SkyhopConfig, rng *rand.Rand) int {
	moved := 0
	for i := range w.Platforms {
		plat := &w.Platforms[i]
		if plat.Y <= w.Height {
			continue
		}
		plat.Y = topPlatformY(w.Platforms) - cfg.Platforms.Gap
		plat.X = randomX(rng, w.Width, plat.W)
		moved++

		for j := range w.Obstacles {
			if w.Obstacles[j].Platform != i {
				continue
			}
			w.Obstacles[j] = newObstacle(*plat, i, cfg.Obstacles, rng)
		}

		for j := range w.PowerUps {
			if w.PowerUps[j].Platform == i {
				w.PowerUps[j].seatOn(*plat)
			}
		}
		if i%cfg.PowerUps.Every == 0 && !hasPowerUp(w.PowerUps, i) {
			w.PowerUps = append(w.PowerUps, newPowerUp(*plat, i, cfg.PowerUps, rng))
		}
	}
	return moved
}

func topPlatformY(platforms []Platform) float64 {
	top := math.Inf(1)
	for _, p := range platforms {
		top = math.Min(top, p.Y)
	}
	return top
}

func hasPowerUp(powerUps []PowerUp, platform int) bool {
	for _, pu := range powerUps {
		if pu.Platform == platform {
			return true
		}
	}
	return false
}
