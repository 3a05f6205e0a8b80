package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// handleJumpInput applies jump press and release edges between two input frames.
func handleJumpInput(p *Player, held, wasHeld bool) {
	switch {
	case held && !wasHeld:
		if p.JumpCount < maxJumps {
			p.DY = p.JumpStrength
			p.IsJumping = true
			p.JumpCount++
			p.JumpHeld = true
		}
	case !held && wasHeld:
		p.JumpHeld = false
		p.JumpTime = 0
	}
}

// applyGravity integrates vertical velocity and position.
func applyGravity(p *Player) {
	p.DY += p.Gravity
	p.Y += p.DY
}

// landOnPlatforms snaps a falling player onto any platform it overlaps.
// When several platforms match, the last one wins.
func landOnPlatforms(w *WorldState) {
	p := &w.Player
	for _, plat := range w.Platforms {
		if p.DY >= 0 && OverlapsBox(p.Box(), plat.Box()) {
			p.Y = plat.Y - p.Height
			p.DY = 0
			p.IsJumping = false
			p.JumpCount = 0
		}
	}
}

// moveObstacles slides every obstacle, bouncing it off the world's side edges,
// and kills the player on contact. It reports whether this call killed the player.
func moveObstacles(w *WorldState, oc config.ObstacleConfig) bool {
	killed := false
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		o.X += float64(o.Direction) * oc.Speed
		if o.X <= 0 {
			o.X = 0
			o.Direction = 1
		} else if o.X+o.W >= w.Width {
			o.X = w.Width - o.W
			o.Direction = -1
		}

		if w.Player.IsAlive && OverlapsBox(w.Player.Box(), o.Box()) {
			w.Player.IsAlive = false
			killed = true
		}
	}
	return killed
}

// collectPowerUps applies and removes every power-up the player overlaps.
// It returns the collected types in world order.
func collectPowerUps(w *WorldState, phys config.PhysicsConfig) []PowerUpType {
	var collected []PowerUpType
	box := w.Player.Box()
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if !OverlapsPickup(box, pu) {
			kept = append(kept, pu)
			continue
		}
		switch pu.Type {
		case PowerUpDoubleJump:
			w.Player.JumpStrength = phys.BoostedJumpStrength
		case PowerUpSpeedBoost:
			w.Player.SpeedBoost = true
		}
		collected = append(collected, pu.Type)
	}
	w.PowerUps = kept
	w.Collected += len(collected)
	return collected
}

// updateJumpHold adds extra lift while a jump is held, for a limited number of ticks.
func updateJumpHold(p *Player, phys config.PhysicsConfig) {
	if !p.JumpHeld || !p.IsJumping {
		return
	}
	p.JumpTime++
	if p.JumpTime < phys.JumpHoldTicks {
		p.DY -= phys.JumpHoldImpulse
	}
}

// maxSpeed returns the player's nominal top speed.
func (p Player) maxSpeed(phys config.PhysicsConfig) float64 {
	if p.SpeedBoost {
		return phys.BoostedSpeed
	}
	return phys.PlayerSpeed
}

// moveHorizontal accelerates from held directions, applies friction and keeps
// the player inside the world.
func moveHorizontal(w *WorldState, left, right bool, phys config.PhysicsConfig) {
	p := &w.Player
	speed := p.maxSpeed(phys)
	accel := phys.Accel
	if phys.SpeedBoostMode == config.SpeedBoostScaled {
		accel *= speed / phys.PlayerSpeed
	}

	if left {
		p.DX -= accel
	}
	if right {
		p.DX += accel
	}
	p.DX *= phys.Friction
	p.X = core.ClampF(p.X+p.DX, 0, w.Width-p.Width)
}

// handleWalls makes the player slide down platform sides and jump off them.
func handleWalls(w *WorldState, jumpHeld bool, phys config.PhysicsConfig) {
	p := &w.Player
	p.WallSliding = false
	for _, plat := range w.Platforms {
		if !WallContact(p.Box(), plat.Box(), phys.WallBand) {
			continue
		}
		p.WallSliding = true
		p.DY = phys.WallSlideSpeed
		if jumpHeld {
			p.DY = p.JumpStrength
			p.WallSliding = false
		}
	}
}
