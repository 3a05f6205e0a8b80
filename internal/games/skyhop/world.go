package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// maxJumps is how many jump impulses the player gets between landings.
const maxJumps = 2

// Player is the controllable character. Position is the top-left corner in world pixels.
type Player struct {
	X, Y          float64
	Width, Height float64
	DX, DY        float64 // Velocity in px/tick
	Gravity       float64
	JumpStrength  float64 // Jump impulse, negative = up
	IsJumping     bool
	IsAlive       bool
	SpeedBoost    bool

	JumpCount   int  // Jumps since last landing, 0..maxJumps
	JumpHeld    bool // A jump started by a press is still being held
	JumpTime    int  // Ticks the current jump has been held
	WallSliding bool
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Platform is a static ledge. Only its Y changes, when the world scrolls.
type Platform struct {
	X, Y float64
	W, H float64
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Obstacle slides horizontally and kills the player on contact.
type Obstacle struct {
	X, Y      float64
	W, H      float64
	Direction int // -1 moving left, +1 moving right
	Platform  int // Index of the platform it was placed on
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// PowerUpType identifies a power-up's effect.
type PowerUpType int

const (
	PowerUpDoubleJump PowerUpType = iota // Stronger jump impulse for the rest of the run
	PowerUpSpeedBoost                    // Sets the speed-boost flag for the rest of the run
	powerUpTypeCount
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpDoubleJump:
		return "doubleJump"
	case PowerUpSpeedBoost:
		return "speedBoost"
	default:
		return "unknown"
	}
}

// Color returns the fill color used to draw the power-up.
func (t PowerUpType) Color() core.Color {
	if t == PowerUpDoubleJump {
		return core.ColorPurple
	}
	return core.ColorYellow
}

// PowerUp is a collectible resting above a platform.
type PowerUp struct {
	X, Y     float64
	Size     float64
	Type     PowerUpType
	Platform int // Index of the platform it was placed on
}

// Box returns the power-up's square bounding box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// WorldState is everything one tick reads and writes.
type WorldState struct {
	Player    Player
	Platforms []Platform
	Obstacles []Obstacle
	PowerUps  []PowerUp

	Width, Height float64 // Play area in pixels
	Climbed       float64 // Total scroll distance
	Tick          int
	Collected     int // Power-ups collected
}

// NewWorld creates an empty world of the given size with the player at its spawn point.
func NewWorld(width, height float64, cfg *config.SkyhopConfig) WorldState {
	return WorldState{
		Player: Player{
			X:            cfg.Player.StartX,
			Y:            height - cfg.Player.StartOffset,
			Width:        cfg.Player.Width,
			Height:       cfg.Player.Height,
			Gravity:      cfg.Physics.Gravity,
			JumpStrength: cfg.Physics.JumpStrength,
			IsAlive:      true,
		},
		Platforms: make([]Platform, 0, cfg.Platforms.Count),
		Width:     width,
		Height:    height,
	}
}
