package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// OverlapsBox reports whether the player's box p touches the solid box o.
// All tests are strict. The vertical tests use the player's bottom edge only:
// it must lie strictly inside o's vertical span, so a player resting exactly
// on top of o (bottom == o.Y) does not overlap it.
func OverlapsBox(p, o core.Box) bool {
	return p.X < o.Right() &&
		p.Right() > o.X &&
		p.Bottom() < o.Bottom() &&
		p.Bottom() > o.Y
}

// OverlapsPickup applies the OverlapsBox tests to a power-up's square box.
// Power-ups are drawn as circles but collected by box.
func OverlapsPickup(p core.Box, pu PowerUp) bool {
	return OverlapsBox(p, pu.Box())
}

// WallContact reports whether the player is against a platform's side: its
// vertical span contains the platform's top and it is within band pixels of
// the platform's left or right edge.
func WallContact(p, plat core.Box, band float64) bool {
	spans := p.Right() >= plat.X && p.X <= plat.Right() &&
		p.Y <= plat.Y && p.Bottom() >= plat.Y
	nearEdge := p.Right() <= plat.X+band || p.X >= plat.Right()-band
	return spans && nearEdge
}
