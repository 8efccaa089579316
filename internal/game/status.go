package game

import (
	"fmt"
	"strings"
)

// Snapshot renders the campaign state as plain text, one field per line.
func (g *Game) Snapshot() string {
	var b strings.Builder
	d := g.clock.Date()
	fmt.Fprintf(&b, "mode:   %s\n", g.mode.Current())
	fmt.Fprintf(&b, "date:   %s (%s)\n", g.clock.Format(), d.ISO())
	fmt.Fprintf(&b, "speed:  %s\n", speedLabel(g.clock.Speed()))
	fmt.Fprintf(&b, "target: x=%.1f y=%.1f zoom=%.2f\n", g.target.Position.X, g.target.Position.Y, g.target.Zoom)
	if p, ok := g.Pose(); ok {
		fmt.Fprintf(&b, "camera: x=%.1f y=%.1f scale=%.2f in-bounds=%t\n",
			p.Position.X, p.Position.Y, p.Projection.Scale, g.bounds.Contains(p.Position))
	} else {
		b.WriteString("camera: none\n")
	}
	fmt.Fprintf(&b, "map:    %.0fx%.0f margin=%.0f year=%d\n", g.bounds.Width, g.bounds.Height, g.bounds.Margin, g.mapYear)
	return b.String()
}

func speedLabel(s float64) string {
	if s <= 0 {
		return "PAUSED"
	}
	if s == float64(int(s)) {
		return fmt.Sprintf("%dx", int(s))
	}
	return fmt.Sprintf("%.1fx", s)
}

// copyStatus puts the snapshot on the system clipboard. Failure only logs:
// a missing clipboard must never stop the game.
func (g *Game) copyStatus() {
	s := g.Snapshot()
	if err := g.copyFn(s); err != nil {
		g.logger.Warn("clipboard unavailable", "error", err)
		return
	}
	g.copied = s
	g.copiedAt = g.tick
	g.logger.Debug("status copied to clipboard")
}
