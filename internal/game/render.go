package game

import (
	"fmt"
	"strings"

	"github.com/ferretworks/stash-dash/internal/core"
)

// Render draws the current frame into the screen buffer. The simulation
// runs in world units; everything here is scaled down to whatever cell
// grid the terminal offers.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	switch g.phase {
	case PhaseSplash:
		g.renderSplash(s)
		return
	case PhasePlaying, PhaseGameOver:
		g.renderWorld(s)
		g.renderHUD(s)
	}

	if g.phase == PhaseGameOver {
		g.renderGameOver(s)
	}
	if g.debug {
		g.renderDebug(s)
	}
}

// cellScale returns world units per cell on each axis.
func (g *Game) cellScale(s *core.Screen) (float64, float64) {
	sx := g.cfg.World.ViewportWidth / float64(s.Width())
	sy := g.cfg.World.ViewportHeight / float64(s.Height())
	return sx, sy
}

func (g *Game) renderWorld(s *core.Screen) {
	sx, sy := g.cellScale(s)
	camX := g.camera.OffsetX()

	toCol := func(wx float64) int { return int((wx - camX) / sx) }
	toRow := func(wy float64) int { return int(wy / sy) }

	groundRow := toRow(g.cfg.World.GroundY)

	// Ground: a grass lip with dirt below. Gaps stay empty because no
	// segment exists there.
	for _, seg := range g.gen.Ground {
		c0 := toCol(seg.X)
		c1 := toCol(seg.X + g.cfg.World.TileSize)
		for c := c0; c < c1; c++ {
			if c < 0 || c >= s.Width() {
				continue
			}
			s.SetColored(c, groundRow, '▔', core.ColorGreen)
			for r := groundRow + 1; r < s.Height(); r++ {
				s.SetColored(c, r, '░', core.ColorBrown)
			}
		}
	}

	for _, pf := range g.gen.Platforms {
		row := toRow(pf.Y)
		c0 := toCol(pf.X)
		width := core.Max(1, toCol(pf.X+pf.Width)-c0)
		s.DrawHLine(c0, row, width, '▬', core.ColorBrown)
	}

	for _, b := range g.gen.Bushes {
		c0 := toCol(b.X)
		width := core.Max(1, toCol(b.X+b.Width)-c0)
		row := toRow(b.Y + b.Height/2)
		s.DrawHLine(c0, row, width, '♣', core.ColorBrightGreen)
	}

	for _, pk := range g.gen.Pickups {
		col := toCol(pk.X)
		row := toRow(pk.Y)
		glyph := 'o'
		if pk.Tier == TierRare {
			glyph = '◉'
		}
		s.SetColored(col, row, glyph, pk.Hue)
	}

	// Previous best-distance marker.
	if g.bestDistance > 0 {
		col := toCol(g.signWorldX())
		if col >= 0 && col < s.Width() {
			s.SetColored(col, groundRow-1, '⚑', core.ColorBrightYellow)
			s.DrawTextColored(col-2, groundRow-2, "BEST", core.ColorBrightYellow)
		}
	}

	for _, pt := range g.particles {
		s.SetColored(toCol(pt.X), toRow(pt.Y), pt.Glyph, pt.Hue)
	}

	g.renderPlayer(s, sx, sy, toCol, toRow)
}

func (g *Game) renderPlayer(s *core.Screen, sx, sy float64, toCol, toRow func(float64) int) {
	p := g.player
	c0 := toCol(p.X)
	r0 := toRow(p.Y)
	w := core.Max(1, int(p.Width/sx))
	h := core.Max(2, int(p.Height/sy))

	hue := core.ColorOrange
	if p.State == StateHit {
		hue = core.ColorBrightRed
	}
	s.FillRect(c0, r0+1, w, h-1, '▓', hue)
	// Face on the leading edge.
	s.SetColored(c0+w-1, r0, '◠', hue)
	s.SetColored(c0+w-2, r0, '@', hue)
}

func (g *Game) renderHUD(s *core.Screen) {
	hud := fmt.Sprintf(" YARN %d  DIST %dm  SPD %3.0f%%", g.player.Stash, g.distance, g.player.SpeedPct())
	s.DrawText(0, 0, hud)
	s.DrawTextColored(len(hud)+2, 0, strings.Repeat("♥", g.player.Lives), core.ColorBrightRed)

	if g.highScore > 0 {
		best := fmt.Sprintf("BEST %d ", g.highScore)
		s.DrawTextColored(s.Width()-len(best), 0, best, core.ColorGray)
	}
	if g.newRecord {
		s.DrawTextColored(s.Width()/2-5, 0, "NEW BEST!", core.ColorBrightWhite)
	}
	if g.paused {
		s.DrawTextCentered(s.Height()/2, "· PAUSED ·")
	}
}

func (g *Game) renderSplash(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, "S T A S H   D A S H")
	s.DrawTextCentered(mid-1, "help the squirrel hoard yarn for winter")
	s.DrawTextCentered(mid+1, "space/up: jump   p: pause   r: restart   q: quit")
	s.DrawTextCentered(mid+3, "press SPACE to dash")
	if g.highScore > 0 {
		s.DrawTextCentered(mid+5, fmt.Sprintf("best stash: %d   best distance: %dm", g.highScore, g.bestDistance))
	}
}

func (g *Game) renderGameOver(s *core.Screen) {
	w, h := 40, 9
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)

	s.DrawTextCentered(y+1, "WINTER CAME EARLY")
	s.DrawTextCentered(y+2, g.deathCause)
	s.DrawTextCentered(y+4, fmt.Sprintf("stash %d   distance %dm   yarn %d", g.player.Stash, g.distance, g.yarnCount))
	if g.newRecord {
		s.DrawTextColored(x+w/2-5, y+5, "NEW BEST!", core.ColorBrightWhite)
	}
	s.DrawTextCentered(y+7, "r: run again   q: quit")
}

func (g *Game) renderDebug(s *core.Screen) {
	lines := []string{
		fmt.Sprintf("seed=%d tick=%d", g.rt.Seed, g.rt.TickRate),
		fmt.Sprintf("pos=(%.0f,%.0f) vel=(%.0f,%.0f) %s", g.player.X, g.player.Y, g.player.VelX, g.player.VelY, g.player.State),
		fmt.Sprintf("cam=%.0f tier=%s gap=%v", g.camera.OffsetX(), g.gen.UnlockedTier(), g.player.FallingInGap),
		fmt.Sprintf("ground=%d gaps=%d plats=%d bushes=%d yarn=%d",
			len(g.gen.Ground), len(g.gen.Gaps), len(g.gen.Platforms), len(g.gen.Bushes), len(g.gen.Pickups)),
	}
	if g.saveErr != nil {
		lines = append(lines, "save: "+g.saveErr.Error())
	}
	for i, l := range lines {
		s.DrawTextColored(0, 1+i, l, core.ColorGray)
	}
}
