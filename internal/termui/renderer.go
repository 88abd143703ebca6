// internal/termui/renderer.go

// Package termui draws the game in a terminal with tcell and turns key
// presses into controls.
package termui

import (
	"fmt"

	"go-invaders/internal/app"
	"go-invaders/internal/config"
	"go-invaders/pkg/render"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

var (
	styleBackground  = tcell.StyleDefault.Background(tcell.ColorBlack)
	stylePlayer      = styleBackground.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayerLaser = styleBackground.Foreground(tcell.ColorLime)
	styleEnemy       = styleBackground.Foreground(tcell.ColorRed).Bold(true)
	styleEnemyLaser  = styleBackground.Foreground(tcell.ColorYellow)
	styleExplosion   = styleBackground.Foreground(tcell.ColorOrange)
	styleStar        = styleBackground.Foreground(tcell.ColorGray)
	styleStatus      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

const (
	glyphPlayer      = 'A'
	glyphEnemy       = 'W'
	glyphPlayerLaser = '|'
	glyphEnemyLaser  = '!'
	glyphExplosion   = '*'
	glyphStar        = '.'
)

// Renderer draws a Game onto a tcell screen. The bottom row is a status bar.
type Renderer struct {
	screen tcell.Screen
	paused bool
	notice string
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SetPaused toggles the PAUSED marker in the status bar.
func (r *Renderer) SetPaused(paused bool) {
	r.paused = paused
}

// SetNotice shows msg in the status bar until replaced; "" clears it.
func (r *Renderer) SetNotice(msg string) {
	r.notice = msg
}

// CellOf maps a world position onto a cols x rows grid. ok is false when the
// position is off the grid.
func CellOf(x, y float64, cols, rows int) (col, row int, ok bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	sx, sy := render.WorldToScreen(x, y, config.ScreenWidth, config.ScreenHeight)
	if sx < 0 || sy < 0 || sx >= config.ScreenWidth || sy >= config.ScreenHeight {
		return 0, 0, false
	}
	col = int(sx * float64(cols) / config.ScreenWidth)
	row = int(sy * float64(rows) / config.ScreenHeight)
	return col, row, true
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(g *app.Game, best int) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 1 {
		r.screen.Show()
		return
	}
	r.screen.Fill(' ', styleBackground)
	rows := h - 1
	ecs := g.ECS
	now := g.GameTime()

	for i := range g.Stars.Stars {
		if g.Stars.Brightness(i, now) < 0.5 {
			continue
		}
		x, y := g.Stars.Position(i, now)
		r.put(x, y, w, rows, glyphStar, styleStar)
	}

	for id, laser := range ecs.Lasers {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if laser.FromPlayer {
			r.put(pos.X, pos.Y, w, rows, glyphPlayerLaser, stylePlayerLaser)
		} else {
			r.put(pos.X, pos.Y, w, rows, glyphEnemyLaser, styleEnemyLaser)
		}
	}
	for id := range ecs.Enemies {
		if pos, ok := ecs.Positions[id]; ok {
			r.put(pos.X, pos.Y, w, rows, glyphEnemy, styleEnemy)
		}
	}
	for id := range ecs.Players {
		if pos, ok := ecs.Positions[id]; ok {
			r.put(pos.X, pos.Y, w, rows, glyphPlayer, stylePlayer)
		}
	}
	for id := range ecs.Explosions {
		if pos, ok := ecs.Positions[id]; ok {
			r.put(pos.X, pos.Y, w, rows, glyphExplosion, styleExplosion)
		}
	}

	r.drawStatus(g.Summary(), best, w, h-1)
	r.screen.Show()
}

func (r *Renderer) put(x, y float64, cols, rows int, glyph rune, style tcell.Style) {
	col, row, ok := CellOf(x, y, cols, rows)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *Renderer) drawStatus(s app.Summary, best, width, row int) {
	if s.Score > best {
		best = s.Score
	}
	line := fmt.Sprintf(" SCORE %s  BEST %s  DEATHS %d",
		humanize.Comma(int64(s.Score)), humanize.Comma(int64(best)), s.Deaths)
	if r.paused {
		line += "  PAUSED"
	}
	if r.notice != "" {
		line += "  " + r.notice
	}

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, styleStatus)
		x++
	}
}
