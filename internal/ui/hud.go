// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"time"

	"go-invaders/internal/config"
	"go-invaders/pkg/render"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Stats is what the HUD shows.
type Stats struct {
	Score  int
	Best   int
	Kills  int
	Deaths int
}

// HUD рисует счёт в верхнем левом углу и короткие уведомления.
type HUD struct {
	X, Y        float32
	fontFace    font.Face
	notice      string
	noticeUntil time.Time
}

// NewHUD creates a HUD; a nil face means the built-in 7x13 bitmap font.
func NewHUD(x, y float32, fontFace font.Face) *HUD {
	if fontFace == nil {
		fontFace = basicfont.Face7x13
	}
	return &HUD{X: x, Y: y, fontFace: fontFace}
}

// FormatScore prints a score with thousands separators.
func FormatScore(points int) string {
	return humanize.Comma(int64(points))
}

// Lines returns the HUD rows top to bottom.
func Lines(s Stats) []string {
	best := s.Best
	if s.Score > best {
		best = s.Score
	}
	return []string{
		"SCORE " + FormatScore(s.Score),
		"BEST  " + FormatScore(best),
		fmt.Sprintf("KILLS %d  DEATHS %d", s.Kills, s.Deaths),
	}
}

// Notify shows msg for d.
func (h *HUD) Notify(msg string, d time.Duration) {
	h.notice = msg
	h.noticeUntil = time.Now().Add(d)
}

// Notice returns the message still visible at now, if any.
func (h *HUD) Notice(now time.Time) string {
	if h.notice == "" || now.After(h.noticeUntil) {
		return ""
	}
	return h.notice
}

func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	lineHeight := h.fontFace.Metrics().Height.Ceil() + 2
	y := int(h.Y) + lineHeight
	for _, line := range Lines(s) {
		text.Draw(screen, line, h.fontFace, int(h.X), y, config.TextLightColor)
		y += lineHeight
	}

	if notice := h.Notice(time.Now()); notice != "" {
		bounds := text.BoundString(h.fontFace, notice)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		text.Draw(screen, notice, h.fontFace, x, config.ScreenHeight-lineHeight, config.TextLightColor)
	}
}

// DrawPaused затемняет экран, пишет PAUSED по центру и таблицу рекордов.
func (h *HUD) DrawPaused(screen *ebiten.Image, highScores []string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedColor, false)

	lineHeight := h.fontFace.Metrics().Height.Ceil() + 2
	y := config.ScreenHeight/2 - lineHeight*(len(highScores)+3)/2
	drawCentered(screen, "PAUSED", h.fontFace, y, color.White)
	y += lineHeight * 2
	for _, line := range PausedLines(highScores) {
		drawCentered(screen, line, h.fontFace, y, config.TextLightColor)
		y += lineHeight
	}
	drawCentered(screen, "P to resume, Esc to quit", h.fontFace, y+lineHeight, render.DarkenColor(config.TextLightColor))
}

// PausedLines returns the high-score block of the pause overlay.
func PausedLines(highScores []string) []string {
	if len(highScores) == 0 {
		return []string{"no high scores yet"}
	}
	return append([]string{"HIGH SCORES"}, highScores...)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
}
