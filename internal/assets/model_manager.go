// internal/assets/model_manager.go
package assets

import (
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"path/filepath"

	"go-invaders/internal/component"
	"go-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteManager loads the game's images, drawing a placeholder for any file
// that is missing so the game stays playable without an assets directory.
type SpriteManager struct {
	sprites   map[component.SpriteKind]*ebiten.Image
	explosion *ebiten.Image
	frames    []*ebiten.Image
}

// NewSpriteManager loads every sprite from dir.
func NewSpriteManager(dir string) *SpriteManager {
	m := &SpriteManager{sprites: make(map[component.SpriteKind]*ebiten.Image)}

	m.sprites[component.SpritePlayer] = m.load(dir, config.PlayerSprite, func() *ebiten.Image {
		return ship(config.PlayerWidth, config.PlayerHeight, config.PlayerColor, true)
	})
	m.sprites[component.SpriteEnemy] = m.load(dir, config.EnemySprite, func() *ebiten.Image {
		return ship(config.EnemyWidth, config.EnemyHeight, config.EnemyColor, false)
	})
	m.sprites[component.SpritePlayerLaser] = m.load(dir, config.PlayerLaserSprite, func() *ebiten.Image {
		return bar(config.PlayerLaserWidth, config.PlayerLaserHeight, config.PlayerLaserColor)
	})
	m.sprites[component.SpriteEnemyLaser] = m.load(dir, config.EnemyLaserSprite, func() *ebiten.Image {
		return bar(config.EnemyLaserWidth, config.EnemyLaserHeight, config.EnemyLaserColor)
	})
	m.explosion = m.load(dir, config.ExplosionSheet, explosionSheet)

	size := config.ExplosionFrameSize
	for i := 0; i < config.ExplosionLen; i++ {
		col, row := i%config.ExplosionColumns, i/config.ExplosionColumns
		rect := image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
		m.frames = append(m.frames, m.explosion.SubImage(rect).(*ebiten.Image))
	}
	return m
}

// Sprite returns the image for kind.
func (m *SpriteManager) Sprite(kind component.SpriteKind) *ebiten.Image {
	return m.sprites[kind]
}

// ExplosionFrame returns frame i of the explosion sheet, clamped to the last.
func (m *SpriteManager) ExplosionFrame(i int) *ebiten.Image {
	if i >= len(m.frames) {
		i = len(m.frames) - 1
	}
	if i < 0 {
		i = 0
	}
	return m.frames[i]
}

func (m *SpriteManager) load(dir, name string, fallback func() *ebiten.Image) *ebiten.Image {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		slog.Warn("sprite not loaded, using placeholder", "path", path, "error", err)
		return fallback()
	}
	return img
}

func ship(w, h float64, clr color.RGBA, pointUp bool) *ebiten.Image {
	img := ebiten.NewImage(int(w), int(h))
	fw, fh := float32(w), float32(h)
	// Hull
	vector.DrawFilledRect(img, fw*0.3, fh*0.25, fw*0.4, fh*0.5, clr, true)
	// Wings
	vector.DrawFilledRect(img, 0, fh*0.45, fw, fh*0.2, clr, true)
	// Cockpit / nose
	noseY := fh * 0.15
	if !pointUp {
		noseY = fh * 0.85
	}
	vector.DrawFilledCircle(img, fw/2, noseY, fh*0.15, clr, true)
	return img
}

func bar(w, h float64, clr color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(int(w), int(h))
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), clr, true)
	return img
}

func explosionSheet() *ebiten.Image {
	size := config.ExplosionFrameSize
	sheet := ebiten.NewImage(size*config.ExplosionColumns, size*config.ExplosionRows)
	for i := 0; i < config.ExplosionLen; i++ {
		col, row := i%config.ExplosionColumns, i/config.ExplosionColumns
		cx := float32(col*size + size/2)
		cy := float32(row*size + size/2)
		progress := float32(i+1) / float32(config.ExplosionLen)
		clr := config.ExplosionColor
		clr.A = uint8(255 * (1 - progress*0.8))
		vector.DrawFilledCircle(sheet, cx, cy, float32(size)/2*progress, clr, true)
	}
	return sheet
}
