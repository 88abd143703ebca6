// internal/system/render.go
package system

import (
	"math"

	"go-invaders/internal/assets"
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/types"
	"go-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws the starfield, sprites and explosions.
type RenderSystem struct {
	ecs     *entity.ECS
	sprites *assets.SpriteManager
	stars   *render.Starfield
}

func NewRenderSystem(ecs *entity.ECS, sprites *assets.SpriteManager, stars *render.Starfield) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites, stars: stars}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	screen.Fill(config.BackgroundColor)

	for i := range s.stars.Stars {
		x, y := s.stars.Position(i, gameTime)
		sx, sy := render.WorldToScreen(x, y, config.ScreenWidth, config.ScreenHeight)
		clr := render.ScaleColor(config.StarColor, s.stars.Brightness(i, gameTime))
		vector.DrawFilledRect(screen, float32(sx), float32(sy), 2, 2, clr, false)
	}

	// Lasers sit under the ships.
	for id := range s.ecs.Lasers {
		s.drawSprite(screen, id)
	}
	for id := range s.ecs.Enemies {
		s.drawSprite(screen, id)
	}
	for id := range s.ecs.Players {
		s.drawSprite(screen, id)
	}

	for id, explosion := range s.ecs.Explosions {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		img := s.sprites.ExplosionFrame(explosion.Frame)
		s.drawCentered(screen, img, pos.X, pos.Y, 1, false)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	sprite, hasSprite := s.ecs.Sprites[id]
	if !hasPos || !hasSprite {
		return
	}
	img := s.sprites.Sprite(sprite.Kind)
	if img == nil {
		return
	}
	s.drawCentered(screen, img, pos.X, pos.Y, sprite.Scale, sprite.Kind == component.SpriteEnemyLaser)
}

func (s *RenderSystem) drawCentered(screen, img *ebiten.Image, x, y, scale float64, flip bool) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if flip {
		op.GeoM.Rotate(math.Pi)
	}
	op.GeoM.Scale(scale, scale)
	sx, sy := render.WorldToScreen(x, y, config.ScreenWidth, config.ScreenHeight)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}
