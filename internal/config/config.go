// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

// Window
const (
	ScreenWidth  = 500
	ScreenHeight = 700
	WindowTitle  = "Go Invaders!"
)

// Simulation
const (
	TimeStep     = 1.0 / 60.0 // seconds per tick
	BaseSpeed    = 50.0       // px per second for a unit velocity
	MaxDeltaTime = 0.06       // longest frame the loop will catch up on
)

// Enemies
const (
	EnemyMax            = 2
	FormationMembersMax = 2
	EnemySpawnInterval  = time.Second
	EnemyFireChance     = 1.0 / 60.0 // per tick
	EnemyLaserOffsetY   = 15.0
)

// Player
const (
	PlayerRespawnDelay       = 2.0 // seconds
	PlayerSpawnCheckInterval = 500 * time.Millisecond
	PlayerBottomGap          = 5.0
	PlayerLaserInset         = 5.0
)

// Sprites, unscaled pixel sizes
const (
	SpriteScale = 0.5

	PlayerWidth       = 144.0
	PlayerHeight      = 75.0
	PlayerLaserWidth  = 9.0
	PlayerLaserHeight = 54.0
	EnemyWidth        = 144.0
	EnemyHeight       = 75.0
	EnemyLaserWidth   = 17.0
	EnemyLaserHeight  = 55.0
)

// Explosions
const (
	ExplosionColumns   = 4
	ExplosionRows      = 4
	ExplosionLen       = ExplosionColumns * ExplosionRows
	ExplosionFrameSize = 64
	ExplosionFrameTime = 0.05 // seconds per frame
)

// Misc
const (
	DespawnMargin   = 200.0
	ScorePerEnemy   = 100
	StarCount       = 80
	StarTwinkleRate = 0.6
)

// Sprite file names looked up in the assets directory.
const (
	PlayerSprite      = "player_a_01.png"
	PlayerLaserSprite = "laser_a_01.png"
	EnemySprite       = "enemy_a_01.png"
	EnemyLaserSprite  = "laser_b_01.png"
	ExplosionSheet    = "explo_a_sheet.png"
)

var (
	BackgroundColor  = color.RGBA{10, 10, 10, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	PlayerLaserColor = color.RGBA{120, 255, 120, 255}
	EnemyColor       = color.RGBA{230, 70, 70, 255}
	EnemyLaserColor  = color.RGBA{255, 180, 40, 255}
	ExplosionColor   = color.RGBA{255, 200, 60, 255}
	StarColor        = color.RGBA{220, 220, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PausedColor      = color.RGBA{20, 20, 30, 180}
)
