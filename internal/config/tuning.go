// internal/config/tuning.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Tuning holds the gameplay values that may be overridden from a JSON file.
type Tuning struct {
	EnemyMax            int
	FormationMembersMax int
	BaseSpeed           float64
	EnemySpawnInterval  time.Duration
	EnemyFireChance     float64
	PlayerRespawnDelay  float64
}

// tuningFile is the on-disk shape. Missing or zero fields keep the defaults.
type tuningFile struct {
	EnemyMax            int     `json:"enemy_max"`
	FormationMembersMax int     `json:"formation_members_max"`
	BaseSpeed           float64 `json:"base_speed"`
	EnemySpawnInterval  float64 `json:"enemy_spawn_interval_sec"`
	EnemyFireChance     float64 `json:"enemy_fire_chance"`
	PlayerRespawnDelay  float64 `json:"player_respawn_delay_sec"`
}

// DefaultTuning returns the built-in values.
func DefaultTuning() Tuning {
	return Tuning{
		EnemyMax:            EnemyMax,
		FormationMembersMax: FormationMembersMax,
		BaseSpeed:           BaseSpeed,
		EnemySpawnInterval:  EnemySpawnInterval,
		EnemyFireChance:     EnemyFireChance,
		PlayerRespawnDelay:  PlayerRespawnDelay,
	}
}

// LoadTuning reads overrides from path on top of DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var f tuningFile
	if err := json.Unmarshal(file, &f); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if f.EnemyFireChance < 0 || f.EnemyFireChance > 1 {
		return t, fmt.Errorf("enemy_fire_chance %.3f outside [0, 1]", f.EnemyFireChance)
	}

	if f.EnemyMax > 0 {
		t.EnemyMax = f.EnemyMax
	}
	if f.FormationMembersMax > 0 {
		t.FormationMembersMax = f.FormationMembersMax
	}
	if f.BaseSpeed > 0 {
		t.BaseSpeed = f.BaseSpeed
	}
	if f.EnemySpawnInterval > 0 {
		t.EnemySpawnInterval = time.Duration(f.EnemySpawnInterval * float64(time.Second))
	}
	if f.EnemyFireChance > 0 {
		t.EnemyFireChance = f.EnemyFireChance
	}
	if f.PlayerRespawnDelay > 0 {
		t.PlayerRespawnDelay = f.PlayerRespawnDelay
	}
	return t, nil
}
