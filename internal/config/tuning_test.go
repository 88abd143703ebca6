package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func TestDefaultTuningMatchesConstants(t *testing.T) {
	tu := DefaultTuning()
	if tu.EnemyMax != EnemyMax || tu.FormationMembersMax != FormationMembersMax {
		t.Errorf("Expected enemy max %d / batch %d, got %d / %d",
			EnemyMax, FormationMembersMax, tu.EnemyMax, tu.FormationMembersMax)
	}
	if tu.BaseSpeed != BaseSpeed {
		t.Errorf("Expected base speed %f, got %f", BaseSpeed, tu.BaseSpeed)
	}
	if tu.EnemySpawnInterval != time.Second {
		t.Errorf("Expected spawn interval 1s, got %v", tu.EnemySpawnInterval)
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	path := writeTuning(t, `{"enemy_max": 8, "formation_members_max": 4, "enemy_spawn_interval_sec": 0.5}`)

	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tu.EnemyMax != 8 {
		t.Errorf("Expected enemy max 8, got %d", tu.EnemyMax)
	}
	if tu.FormationMembersMax != 4 {
		t.Errorf("Expected batch max 4, got %d", tu.FormationMembersMax)
	}
	if tu.EnemySpawnInterval != 500*time.Millisecond {
		t.Errorf("Expected spawn interval 500ms, got %v", tu.EnemySpawnInterval)
	}
	// Untouched fields keep their defaults.
	if tu.BaseSpeed != BaseSpeed {
		t.Errorf("Expected default base speed, got %f", tu.BaseSpeed)
	}
	if tu.PlayerRespawnDelay != PlayerRespawnDelay {
		t.Errorf("Expected default respawn delay, got %f", tu.PlayerRespawnDelay)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for a missing file")
	}
	if _, err := LoadTuning(writeTuning(t, `{"enemy_max": `)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := LoadTuning(writeTuning(t, `{"enemy_fire_chance": 2}`)); err == nil {
		t.Error("Expected error for a fire chance above 1")
	}
}
