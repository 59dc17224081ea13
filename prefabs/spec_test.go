package prefabs

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	scene, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	if scene.Width != 800 || scene.Height != 600 {
		t.Fatalf("expected 800x600, got %vx%v", scene.Width, scene.Height)
	}
	if scene.Volume != 0.5 {
		t.Fatalf("expected volume 0.5, got %v", scene.Volume)
	}
	if scene.Timers.Elapsed() != time.Second || scene.Timers.Progress() != 50*time.Millisecond {
		t.Fatalf("unexpected timers %+v", scene.Timers)
	}

	player, err := LoadSpec[PlayerSpec]("prefabs/player.yaml")
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if player.PushRecovery() != 800*time.Millisecond {
		t.Fatalf("expected 800ms push recovery, got %v", player.PushRecovery())
	}
	for _, name := range []string{"idle", "run", "crouch", "hurt"} {
		if _, ok := player.Animation.Defs[name]; !ok {
			t.Fatalf("player missing animation %q", name)
		}
	}

	enemy, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	lo, hi := enemy.RespawnDelay.Bounds()
	if lo != 5*time.Second || hi != 15*time.Second {
		t.Fatalf("unexpected respawn range %v..%v", lo, hi)
	}
	if enemy.Bounds.Left != -0.25 || enemy.Bounds.Right != 1.25 {
		t.Fatalf("unexpected bounds %+v", enemy.Bounds)
	}
	if death, ok := enemy.Animation.Defs[enemy.DeathAnim]; !ok || death.Loop {
		t.Fatalf("death animation must exist and not loop")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"enemy_speed.tengo", "scripts/enemy_speed.tengo", "prefabs/scripts/enemy_speed.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(data) == 0 {
				t.Fatalf("empty script")
			}
		})
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSpec[SceneSpec]("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	type holder struct {
		C *YAMLColor `yaml:"c"`
	}
	var h holder
	if err := yamlUnmarshal([]byte(`c: "#ff000080"`), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	r, _, _, a := h.C.RGBA()
	if r == 0 || a == 0xffff {
		t.Fatalf("unexpected colour %v", h.C.Color)
	}

	var unset *YAMLColor
	if unset.Or(nil) != nil {
		t.Fatalf("nil colour should return fallback")
	}
	if err := yamlUnmarshal([]byte(`c: "#fff"`), &h); err == nil {
		t.Fatalf("expected short colour to fail")
	}
}

func yamlUnmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
