package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec holds screen layout and HUD tuning. Positions given as fractions
// are multiplied by the screen size when the scene is built.
type SceneSpec struct {
	Name        string          `yaml:"name"`
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	Gravity     float64         `yaml:"gravity"`
	ObjectScale float64         `yaml:"object_scale"`
	Volume      float64         `yaml:"volume"`
	Background  *YAMLColor      `yaml:"background"`
	ProgressBar ProgressBarSpec `yaml:"progress_bar"`
	Buttons     ButtonsSpec     `yaml:"buttons"`
	HUD         HUDSpec         `yaml:"hud"`
	Timers      TimersSpec      `yaml:"timers"`
}

type ProgressBarSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Track  *YAMLColor `yaml:"track"`
	Fill   *YAMLColor `yaml:"fill"`
}

type ButtonsSpec struct {
	Y         float64 `yaml:"y"`
	Size      float64 `yaml:"size"`
	PreviousX float64 `yaml:"previous_x"`
	PlayX     float64 `yaml:"play_x"`
	NextX     float64 `yaml:"next_x"`
	PlayScale float64 `yaml:"play_scale"`
}

type HUDSpec struct {
	TitleY   float64    `yaml:"title_y"`
	TimeY    float64    `yaml:"time_y"`
	ElapsedX float64    `yaml:"elapsed_x"`
	TotalX   float64    `yaml:"total_x"`
	FontSize float64    `yaml:"font_size"`
	Color    *YAMLColor `yaml:"color"`
}

type TimersSpec struct {
	ElapsedMS  int `yaml:"elapsed_ms"`
	ProgressMS int `yaml:"progress_ms"`
}

func (t TimersSpec) Elapsed() time.Duration  { return Millis(t.ElapsedMS) }
func (t TimersSpec) Progress() time.Duration { return Millis(t.ProgressMS) }

type PlayerSpec struct {
	Name           string        `yaml:"name"`
	MoveSpeed      float64       `yaml:"move_speed"`
	JumpSpeed      float64       `yaml:"jump_speed"`
	PushFactor     float64       `yaml:"push_factor"`
	PushRecoveryMS int           `yaml:"push_recovery_ms"`
	Spawn          PointSpec     `yaml:"spawn"`
	Collider       ColliderSpec  `yaml:"collider"`
	Blink          BlinkSpec     `yaml:"blink"`
	Animation      AnimationSpec `yaml:"animation"`
}

func (p PlayerSpec) PushRecovery() time.Duration { return Millis(p.PushRecoveryMS) }

type EnemySpec struct {
	Name          string        `yaml:"name"`
	SpeedFactor   float64       `yaml:"speed_factor"`
	SpeedScript   string        `yaml:"speed_script"`
	Spawn         PointSpec     `yaml:"spawn"`
	Bounds        BoundsSpec    `yaml:"bounds"`
	HitNudge      float64       `yaml:"hit_nudge"`
	FlipOffset    float64       `yaml:"flip_offset"`
	RespawnDelay  RangeSpec     `yaml:"respawn_delay_ms"`
	Bob           BobSpec       `yaml:"bob"`
	Collider      ColliderSpec  `yaml:"collider"`
	Animation     AnimationSpec `yaml:"animation"`
	DeathAnim     string        `yaml:"death_anim"`
	PatrolAnim    string        `yaml:"patrol_anim"`
	InitialFacing int           `yaml:"initial_direction"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsSpec struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// RangeSpec is a half-open millisecond range [Min, Max).
type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r RangeSpec) Bounds() (time.Duration, time.Duration) {
	return Millis(r.Min), Millis(r.Max)
}

type BobSpec struct {
	Amplitude    float64 `yaml:"amplitude"`
	HalfPeriodMS int     `yaml:"half_period_ms"`
}

type BlinkSpec struct {
	HalfPeriodMS int `yaml:"half_period_ms"`
	Cycles       int `yaml:"cycles"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Name       string  `yaml:"name"`
	Sheet      string  `yaml:"sheet"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

type YAMLColor struct {
	color.Color
}

// Or returns fallback when the colour was not set in yaml.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
