package system

import (
	"fmt"
	"math"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/trackrunner/prefabs"
)

// LinearCurve is speed = position in seconds * Factor.
type LinearCurve struct {
	Factor float64
}

func (c LinearCurve) Speed(position, _ time.Duration) (float64, error) {
	return math.Abs(position.Seconds() * c.Factor), nil
}

// ScriptCurve evaluates a tengo script that reads position, duration and
// factor and assigns speed.
type ScriptCurve struct {
	path     string
	factor   float64
	compiled *tengo.Compiled
}

func LoadScriptCurve(path string, factor float64) (*ScriptCurve, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("enemy speed script %s: %w", path, err)
	}
	return NewScriptCurve(path, src, factor)
}

func NewScriptCurve(path string, src []byte, factor float64) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	_ = script.Add("position", 0.0)
	_ = script.Add("duration", 0.0)
	_ = script.Add("factor", factor)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("enemy speed script %s: compile: %w", path, err)
	}
	if !compiled.IsDefined("speed") {
		return nil, fmt.Errorf("enemy speed script %s: speed is never assigned", path)
	}
	return &ScriptCurve{path: path, factor: factor, compiled: compiled}, nil
}

func (c *ScriptCurve) Speed(position, duration time.Duration) (float64, error) {
	if c == nil || c.compiled == nil {
		return 0, fmt.Errorf("nil speed script")
	}
	if err := c.compiled.Set("position", position.Seconds()); err != nil {
		return 0, err
	}
	if err := c.compiled.Set("duration", duration.Seconds()); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("enemy speed script %s: %w", c.path, err)
	}
	return math.Abs(c.compiled.Get("speed").Float()), nil
}
