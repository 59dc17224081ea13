package component

import "time"

// PlayerState is the variant held by PlayerControl. Exactly one of
// NormalState, CrouchingState or PushedState is active.
type PlayerState interface {
	Name() string
	isPlayerState()
}

type NormalState struct{}

func (NormalState) Name() string   { return "normal" }
func (NormalState) isPlayerState() {}

type CrouchingState struct{}

func (CrouchingState) Name() string   { return "crouching" }
func (CrouchingState) isPlayerState() {}

// PushedState suppresses manual input until Remaining runs out.
type PushedState struct {
	Remaining time.Duration
}

func (PushedState) Name() string   { return "pushed" }
func (PushedState) isPlayerState() {}

type PlayerControl struct {
	State PlayerState
}

func (c *PlayerControl) Current() PlayerState {
	if c == nil || c.State == nil {
		return NormalState{}
	}
	return c.State
}

func (c *PlayerControl) BeingPushed() bool {
	_, ok := c.Current().(PushedState)
	return ok
}

func (c *PlayerControl) Crouching() bool {
	_, ok := c.Current().(CrouchingState)
	return ok
}

var PlayerControlComponent = NewComponent[PlayerControl]()
