package system

import (
	"testing"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

func TestResolveContact(t *testing.T) {
	tests := []struct {
		name      string
		crouching bool
		grounded  bool
		want      ContactOutcome
	}{
		{name: "crouching grounded", crouching: true, grounded: true, want: ContactOutcome{}},
		{name: "crouching airborne", crouching: true, grounded: false, want: ContactOutcome{}},
		{name: "standing airborne", crouching: false, grounded: false, want: ContactOutcome{HitEnemy: true}},
		{name: "standing grounded", crouching: false, grounded: true, want: ContactOutcome{HitEnemy: true, PushPlayer: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveContact(tt.crouching, tt.grounded); got != tt.want {
				t.Fatalf("ResolveContact(%v, %v) = %+v, want %+v", tt.crouching, tt.grounded, got, tt.want)
			}
		})
	}
}

func TestCollisionSystemAppliesRules(t *testing.T) {
	tests := []struct {
		name       string
		crouching  bool
		grounded   bool
		wantState  component.EnemyState
		wantPushed bool
	}{
		{name: "ducked", crouching: true, grounded: true, wantState: component.EnemyPatrolling},
		{name: "jumped into", grounded: false, wantState: component.EnemyDying},
		{name: "ran into", grounded: true, wantState: component.EnemyDying, wantPushed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := addPlayer(t, w, 100, 100)
			enemy := addEnemy(t, w, 400, 100)
			NewPhysicsSystem(600).Sync(w)

			p := mustPlayer(t, w, player)
			if tt.crouching {
				p.Crouch()
			}
			w.Events().PushCollision(ecs.CollisionEvent{
				Entity:   player,
				Other:    enemy,
				Kind:     ecs.CollisionEventEnemyContact,
				Grounded: tt.grounded,
			})
			NewCollisionSystem().Update(w)

			e := mustEnemy(t, w, enemy)
			if e.Enemy.State != tt.wantState {
				t.Fatalf("enemy state = %s, want %s", e.Enemy.State, tt.wantState)
			}
			if got := p.Control.BeingPushed(); got != tt.wantPushed {
				t.Fatalf("pushed = %v, want %v", got, tt.wantPushed)
			}
			if tt.wantPushed {
				// enemy flies left, so the player is knocked left at twice its speed
				if vx := p.Body.Body.Velocity().X; vx != -200 {
					t.Fatalf("push velocity = %v, want -200", vx)
				}
			}
		})
	}
}

func TestCollisionIgnoredWhileEnemyDying(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 100)
	enemy := addEnemy(t, w, 400, 100)
	NewPhysicsSystem(600).Sync(w)

	e := mustEnemy(t, w, enemy)
	e.Hit()
	token := e.Enemy.RespawnToken

	w.Events().PushCollision(ecs.CollisionEvent{Entity: player, Other: enemy, Kind: ecs.CollisionEventEnemyContact, Grounded: true})
	NewCollisionSystem().Update(w)

	if e.Enemy.RespawnToken != token {
		t.Fatalf("token bumped by a hit on a dying enemy")
	}
	if mustPlayer(t, w, player).Control.BeingPushed() {
		t.Fatalf("player pushed by a dying enemy")
	}
}

func TestFellOutRequestsRespawn(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 700)
	ctrl, _ := addSession(t, w, 2)
	if err := ctrl.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	NewPhysicsSystem(600).Sync(w)

	w.Events().PushCollision(ecs.CollisionEvent{Entity: player, Kind: ecs.CollisionEventFellOut})
	NewCollisionSystem().Update(w)
	if !ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("expected respawn request")
	}

	NewRespawnSystem().Update(w)
	if ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("respawn request not consumed")
	}
	p := mustPlayer(t, w, player)
	if pos := p.Body.Body.Position(); pos.X != 50 || pos.Y != 60 {
		t.Fatalf("position after respawn = %v, want (50, 60)", pos)
	}
	if !ecs.Has(w, player, component.BlinkComponent.Kind()) {
		t.Fatalf("respawn should start the blink")
	}
	if len(w.Query(component.TransportRequestComponent.Kind())) != 1 {
		t.Fatalf("respawn should request a track restart")
	}
}
