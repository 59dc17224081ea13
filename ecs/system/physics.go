package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeWall
	collisionTypeEnemy
	collisionTypeKillFloor
)

const (
	groundGraceFrames = 4
	solverIterations  = 20
	killFloorRadius   = 4.0
)

type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	playerShapes map[*cp.Shape]ecs.Entity
	groundShapes map[*cp.Shape]ecs.Entity
	enemyShapes  map[*cp.Shape]ecs.Entity
	playerStates map[ecs.Entity]*playerContactState

	contacts    []enemyContact
	contactSeen map[enemyContact]struct{}
	fellOut     []ecs.Entity
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
}

type playerContactState struct {
	grounded    bool
	groundGrace int
}

type enemyContact struct {
	player ecs.Entity
	enemy  ecs.Entity
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:      gravity,
		entities:     make(map[ecs.Entity]*bodyInfo),
		playerShapes: make(map[*cp.Shape]ecs.Entity),
		groundShapes: make(map[*cp.Shape]ecs.Entity),
		enemyShapes:  make(map[*cp.Shape]ecs.Entity),
		playerStates: make(map[ecs.Entity]*playerContactState),
		contactSeen:  make(map[enemyContact]struct{}),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity applies a tuned gravity value, used by prefab hot reload.
func (ps *PhysicsSystem) SetGravity(gravity float64) {
	if ps == nil {
		return
	}
	ps.gravity = gravity
	if ps.space != nil {
		ps.space.SetGravity(cp.Vector{X: 0, Y: gravity})
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.Sync(w)
	ps.resetPlayerContacts(w)

	ps.space.Step(common.TickSeconds)

	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
	ps.emitEvents(w)
}

// Sync creates bodies for new physics entities and drops bodies of removed
// ones without stepping the simulation.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}
	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		playerEntity, ok := sys.lookup(sys.groundShapes, arb)
		if !ok {
			return true
		}
		st := sys.contactState(playerEntity)
		st.grounded = true
		st.groundGrace = groundGraceFrames
		return true
	}

	enemyHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	enemyHandler.UserData = ps
	enemyHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		playerEntity, okP := sys.lookup(sys.playerShapes, arb)
		enemyEntity, okE := sys.lookup(sys.enemyShapes, arb)
		if !okP || !okE {
			return true
		}
		contact := enemyContact{player: playerEntity, enemy: enemyEntity}
		if _, seen := sys.contactSeen[contact]; !seen {
			sys.contactSeen[contact] = struct{}{}
			sys.contacts = append(sys.contacts, contact)
		}
		return true
	}

	killHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeKillFloor)
	killHandler.UserData = ps
	killHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if playerEntity, ok := sys.lookup(sys.playerShapes, arb); ok {
			sys.fellOut = append(sys.fellOut, playerEntity)
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) lookup(shapes map[*cp.Shape]ecs.Entity, arb *cp.Arbiter) (ecs.Entity, bool) {
	shapeA, shapeB := arb.Shapes()
	if e, ok := shapes[shapeA]; ok {
		return e, true
	}
	e, ok := shapes[shapeB]
	return e, ok
}

func (ps *PhysicsSystem) contactState(e ecs.Entity) *playerContactState {
	st := ps.playerStates[e]
	if st == nil {
		st = &playerContactState{}
		ps.playerStates[e] = st
	}
	return st
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		isEnemy := ecs.Has(w, e, component.EnemyTagComponent.Kind())

		info := ps.createBodyInfo(*transform, *bodyComp, isPlayer, isEnemy)
		if info == nil || info.mainShape == nil {
			continue
		}

		ps.entities[e] = info
		if isPlayer {
			ps.playerShapes[info.mainShape] = e
			if info.groundShape != nil {
				ps.groundShapes[info.groundShape] = e
			}
		}
		if isEnemy {
			ps.enemyShapes[info.mainShape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isPlayer, isEnemy bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	var body *cp.Body
	if bodyComp.Kinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// infinite moment keeps the body upright
		body = cp.NewBody(mass, cp.INFINITY)
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	switch {
	case isPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case isEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if isPlayer {
		groundShape := createGroundSensor(width, height, body)
		ps.space.AddShape(groundShape)
		info.groundShape = groundShape
		info.shapes = append(info.shapes, groundShape)
	}

	return info
}

// createGroundSensor adds a thin sensor strip just below the feet.
func createGroundSensor(width, height float64, body *cp.Body) *cp.Shape {
	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}

	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)
	return groundShape
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, bounds, ok := ecs.FirstValue(w, component.WorldBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	thickness := 1.0
	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range walls {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	killFloor := cp.NewSegment(ps.space.StaticBody, cp.Vector{X: -worldW, Y: worldH + killFloorRadius}, cp.Vector{X: 2 * worldW, Y: worldH + killFloorRadius}, killFloorRadius)
	killFloor.SetSensor(true)
	killFloor.SetCollisionType(collisionTypeKillFloor)
	ps.space.AddShape(killFloor)
	info.shapes = append(info.shapes, killFloor)
	info.mainShape = killFloor

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) resetPlayerContacts(w *ecs.World) {
	players := w.Query(component.PlayerCollisionComponent.Kind())
	seen := make(map[ecs.Entity]struct{}, len(players))
	for _, e := range players {
		seen[e] = struct{}{}
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			continue
		}
		st := ps.contactState(e)
		st.groundGrace = pc.GroundGrace
		if st.groundGrace > 0 {
			st.groundGrace--
		}
		st.grounded = false
	}

	for e := range ps.playerStates {
		if _, ok := seen[e]; !ok {
			delete(ps.playerStates, e)
		}
	}

	ps.contacts = ps.contacts[:0]
	clear(ps.contactSeen)
	ps.fellOut = ps.fellOut[:0]
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	for e, st := range ps.playerStates {
		if !w.IsAlive(e) {
			continue
		}
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			continue
		}
		pc.Grounded = st.grounded
		pc.GroundGrace = st.groundGrace
	}
}

func (ps *PhysicsSystem) emitEvents(w *ecs.World) {
	events := w.Events()
	for _, c := range ps.contacts {
		grounded := false
		if st := ps.playerStates[c.player]; st != nil {
			grounded = st.grounded
		}
		events.PushCollision(ecs.CollisionEvent{
			Entity:   c.player,
			Other:    c.enemy,
			Kind:     ecs.CollisionEventEnemyContact,
			Grounded: grounded,
		})
	}
	for _, e := range ps.fellOut {
		events.PushCollision(ecs.CollisionEvent{Entity: e, Kind: ecs.CollisionEventFellOut})
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil || bodyComp.Static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.WorldBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.playerShapes, shape)
			delete(ps.groundShapes, shape)
			delete(ps.enemyShapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
		delete(ps.playerStates, e)
	}
}

// bodyOf returns the live body of e, if the physics system created one.
func bodyOf(w *ecs.World, e ecs.Entity) (*cp.Body, bool) {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		return nil, false
	}
	return bodyComp.Body, true
}
