package component

import "time"

type EnemyState int

const (
	EnemyPatrolling EnemyState = iota
	EnemyDying
	EnemyRespawnPending
)

func (s EnemyState) String() string {
	switch s {
	case EnemyPatrolling:
		return "patrolling"
	case EnemyDying:
		return "dying"
	case EnemyRespawnPending:
		return "respawn_pending"
	default:
		return "unknown"
	}
}

// SpeedCurve maps the playback position to a patrol speed magnitude.
type SpeedCurve interface {
	Speed(position, duration time.Duration) (float64, error)
}

type Enemy struct {
	State     EnemyState
	Direction float64
	Speed     float64

	LeftBound  float64
	RightBound float64
	SpawnX     float64
	SpawnY     float64

	HitNudge   float64
	FlipOffset float64

	RespawnMin time.Duration
	RespawnMax time.Duration
	// RespawnToken changes on every hit; a respawn timer only applies while
	// its token still matches.
	RespawnToken uint64

	Curve      SpeedCurve
	PatrolAnim string
	DeathAnim  string
}

var EnemyComponent = NewComponent[Enemy]()
