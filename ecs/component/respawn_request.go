package component

// RespawnRequest marks a player that left the screen. The respawn system,
// running after physics, teleports it home and restarts the track.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
