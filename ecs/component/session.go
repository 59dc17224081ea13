package component

import "github.com/milk9111/trackrunner/playback"

// Session is the one scene wide context: the transport plus an id for log
// correlation.
type Session struct {
	ID         string
	Controller *playback.TrackController
	Paused     bool
	Debug      bool
}

var SessionComponent = NewComponent[Session]()
