package component

type TransportAction int

const (
	TransportToggle TransportAction = iota + 1
	TransportNext
	TransportPrevious
	TransportSeek
	TransportRestart
)

func (a TransportAction) String() string {
	switch a {
	case TransportToggle:
		return "toggle"
	case TransportNext:
		return "next"
	case TransportPrevious:
		return "previous"
	case TransportSeek:
		return "seek"
	case TransportRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// TransportRequest is a one-shot request consumed by the music system.
// Fraction is only read for seeks.
type TransportRequest struct {
	Action   TransportAction
	Fraction float64
}

var TransportRequestComponent = NewComponent[TransportRequest]()
