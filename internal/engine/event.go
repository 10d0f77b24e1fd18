package engine

// Event is something the player did that a listener may react to,
// e.g. by playing a sound.
type Event int

const (
	EventDot Event = iota
	EventPowerUp
	EventTeleport
	EventBlocked
	EventCleared
	EventCaught
)

func (e Event) String() string {
	switch e {
	case EventDot:
		return "dot"
	case EventPowerUp:
		return "power-up"
	case EventTeleport:
		return "teleport"
	case EventBlocked:
		return "blocked"
	case EventCleared:
		return "cleared"
	case EventCaught:
		return "caught"
	}
	return "unknown"
}

// Listener receives events on the game loop goroutine. It must not block.
type Listener func(Event)

// Outcome is the state of a game after a tick.
type Outcome int

const (
	Running Outcome = iota
	Cleared
	Caught
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Cleared:
		return "cleared"
	case Caught:
		return "caught"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o != Running
}
