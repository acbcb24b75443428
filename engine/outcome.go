package engine

// Outcome is how a round ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// OutcomeCaught is the normal end: the chaser touched the target
	OutcomeCaught
	// OutcomeSessionLost means the link dropped without notice
	OutcomeSessionLost
	// OutcomeOpponentLeft means the opponent sent leave
	OutcomeOpponentLeft
	// OutcomeQuit means the local player quit
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaught:
		return "caught"
	case OutcomeSessionLost:
		return "session lost"
	case OutcomeOpponentLeft:
		return "opponent left"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Terminal reports outcomes that end the session rather than the round
func (o Outcome) Terminal() bool {
	return o == OutcomeSessionLost || o == OutcomeOpponentLeft || o == OutcomeQuit
}
