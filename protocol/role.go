package protocol

// Role is a participant's side in a round
type Role uint8

const (
	RoleNone Role = iota
	RoleChaser
	RoleTarget
)

func (r Role) String() string {
	switch r {
	case RoleChaser:
		return "chaser"
	case RoleTarget:
		return "target"
	default:
		return "none"
	}
}

// ParseRole accepts the wire names, anything else is RoleNone
func ParseRole(s string) Role {
	switch s {
	case "chaser":
		return RoleChaser
	case "target":
		return RoleTarget
	default:
		return RoleNone
	}
}

// Complement returns the opposite role, RoleNone stays RoleNone
func (r Role) Complement() Role {
	switch r {
	case RoleChaser:
		return RoleTarget
	case RoleTarget:
		return RoleChaser
	default:
		return RoleNone
	}
}
