// Package world generates room layouts: a set of named rooms tagged with
// structural roles, wired into an undirected graph with bounded degree.
package world

// Role is the structural tag a room receives from its position in generation order.
type Role int

const (
	// RoleStart is the first room generated.
	RoleStart Role = iota
	// RoleMid is any room between the first and the last.
	RoleMid
	// RoleEnd is the last room generated.
	RoleEnd
)

// String returns the descriptor label for the role.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "START_ROOM"
	case RoleMid:
		return "MID_ROOM"
	case RoleEnd:
		return "END_ROOM"
	default:
		return "UNKNOWN_ROOM"
	}
}

// ParseRole returns the role with the given descriptor label.
func ParseRole(label string) (Role, bool) {
	switch label {
	case "START_ROOM":
		return RoleStart, true
	case "MID_ROOM":
		return RoleMid, true
	case "END_ROOM":
		return RoleEnd, true
	default:
		return 0, false
	}
}

// roleAt returns the role for position i of a room set with the given capacity.
func roleAt(i, capacity int) Role {
	switch {
	case i == 0:
		return RoleStart
	case i == capacity-1:
		return RoleEnd
	default:
		return RoleMid
	}
}
