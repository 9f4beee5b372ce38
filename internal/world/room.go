package world

const (
	// MinDegree is the connection count every room must reach before a layout is full.
	MinDegree = 3
	// MaxDegree is the most connections any room may have.
	MaxDegree = 6
)

// Room is a named node in the layout.
type Room struct {
	NameIndex   int   // Index into the room catalog
	Role        Role  // Fixed at creation
	Connections []int // Peer name indices in the order edges were added
}

// NewRoom creates a room with no connections.
func NewRoom(nameIndex int, role Role) Room {
	return Room{
		NameIndex:   nameIndex,
		Role:        role,
		Connections: make([]int, 0, MaxDegree),
	}
}

// Name returns the room's catalog name.
func (r Room) Name() string {
	return RoomName(r.NameIndex)
}

// ConnectionNames returns the catalog names of the room's peers in insertion order.
func (r Room) ConnectionNames() []string {
	names := make([]string, len(r.Connections))
	for i, idx := range r.Connections {
		names[i] = RoomName(idx)
	}
	return names
}

// Label returns the role label, e.g. "MID_ROOM".
func (r Room) Label() string {
	return r.Role.String()
}

// Degree returns the number of connections.
func (r Room) Degree() int {
	return len(r.Connections)
}

// CanConnect returns true if the room is below MaxDegree.
func (r Room) CanConnect() bool {
	return len(r.Connections) < MaxDegree
}

// ConnectedTo returns true if nameIndex is already one of the room's peers.
func (r Room) ConnectedTo(nameIndex int) bool {
	for _, c := range r.Connections {
		if c == nameIndex {
			return true
		}
	}
	return false
}
