package world

import "github.com/zyedidia/generic/mapset"

// PathLength returns the fewest connections walked from room from to room to,
// both given as catalog indices. It returns -1 if either room is missing or
// to cannot be reached.
func (l *Layout) PathLength(from, to int) int {
	if l.position(from) < 0 || l.position(to) < 0 {
		return -1
	}

	visited := mapset.New[int]()
	visited.Put(from)
	frontier := []int{from}
	for hops := 0; len(frontier) > 0; hops++ {
		var next []int
		for _, idx := range frontier {
			if idx == to {
				return hops
			}
			room, _ := l.Room(idx)
			for _, peer := range room.Connections {
				if !visited.Has(peer) {
					visited.Put(peer)
					next = append(next, peer)
				}
			}
		}
		frontier = next
	}
	return -1
}

// Connected returns true if every room can be reached from the start room.
func (l *Layout) Connected() bool {
	if len(l.Rooms) == 0 {
		return false
	}
	start := l.Start().NameIndex
	for _, room := range l.Rooms {
		if l.PathLength(start, room.NameIndex) < 0 {
			return false
		}
	}
	return true
}
