package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Verify checks a generated layout against every structural invariant:
// room count, distinct names, role placement, degree bounds, and that edges
// are symmetric with no self-loops or duplicates. A layout that fails must
// not be serialized.
func (l *Layout) Verify() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(l.Rooms) != l.params.Capacity {
		addf("have %d rooms, want %d", len(l.Rooms), l.params.Capacity)
	}

	seen := mapset.New[int]()
	for i, room := range l.Rooms {
		if room.NameIndex < 0 || room.NameIndex >= l.params.CatalogSize {
			addf("room %d: name index %d outside catalog of %d", i, room.NameIndex, l.params.CatalogSize)
		}
		if seen.Has(room.NameIndex) {
			addf("room %d: name %q used twice", i, room.Name())
		}
		seen.Put(room.NameIndex)

		if want := roleAt(i, len(l.Rooms)); room.Role != want {
			addf("room %s: role %s, want %s", room.Name(), room.Role, want)
		}
	}

	for _, room := range l.Rooms {
		if d := room.Degree(); d < MinDegree || d > MaxDegree {
			addf("room %s: degree %d outside [%d,%d]", room.Name(), d, MinDegree, MaxDegree)
		}

		peers := mapset.New[int]()
		for _, peer := range room.Connections {
			switch {
			case peer == room.NameIndex:
				addf("room %s: connected to itself", room.Name())
			case peers.Has(peer):
				addf("room %s: duplicate connection to %s", room.Name(), RoomName(peer))
			case !seen.Has(peer):
				addf("room %s: connection to %s which is not in the layout", room.Name(), RoomName(peer))
			default:
				if other, _ := l.Room(peer); !other.ConnectedTo(room.NameIndex) {
					addf("room %s: connection to %s is not mirrored", room.Name(), other.Name())
				}
			}
			peers.Put(peer)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvariant, strings.Join(problems, "; "))
	}
	return nil
}
