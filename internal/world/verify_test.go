package world

import (
	"errors"
	"strings"
	"testing"
)

// square returns a four-room layout where every room is connected to every other.
func square() *Layout {
	l := &Layout{params: Params{Capacity: 4, CatalogSize: 4}}
	for i := 0; i < 4; i++ {
		room := NewRoom(i, roleAt(i, 4))
		for j := 0; j < 4; j++ {
			if j != i {
				room.Connections = append(room.Connections, j)
			}
		}
		l.Rooms = append(l.Rooms, room)
	}
	return l
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Layout)
		want   string
	}{
		{"valid", func(*Layout) {}, ""},
		{"self loop", func(l *Layout) {
			l.Rooms[0].Connections[0] = 0
		}, "connected to itself"},
		{"duplicate", func(l *Layout) {
			l.Rooms[1].Connections[1] = l.Rooms[1].Connections[0]
		}, "duplicate connection"},
		{"not mirrored", func(l *Layout) {
			l.Rooms[2].Connections = l.Rooms[2].Connections[:2]
		}, "not mirrored"},
		{"foreign peer", func(l *Layout) {
			l.Rooms[3].Connections = append(l.Rooms[3].Connections, 9)
		}, "not in the layout"},
		{"wrong role", func(l *Layout) {
			l.Rooms[1].Role = RoleEnd
		}, "role END_ROOM"},
		{"missing room", func(l *Layout) {
			l.Rooms = l.Rooms[:3]
		}, "have 3 rooms"},
		{"degree too low", func(l *Layout) {
			l.params = Params{Capacity: 5, CatalogSize: 5}
			l.Rooms[3].Role = RoleMid
			l.Rooms = append(l.Rooms, NewRoom(4, RoleEnd))
		}, "degree 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := square()
			tt.mutate(l)
			err := l.Verify()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Verify() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvariant) {
				t.Fatalf("Verify() = %v, want ErrInvariant", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Verify() = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestPathLength(t *testing.T) {
	// Chain 0-1-2-3 with an isolated room 4.
	l := &Layout{Rooms: []Room{
		{NameIndex: 0, Connections: []int{1}},
		{NameIndex: 1, Connections: []int{0, 2}},
		{NameIndex: 2, Connections: []int{1, 3}},
		{NameIndex: 3, Connections: []int{2}},
		{NameIndex: 4, Connections: []int{}},
	}}

	tests := []struct {
		from, to int
		want     int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 3, 3},
		{3, 0, 3},
		{0, 4, -1},
		{0, 9, -1},
	}
	for _, tt := range tests {
		if got := l.PathLength(tt.from, tt.to); got != tt.want {
			t.Errorf("PathLength(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}

	if l.Connected() {
		t.Error("Connected() = true with an isolated room")
	}
	if !square().Connected() {
		t.Error("Connected() = false for a complete layout")
	}
	if (&Layout{}).Connected() {
		t.Error("Connected() = true for an empty layout")
	}
}
