package world

import (
	"math/rand"
	"testing"
)

func TestRoleString(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{RoleStart, "START_ROOM"},
		{RoleMid, "MID_ROOM"},
		{RoleEnd, "END_ROOM"},
		{Role(99), "UNKNOWN_ROOM"},
	}

	for _, tt := range tests {
		got := tt.role.String()
		if got != tt.expected {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.expected)
		}
		parsed, ok := ParseRole(tt.expected)
		if tt.role == Role(99) {
			if ok {
				t.Errorf("ParseRole(%q) accepted an unknown label", tt.expected)
			}
			continue
		}
		if !ok || parsed != tt.role {
			t.Errorf("ParseRole(%q) = %v, %v; want %v, true", tt.expected, parsed, ok, tt.role)
		}
	}
}

func TestRoleAt(t *testing.T) {
	want := []Role{RoleStart, RoleMid, RoleMid, RoleMid, RoleMid, RoleMid, RoleEnd}
	for i, role := range want {
		if got := roleAt(i, len(want)); got != role {
			t.Errorf("roleAt(%d, %d) = %s, want %s", i, len(want), got, role)
		}
	}
}

func TestCatalog(t *testing.T) {
	if RoomName(0) != "dungeon" || RoomName(CatalogSize-1) != "vault" {
		t.Errorf("unexpected catalog ends: %q, %q", RoomName(0), RoomName(CatalogSize-1))
	}
	if RoomName(-1) != "" || RoomName(CatalogSize) != "" {
		t.Error("RoomName should return empty string out of range")
	}
	for i := 0; i < CatalogSize; i++ {
		if got := RoomIndex(RoomName(i)); got != i {
			t.Errorf("RoomIndex(RoomName(%d)) = %d", i, got)
		}
	}
	if RoomIndex("basement") != -1 {
		t.Error("RoomIndex should return -1 for unknown names")
	}
}

func TestRoomProjection(t *testing.T) {
	room := NewRoom(RoomIndex("castle"), RoleMid)
	room.Connections = append(room.Connections, RoomIndex("vault"), RoomIndex("shire"))

	if room.Name() != "castle" {
		t.Errorf("Name() = %q, want castle", room.Name())
	}
	if room.Label() != "MID_ROOM" {
		t.Errorf("Label() = %q, want MID_ROOM", room.Label())
	}

	names := room.ConnectionNames()
	if len(names) != 2 || names[0] != "vault" || names[1] != "shire" {
		t.Errorf("ConnectionNames() = %v, want [vault shire]", names)
	}
	if !room.ConnectedTo(RoomIndex("shire")) || room.ConnectedTo(RoomIndex("narnia")) {
		t.Error("ConnectedTo reported the wrong peers")
	}
	if !room.CanConnect() {
		t.Error("CanConnect() = false below MaxDegree")
	}

	for len(room.Connections) < MaxDegree {
		room.Connections = append(room.Connections, len(room.Connections))
	}
	if room.CanConnect() {
		t.Error("CanConnect() = true at MaxDegree")
	}
}

func TestSampleUntil(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	idx, draws, err := sampleUntil(rng, 10, func(i int) bool { return i == 4 })
	if err != nil {
		t.Fatalf("sampleUntil error: %v", err)
	}
	if idx != 4 {
		t.Errorf("sampleUntil returned %d, want 4", idx)
	}
	if draws < 1 || draws > maxSampleAttempts {
		t.Errorf("sampleUntil reported %d draws", draws)
	}

	_, draws, err = sampleUntil(rng, 10, func(int) bool { return false })
	if err == nil {
		t.Fatal("sampleUntil with impossible predicate returned no error")
	}
	if draws != maxSampleAttempts {
		t.Errorf("exhausted sampler reported %d draws, want %d", draws, maxSampleAttempts)
	}

	if _, _, err := sampleUntil(rng, 0, func(int) bool { return true }); err == nil {
		t.Error("sampleUntil over an empty range returned no error")
	}
}
