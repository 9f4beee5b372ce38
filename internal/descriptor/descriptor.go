// Package descriptor writes generated rooms to disk as standalone
// line-oriented descriptor files, one per room.
//
// A descriptor looks like:
//
//	ROOM NAME: castle
//	CONNECTION 0: vault
//	CONNECTION 1: shire
//	ROOM TYPE: MID_ROOM
package descriptor

import (
	"fmt"
	"io"
	"strings"
)

// Room is the projection of a room that a descriptor is rendered from.
type Room interface {
	Name() string
	ConnectionNames() []string
	Label() string
}

// FileName returns the descriptor file name for a room name.
func FileName(roomName string) string {
	return roomName + "_room"
}

// Render returns the descriptor text for a room.
func Render(room Room) string {
	var b strings.Builder
	// strings.Builder writes never fail.
	_ = WriteTo(&b, room)
	return b.String()
}

// WriteTo writes the descriptor text for a room to w.
func WriteTo(w io.Writer, room Room) error {
	if _, err := fmt.Fprintf(w, "ROOM NAME: %s\n", room.Name()); err != nil {
		return err
	}
	for i, peer := range room.ConnectionNames() {
		if _, err := fmt.Fprintf(w, "CONNECTION %d: %s\n", i, peer); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "ROOM TYPE: %s\n", room.Label())
	return err
}
