package world

// CatalogSize is the number of names in the room catalog.
const CatalogSize = 10

// roomNames is the fixed, ordered room catalog. Indices into it are room identities.
var roomNames = [CatalogSize]string{
	"dungeon",
	"castle",
	"shire",
	"poopdeck",
	"bedroom",
	"closet",
	"narnia",
	"whiterun",
	"skyrim",
	"vault",
}

// RoomName returns the catalog name for index, or "" if index is out of range.
func RoomName(index int) string {
	if index < 0 || index >= CatalogSize {
		return ""
	}
	return roomNames[index]
}

// RoomIndex returns the catalog index of name, or -1 if the name is not in the catalog.
func RoomIndex(name string) int {
	for i, n := range roomNames {
		if n == name {
			return i
		}
	}
	return -1
}
