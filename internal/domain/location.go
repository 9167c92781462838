package domain

// Location is one of the shelter's physical meal delivery sites
type Location string

const (
	LocationBrickBuilding   Location = "Brick Building"
	LocationYellowFarmhouse Location = "Yellow Farmhouse"
)

// Locations is the fixed, ordered list of valid locations.
// The order matters: automatic location assignment iterates this list
// and picks the first free one, so it must stay deterministic.
var Locations = []Location{
	LocationBrickBuilding,
	LocationYellowFarmhouse,
}

// Valid returns true if the location is one of the known sites
func (l Location) Valid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLocation converts a raw string into a Location
func ParseLocation(s string) (Location, bool) {
	loc := Location(s)
	return loc, loc.Valid()
}
