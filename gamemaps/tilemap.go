package gamemaps

// Well-known tile planes.
const (
	PlaneArchitecture = 0 // walls, doors, floor codes
	PlaneObjects      = 1 // actors, decorations, pickups
	PlaneLogic        = 2 // unused in the stock data sets
)

// TileMap is one expanded map: a name, its dimensions, and PlaneCount
// planes of width*height tile words each, row by row.
type TileMap struct {
	Width  int
	Height int
	Name   string
	Planes [][]uint16
}

// At returns the tile at (x, y) in the given plane.
func (m *TileMap) At(x, y, plane int) uint16 {
	return m.Planes[plane][y*m.Width+x]
}

// Set replaces the tile at (x, y) in the given plane.
func (m *TileMap) Set(x, y, plane int, tile uint16) {
	m.Planes[plane][y*m.Width+x] = tile
}

// InBounds reports whether (x, y) lies on the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}
