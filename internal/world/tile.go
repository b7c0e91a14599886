// Package world provides dungeon layout generation: room sampling,
// separation, the connectivity graph, corridors and mesh emission.
package world

// Tile is one cell of a rasterized top-down view of the dungeon.
type Tile rune

const (
	// TileEmpty is outside every room and corridor.
	TileEmpty Tile = ' '
	// TileWall is a room boundary cell.
	TileWall Tile = '#'
	// TileFloor is inside a secondary room.
	TileFloor Tile = '.'
	// TileMainFloor is inside a main room.
	TileMainFloor Tile = ':'
	// TileCorridor is on a corridor's center line.
	TileCorridor Tile = '+'
	// TileDoor is where a corridor crosses a room wall.
	TileDoor Tile = '\''
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t {
	case TileFloor, TileMainFloor, TileCorridor, TileDoor:
		return true
	}
	return false
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
