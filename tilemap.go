package retrospector

import "fmt"

// EmptyTile marks a tile map cell that draws nothing.
const EmptyTile = -1

// TileMap is a row-major grid of atlas linear indices drawn through a
// Renderer. Cells default to [EmptyTile]. The map does not own the atlas;
// it only addresses into it.
type TileMap struct {
	atlas   *Atlas
	columns int
	rows    int
	cells   []int // row-major: cell = col + row*columns
}

// NewTileMap creates a columns x rows map over the given atlas with every
// cell empty. It fails with [ErrTileSize] when either dimension is not
// positive.
func NewTileMap(atlas *Atlas, columns, rows int) (*TileMap, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("retrospector: tile map size %dx%d: %w", columns, rows, ErrTileSize)
	}
	m := &TileMap{
		atlas:   atlas,
		columns: columns,
		rows:    rows,
		cells:   make([]int, columns*rows),
	}
	for i := range m.cells {
		m.cells[i] = EmptyTile
	}
	return m, nil
}

// Columns returns the map width in cells.
func (m *TileMap) Columns() int { return m.columns }

// Rows returns the map height in cells.
func (m *TileMap) Rows() int { return m.rows }

// SetTile stores an atlas linear index (or [EmptyTile]) at (col, row). It
// fails with [ErrOutOfBounds] when the cell lies outside the map or the
// index lies outside the atlas grid; the map is unchanged on failure.
func (m *TileMap) SetTile(col, row, index int) error {
	if col < 0 || col >= m.columns || row < 0 || row >= m.rows {
		return fmt.Errorf("retrospector: cell (%d, %d) in %dx%d tile map: %w",
			col, row, m.columns, m.rows, ErrOutOfBounds)
	}
	if index != EmptyTile && (index < 0 || index >= m.atlas.columns*m.atlas.rows) {
		return fmt.Errorf("retrospector: tile index %d of %d: %w",
			index, m.atlas.columns*m.atlas.rows, ErrOutOfBounds)
	}
	m.cells[col+row*m.columns] = index
	return nil
}

// Tile returns the atlas linear index stored at (col, row), or
// [ErrOutOfBounds] when the cell lies outside the map.
func (m *TileMap) Tile(col, row int) (int, error) {
	if col < 0 || col >= m.columns || row < 0 || row >= m.rows {
		return EmptyTile, fmt.Errorf("retrospector: cell (%d, %d) in %dx%d tile map: %w",
			col, row, m.columns, m.rows, ErrOutOfBounds)
	}
	return m.cells[col+row*m.columns], nil
}

// Fill stores the same atlas linear index in every cell.
func (m *TileMap) Fill(index int) error {
	if index != EmptyTile && (index < 0 || index >= m.atlas.columns*m.atlas.rows) {
		return fmt.Errorf("retrospector: tile index %d of %d: %w",
			index, m.atlas.columns*m.atlas.rows, ErrOutOfBounds)
	}
	for i := range m.cells {
		m.cells[i] = index
	}
	return nil
}

// Draw draws every non-empty cell at its grid position offset by origin.
// Cells whose tiles fall entirely outside the canvas are rejected by the
// renderer as usual.
func (m *TileMap) Draw(r *Renderer, origin Location) {
	tw := float64(m.atlas.tileWidth)
	th := float64(m.atlas.tileHeight)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.columns; col++ {
			index := m.cells[col+row*m.columns]
			if index == EmptyTile {
				continue
			}
			// Index validity is enforced by SetTile and Fill.
			sprite, _ := m.atlas.SpriteAt(index)
			r.DrawImage(sprite, Location{
				DX: origin.DX + float64(col)*tw,
				DY: origin.DY + float64(row)*th,
			})
		}
	}
}
